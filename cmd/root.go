// Package cmd implements the decision service CLI.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neurofleetx/decision/app"
	"github.com/neurofleetx/decision/config"
	"github.com/neurofleetx/decision/core/model"
	"github.com/neurofleetx/decision/infra/logger"
)

var (
	cfgPath   string
	fleetPath string
)

var rootCmd = &cobra.Command{
	Use:   "decision",
	Short: "Fleet decision service: ETA, vehicle recommendation and maintenance risk",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.PersistentFlags().StringVarP(&fleetPath, "fleet", "f", "", "fleet snapshot file (json array of vehicles)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func loadFleet() ([]model.VehicleSnapshot, error) {
	if fleetPath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(fleetPath)
	if err != nil {
		return nil, fmt.Errorf("read fleet: %w", err)
	}
	var vehicles []model.VehicleSnapshot
	if err := json.Unmarshal(data, &vehicles); err != nil {
		return nil, fmt.Errorf("parse fleet: %w", err)
	}
	return vehicles, nil
}

func newService() (*app.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	vehicles, err := loadFleet()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, app.NewStaticSource(vehicles), logger.New("cli"))
}

// parseCoord parses "lat,lon".
func parseCoord(s string) (model.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return model.Coordinate{}, fmt.Errorf("coordinate %q: want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return model.Coordinate{Lat: lat, Lon: lon}, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
