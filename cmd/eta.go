package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/neurofleetx/decision/core/eta"
	"github.com/neurofleetx/decision/core/model"
)

var (
	etaFrom    string
	etaTo      string
	etaAt      string
	etaTraffic string
)

var etaCmd = &cobra.Command{
	Use:   "eta",
	Short: "Predict the trip duration between two coordinates",
	RunE:  runEta,
}

func init() {
	etaCmd.Flags().StringVar(&etaFrom, "from", "", "pickup coordinate as lat,lon")
	etaCmd.Flags().StringVar(&etaTo, "to", "", "dropoff coordinate as lat,lon")
	etaCmd.Flags().StringVar(&etaAt, "at", "", "request time in RFC3339, defaults to now")
	etaCmd.Flags().StringVar(&etaTraffic, "traffic", "", "congestion override: LOW, MEDIUM or HIGH")
	_ = etaCmd.MarkFlagRequired("from")
	_ = etaCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(etaCmd)
}

func runEta(cmd *cobra.Command, args []string) error {
	pickup, err := parseCoord(etaFrom)
	if err != nil {
		return err
	}
	dropoff, err := parseCoord(etaTo)
	if err != nil {
		return err
	}

	req := eta.Request{
		Trip:    model.TripRequest{Pickup: pickup, Dropoff: dropoff},
		Traffic: eta.TrafficLevel(etaTraffic),
	}
	if etaAt != "" {
		at, err := time.Parse(time.RFC3339, etaAt)
		if err != nil {
			return fmt.Errorf("parse --at: %w", err)
		}
		req.At = at
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	p, err := svc.PredictETA(req)
	if err != nil {
		return err
	}
	return printJSON(cmd, p)
}
