package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/neurofleetx/decision/app"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the decision models from history files",
}

var trainEtaCmd = &cobra.Command{
	Use:   "eta <trips.json>",
	Short: "Fit the trip duration model from completed trips",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrainEta,
}

var trainMaintCmd = &cobra.Command{
	Use:   "maintenance <observations.json>",
	Short: "Fit the maintenance risk classifier from labelled observations",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrainMaint,
}

func init() {
	trainCmd.AddCommand(trainEtaCmd)
	trainCmd.AddCommand(trainMaintCmd)
	rootCmd.AddCommand(trainCmd)
}

func runTrainEta(cmd *cobra.Command, args []string) error {
	var samples []app.TripSample
	if err := readJSON(args[0], &samples); err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.TrainETA(samples); err != nil {
		return fmt.Errorf("train eta: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "trained eta model on %d samples\n", len(samples))
	return nil
}

func runTrainMaint(cmd *cobra.Command, args []string) error {
	var samples []app.ConditionSample
	if err := readJSON(args[0], &samples); err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	if err := svc.TrainMaintenance(samples); err != nil {
		return fmt.Errorf("train maintenance: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "trained maintenance model on %d samples\n", len(samples))
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
