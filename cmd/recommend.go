package cmd

import (
	"github.com/spf13/cobra"

	"github.com/neurofleetx/decision/core/model"
)

var (
	recPickup      string
	recRegion      string
	recPassengers  int
	recMinCapacity int
	recType        string
	recElectric    bool
	recTop         int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank fleet vehicles for a pickup request",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recPickup, "pickup", "", "pickup coordinate as lat,lon")
	recommendCmd.Flags().StringVar(&recRegion, "region", "", "pickup region code, auto-detected when empty")
	recommendCmd.Flags().IntVar(&recPassengers, "passengers", 1, "passenger count")
	recommendCmd.Flags().IntVar(&recMinCapacity, "min-capacity", 0, "minimum seat capacity")
	recommendCmd.Flags().StringVar(&recType, "type", "", "required vehicle type")
	recommendCmd.Flags().BoolVar(&recElectric, "electric", false, "prefer electric vehicles")
	recommendCmd.Flags().IntVar(&recTop, "top", 0, "result cap, 0 for the default")
	_ = recommendCmd.MarkFlagRequired("pickup")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	pickup, err := parseCoord(recPickup)
	if err != nil {
		return err
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	recs, err := svc.Recommend(cmd.Context(), model.RecommendationRequest{
		Pickup:         pickup,
		Region:         recRegion,
		Passengers:     recPassengers,
		MinCapacity:    recMinCapacity,
		PreferredType:  model.VehicleType(recType),
		PreferElectric: recElectric,
		TopN:           recTop,
	})
	if err != nil {
		return err
	}
	return printJSON(cmd, recs)
}
