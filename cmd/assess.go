package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess [vehicle-id]",
	Short: "Assess maintenance risk for one vehicle or the whole fleet",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)
}

func runAssess(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()

	if len(args) == 0 {
		out, err := svc.AssessFleet(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, out)
	}

	vehicles, err := loadFleet()
	if err != nil {
		return err
	}
	for _, v := range vehicles {
		if v.ID == args[0] {
			return printJSON(cmd, svc.AssessVehicle(v))
		}
	}
	return fmt.Errorf("vehicle %q not found in fleet file", args[0])
}
