package cli

import (
	"fmt"

	"gym-portal/pkg/bmi"

	"github.com/spf13/cobra"
)

type bmiOptions struct {
	weight     float64
	height     float64
	weightUnit string
	heightUnit string
}

// NewBMICommand creates the bmi command.
func NewBMICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &bmiOptions{}

	cmd := &cobra.Command{
		Use:          "bmi",
		Short:        "Compute BMI and related figures",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			weightUnit := bmi.ParseWeightUnit(opts.weightUnit)
			if string(weightUnit) != opts.weightUnit {
				return fmt.Errorf("invalid weight unit %q: must be kg or lbs", opts.weightUnit)
			}
			heightUnit := bmi.ParseHeightUnit(opts.heightUnit)
			if string(heightUnit) != opts.heightUnit {
				return fmt.Errorf("invalid height unit %q: must be cm, m, in or ft", opts.heightUnit)
			}

			result, ok := bmi.Calculate(opts.weight, weightUnit, opts.height, heightUnit)
			if !ok {
				return fmt.Errorf("weight and height must be positive")
			}

			out := cmd.OutOrStdout()
			if rootOpts.Format == "json" {
				return writeJSON(out, result)
			}
			printBMI(out, result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.weight, "weight", 0, "body weight")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "body height")
	cmd.Flags().StringVar(&opts.weightUnit, "weight-unit", string(bmi.Kilograms), "weight unit (kg|lbs)")
	cmd.Flags().StringVar(&opts.heightUnit, "height-unit", string(bmi.Centimeters), "height unit (cm|m|in|ft)")
	_ = cmd.MarkFlagRequired("weight")
	_ = cmd.MarkFlagRequired("height")

	return cmd
}
