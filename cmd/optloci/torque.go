package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// torqueCmd evaluates the torque at a single d-q operating point.
var torqueCmd = &cobra.Command{
	Use:   "torque",
	Short: "Evaluate the electromagnetic torque at one d-q operating point",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSolver(cmd)
		if err != nil {
			return err
		}

		id, err := cmd.Flags().GetFloat64("id")
		if err != nil {
			return err
		}
		iq, err := cmd.Flags().GetFloat64("iq")
		if err != nil {
			return err
		}

		tau := s.Torque(complex(id, iq))
		log.Info("torque evaluated",
			zap.Float64("i_d", id),
			zap.Float64("i_q", iq),
			zap.Float64("torque", tau),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "%.6f\n", tau)

		return nil
	},
}

func init() {
	torqueCmd.Flags().Float64("id", 0, "d-axis current [A]")
	torqueCmd.Flags().Float64("iq", 0, "q-axis current [A]")

	rootCmd.AddCommand(torqueCmd)
}
