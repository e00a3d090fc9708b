package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/optloci/pu"
	"github.com/katalvlaran/optloci/refplot"
)

// plotCmd renders the three per-unit reference figures as PNG files.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render MTPA/MTPV reference curves as per-unit PNG figures",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildSolver(cmd)
		if err != nil {
			return err
		}

		base, err := pu.New(pu.Ratings{
			Voltage:   viper.GetFloat64("u-nom"),
			Current:   viper.GetFloat64("i-nom"),
			Frequency: viper.GetFloat64("f-nom"),
			PolePairs: viper.GetInt("pole-pairs"),
		})
		if err != nil {
			return err
		}

		iMax := viper.GetFloat64("i-max")
		n := viper.GetInt("points")
		out := viper.GetString("out")
		if err = refplot.SaveAll(s, iMax, n, base, out); err != nil {
			return err
		}
		log.Info("reference curves written",
			zap.String("dir", out),
			zap.Float64("i_max", iMax),
			zap.Int("points", n),
		)

		return nil
	},
}

func init() {
	f := plotCmd.Flags()
	f.Float64("i-max", 20, "maximum current magnitude [A]")
	f.Int("points", 20, "samples per locus")
	f.Float64("u-nom", 370, "nominal line-to-line RMS voltage [V]")
	f.Float64("i-nom", 4.3, "nominal RMS current [A]")
	f.Float64("f-nom", 75, "nominal frequency [Hz]")
	f.String("out", "figures", "output directory for the PNG files")
	cobra.CheckErr(viper.BindPFlags(f))

	rootCmd.AddCommand(plotCmd)
}
