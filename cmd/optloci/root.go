package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/optloci/loci"
)

var (
	cfgFile string
	log     *zap.Logger
)

// rootCmd carries the machine parameters shared by every subcommand.
var rootCmd = &cobra.Command{
	Use:   "optloci",
	Short: "Optimal current reference loci for synchronous machine drives",
	Long: `optloci computes the MTPA and MTPV control loci of a synchronous
machine (SyRM or IPMSM) from its electrical parameters and renders them
as per-unit reference curves.

Machine parameters may come from flags, an optloci.yaml config file, or
OPTLOCI_* environment variables. A zero --psi-f selects the reluctance
(SyRM) branch; a positive value selects the interior-PM (IPMSM) branch.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initializeConfig(); err != nil {
			return err
		}
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		return nil
	},
}

// execute runs the CLI and exits non-zero on failure.
func execute() {
	if err := rootCmd.Execute(); err != nil {
		if log != nil {
			log.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./optloci.yaml)")
	pf.Int("pole-pairs", 3, "number of magnetic pole pairs")
	pf.Float64("ld", 0.036, "direct-axis inductance [H]")
	pf.Float64("lq", 0.051, "quadrature-axis inductance [H]")
	pf.Float64("psi-f", 0.545, "PM flux linkage [Vs]; 0 selects the SyRM branch")
	pf.Float64("id-min", 0, "minimum d-axis current [A] (SyRM only; leave unset for no floor)")
	cobra.CheckErr(viper.BindPFlags(pf))
}

// initializeConfig reads the config file and OPTLOCI_* environment
// variables, if present.
func initializeConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("optloci")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("OPTLOCI")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
		// No config file; flags and environment are enough.
	}

	return nil
}

// buildSolver assembles MotorParams from the bound configuration and
// constructs the solver. The id-min floor is forwarded only when the
// caller actually provided it: an untouched flag means "no floor", which
// is not the same as a floor of zero.
func buildSolver(cmd *cobra.Command) (*loci.Solver, error) {
	p := loci.MotorParams{
		PolePairs: viper.GetInt("pole-pairs"),
		Ld:        viper.GetFloat64("ld"),
		Lq:        viper.GetFloat64("lq"),
	}

	if psiF := viper.GetFloat64("psi-f"); psiF > 0 {
		p.Machine = loci.IPMSM{PsiF: psiF}
	} else {
		m := loci.SyRM{}
		if cmd.Flags().Changed("id-min") || viper.InConfig("id-min") {
			floor := viper.GetFloat64("id-min")
			m.IDMin = &floor
		}
		p.Machine = m
	}

	return loci.New(p)
}
