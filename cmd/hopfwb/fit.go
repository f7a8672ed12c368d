// SPDX-License-Identifier: MIT
// Package: main
//
// fit.go — fit subcommand and source selection.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/fit"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/internal/config"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/tsio"
)

func newFitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit an effective connectivity to empirical series",
		Long: `Iteratively update a structural connectivity so that the model's FC and
normalized lagged covariance match those of the empirical series. The
model statistics come from the linear-noise solution or from simulated
ensembles, selected by fit.source in the configuration.

Examples:
  hopfwb fit --series bold.csv --sc sc.csv --freqs freqs.csv --out ec.csv
  hopfwb fit --series bold.csv --sc sc.csv --freqs freqs.csv --out ec.csv --log-level debug`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesPath, _ := cmd.Flags().GetString("series")
			scPath, _ := cmd.Flags().GetString("sc")
			freqPath, _ := cmd.Flags().GetString("freqs")
			outPath, _ := cmd.Flags().GetString("out")

			series, err := tsio.ReadMatrixFile(seriesPath)
			if err != nil {
				return fmt.Errorf("failed to read series: %w", err)
			}
			sc, err := tsio.ReadMatrixFile(scPath)
			if err != nil {
				return fmt.Errorf("failed to read SC: %w", err)
			}
			freqs, err := tsio.ReadVectorFile(freqPath)
			if err != nil {
				return fmt.Errorf("failed to read frequencies: %w", err)
			}

			p := a.cfg.Fit.Params()
			target, err := fit.TargetFromSeries(series, p.Lag)
			if err != nil {
				return fmt.Errorf("failed to compute target statistics: %w", err)
			}
			fitter, err := fit.NewFitter(newSource(a.cfg, freqs), target, sc, p, fit.WithLogger(a.logger))
			if err != nil {
				return err
			}

			ec, err := fitter.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("fit failed: %w", err)
			}
			if err := tsio.WriteMatrixFile(outPath, ec); err != nil {
				return fmt.Errorf("failed to write EC: %w", err)
			}

			if hist := fitter.History(); len(hist) > 0 {
				last := hist[len(hist)-1]
				a.logger.Info("fit finished",
					"fit_id", fitter.ID().String(),
					"iterations", len(hist),
					"fc_corr", last.FCCorr,
					"fc_rmse", last.FCRMSE,
				)
			}

			return nil
		},
	}

	cmd.Flags().String("series", "", "empirical series CSV (n×T)")
	cmd.Flags().String("sc", "", "initial structural connectivity CSV (n×n)")
	cmd.Flags().String("freqs", "", "intrinsic frequencies CSV (n values, Hz)")
	cmd.Flags().String("out", "", "fitted connectivity CSV to write")
	for _, name := range []string{"series", "sc", "freqs", "out"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

// newSource picks the model statistics source named by the configuration.
func newSource(cfg *config.Config, freqs []float64) fit.Source {
	if cfg.Fit.Source == config.SourceSimulated {
		return &fit.SimulatedSource{
			Freqs:  freqs,
			G:      cfg.Simulation.Coupling,
			Params: cfg.Simulation.Params(),
		}
	}

	return &fit.LinearSource{
		Freqs:   freqs,
		G:       cfg.Simulation.Coupling,
		TR:      cfg.Simulation.TR,
		Options: cfg.Linear.Options(cfg.Simulation.Coupling),
	}
}
