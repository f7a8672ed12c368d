// SPDX-License-Identifier: MIT
// Package: main
//
// linear.go — linear subcommand.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/linear"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/tsio"
)

func newLinearCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linear",
		Short: "Solve the linear-noise approximation for FC and covariance",
		Long: `Linearize the Hopf network around its fixed point and solve the
Lyapunov equation for the stationary covariance. Writes the correlation
(FC) and covariance matrices, and optionally the covariance at a time lag.

Examples:
  hopfwb linear --sc sc.csv --freqs freqs.csv --fc fc.csv --cv cv.csv
  hopfwb linear --sc sc.csv --freqs freqs.csv --fc fc.csv --lagged lag.csv --tau 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scPath, _ := cmd.Flags().GetString("sc")
			freqPath, _ := cmd.Flags().GetString("freqs")
			fcPath, _ := cmd.Flags().GetString("fc")
			cvPath, _ := cmd.Flags().GetString("cv")
			lagPath, _ := cmd.Flags().GetString("lagged")
			tau, _ := cmd.Flags().GetFloat64("tau")

			sc, err := tsio.ReadMatrixFile(scPath)
			if err != nil {
				return fmt.Errorf("failed to read SC: %w", err)
			}
			freqs, err := tsio.ReadVectorFile(freqPath)
			if err != nil {
				return fmt.Errorf("failed to read frequencies: %w", err)
			}

			res, err := linear.Solve(sc, freqs, a.cfg.Linear.Options(a.cfg.Simulation.Coupling)...)
			if err != nil {
				return fmt.Errorf("linear solve failed: %w", err)
			}
			a.logger.Debug("lyapunov residual", "residual", res.Residual())

			if fcPath != "" {
				if err := tsio.WriteMatrixFile(fcPath, res.FC); err != nil {
					return fmt.Errorf("failed to write FC: %w", err)
				}
			}
			if cvPath != "" {
				if err := tsio.WriteMatrixFile(cvPath, res.CV); err != nil {
					return fmt.Errorf("failed to write CV: %w", err)
				}
			}
			if lagPath != "" {
				lagged, err := res.Lagged(tau)
				if err != nil {
					return fmt.Errorf("lagged covariance failed: %w", err)
				}
				if err := tsio.WriteMatrixFile(lagPath, lagged); err != nil {
					return fmt.Errorf("failed to write lagged covariance: %w", err)
				}
			}
			a.logger.Info("linear solve finished", "regions", res.Regions())

			return nil
		},
	}

	cmd.Flags().String("sc", "", "structural connectivity CSV (n×n)")
	cmd.Flags().String("freqs", "", "intrinsic frequencies CSV (n values, Hz)")
	cmd.Flags().String("fc", "", "FC output CSV")
	cmd.Flags().String("cv", "", "covariance output CSV")
	cmd.Flags().String("lagged", "", "lagged covariance output CSV")
	cmd.Flags().Float64("tau", 0, "time lag for --lagged, in model time units")
	_ = cmd.MarkFlagRequired("sc")
	_ = cmd.MarkFlagRequired("freqs")

	return cmd
}
