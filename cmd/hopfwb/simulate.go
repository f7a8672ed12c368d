// SPDX-License-Identifier: MIT
// Package: main
//
// simulate.go — simulate subcommand.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/hopf"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/tsio"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate a Hopf ensemble and write it as an archive",
		Long: `Integrate the stochastic Hopf network for every run of the ensemble and
write the recorded pre, perturbation and post phases to a compressed
archive. Simulation and perturbation settings come from the configuration.

Examples:
  hopfwb simulate --sc sc.csv --freqs freqs.csv --out run.hwbe
  hopfwb simulate --sc sc.csv --freqs freqs.csv --out run.hwbe --mean mean.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scPath, _ := cmd.Flags().GetString("sc")
			freqPath, _ := cmd.Flags().GetString("freqs")
			outPath, _ := cmd.Flags().GetString("out")
			meanPath, _ := cmd.Flags().GetString("mean")

			sc, err := tsio.ReadMatrixFile(scPath)
			if err != nil {
				return fmt.Errorf("failed to read SC: %w", err)
			}
			freqs, err := tsio.ReadVectorFile(freqPath)
			if err != nil {
				return fmt.Errorf("failed to read frequencies: %w", err)
			}
			pert, err := a.cfg.Perturbation.Build(len(freqs))
			if err != nil {
				return err
			}

			p := a.cfg.Simulation.Params()
			a.logger.Info("simulation started",
				"regions", len(freqs),
				"runs", p.Runs,
				"perturbation", pert.Kind.String(),
				"seed", p.Seed,
			)
			ens, err := hopf.Simulate(cmd.Context(), freqs, sc, a.cfg.Simulation.Coupling, pert, p)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			if err := tsio.WriteEnsembleFile(outPath, ens); err != nil {
				return fmt.Errorf("failed to write archive: %w", err)
			}
			if meanPath != "" {
				if err := tsio.WriteMatrixFile(meanPath, ens.Mean()); err != nil {
					return fmt.Errorf("failed to write mean: %w", err)
				}
			}
			a.logger.Info("simulation finished", "samples", ens.Samples(), "out", outPath)

			return nil
		},
	}

	cmd.Flags().String("sc", "", "structural connectivity CSV (n×n)")
	cmd.Flags().String("freqs", "", "intrinsic frequencies CSV (n values, Hz)")
	cmd.Flags().String("out", "", "ensemble archive to write")
	cmd.Flags().String("mean", "", "optional CSV of the run-averaged series")
	_ = cmd.MarkFlagRequired("sc")
	_ = cmd.MarkFlagRequired("freqs")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}
