// SPDX-License-Identifier: MIT
// Package: main
//
// analyze.go — asymmetry and insideout subcommands.

package main

import (
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/asymmetry"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/hopf"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/insideout"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/tsio"
)

func newAsymmetryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "asymmetry",
		Short: "Count asymmetric region pairs of a connectivity matrix",
		Long: `Print the number of region pairs (i, j) whose weights EC[i,j] and EC[j,i]
differ. With asymmetry.threshold enabled only differences above the
configured value (or the mean absolute difference) count.

Examples:
  hopfwb asymmetry --ec ec.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ecPath, _ := cmd.Flags().GetString("ec")
			ec, err := tsio.ReadMatrixFile(ecPath)
			if err != nil {
				return fmt.Errorf("failed to read EC: %w", err)
			}

			count, err := asymmetry.CountAsymmetricPairs(ec, a.cfg.Asymmetry.Options())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), count)

			return nil
		},
	}

	cmd.Flags().String("ec", "", "effective connectivity CSV (n×n)")
	_ = cmd.MarkFlagRequired("ec")

	return cmd
}

func newInsideOutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insideout",
		Short: "Compute the irreversibility index of a series",
		Long: `Print the INSIDEOUT irreversibility index of a series CSV, or of one phase
of every run in an ensemble archive followed by their mean.

Examples:
  hopfwb insideout --series bold.csv
  hopfwb insideout --archive run.hwbe --phase post`,
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesPath, _ := cmd.Flags().GetString("series")
			archivePath, _ := cmd.Flags().GetString("archive")
			phaseName, _ := cmd.Flags().GetString("phase")
			out := cmd.OutOrStdout()

			switch {
			case seriesPath != "" && archivePath != "":
				return fmt.Errorf("--series and --archive are mutually exclusive")
			case seriesPath != "":
				series, err := tsio.ReadMatrixFile(seriesPath)
				if err != nil {
					return fmt.Errorf("failed to read series: %w", err)
				}
				idx, err := insideout.Index(series)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%g\n", idx)
				return nil
			case archivePath != "":
			default:
				return fmt.Errorf("one of --series or --archive is required")
			}

			phase, err := parsePhase(phaseName)
			if err != nil {
				return err
			}
			ens, err := tsio.ReadEnsembleFile(archivePath)
			if err != nil {
				return fmt.Errorf("failed to read archive: %w", err)
			}

			indices := make([]float64, 0, ens.Runs())
			for r := 0; r < ens.Runs(); r++ {
				seg := ens.Phase(r, phase)
				if seg == nil {
					return fmt.Errorf("phase %s of %s is empty", phase, archivePath)
				}
				idx, err := insideout.Index(seg)
				if err != nil {
					return fmt.Errorf("run %d: %w", r, err)
				}
				a.logger.Debug("irreversibility", "run", r, "phase", phase.String(), "index", idx)
				indices = append(indices, idx)
				fmt.Fprintf(out, "run %d\t%g\n", r, idx)
			}
			mean, err := stats.Mean(indices)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "mean\t%g\n", mean)

			return nil
		},
	}

	cmd.Flags().String("series", "", "series CSV (n×T)")
	cmd.Flags().String("archive", "", "ensemble archive written by simulate")
	cmd.Flags().String("phase", "post", "archive phase: pre, perturbation or post")

	return cmd
}

func parsePhase(name string) (hopf.Phase, error) {
	for _, ph := range []hopf.Phase{hopf.PhasePre, hopf.PhasePerturbation, hopf.PhasePost} {
		if ph.String() == name {
			return ph, nil
		}
	}

	return 0, fmt.Errorf("unknown phase %q (valid: pre, perturbation, post)", name)
}
