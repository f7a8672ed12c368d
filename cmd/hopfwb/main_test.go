// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/tsio"
)

// smallConfig keeps simulations short enough for unit tests.
const smallConfig = `
simulation:
  runs: 2
  pre_pert: 5
  post_pert: 5
  transient: 10
  seed: 3
  workers: 2
fit:
  max_iter: 3
logging:
  level: warn
`

// runCmd executes the root command with args and returns stdout.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

// workspace writes the small config and a 4-region ring fixture.
func workspace(t *testing.T) (dir, cfg, sc, freqs string) {
	t.Helper()
	dir = t.TempDir()
	cfg = filepath.Join(dir, "hopfwb.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte(smallConfig), 0o600))

	sc = filepath.Join(dir, "sc.csv")
	_, err := runCmd(t, "--config", cfg, "synth", "ring", "--n", "4", "--coupling", "0.1", "--out", sc)
	require.NoError(t, err)

	freqs = filepath.Join(dir, "freqs.csv")
	require.NoError(t, os.WriteFile(freqs, []byte("0.04\n0.05\n0.06\n0.05\n"), 0o600))

	return dir, cfg, sc, freqs
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "hopfwb version")
}

func TestSynthCmd_Stdout(t *testing.T) {
	out, err := runCmd(t, "synth", "chain", "--t", "50", "--seed", "9")
	require.NoError(t, err)

	m, err := tsio.ReadMatrixCSV(strings.NewReader(out))
	require.NoError(t, err)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 50, c)
}

func TestSynthCmd_Errors(t *testing.T) {
	_, err := runCmd(t, "synth", "mystery")
	assert.Error(t, err)

	_, err = runCmd(t, "synth", "sc", "--density", "2")
	assert.Error(t, err)
}

func TestLinearCmd(t *testing.T) {
	dir, cfg, sc, freqs := workspace(t)
	fcPath := filepath.Join(dir, "fc.csv")
	lagPath := filepath.Join(dir, "lag.csv")

	_, err := runCmd(t, "--config", cfg, "linear", "--sc", sc, "--freqs", freqs,
		"--fc", fcPath, "--lagged", lagPath, "--tau", "0.5")
	require.NoError(t, err)

	fc, err := tsio.ReadMatrixFile(fcPath)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 1.0, fc.At(i, i), 1e-9)
	}
	_, err = os.Stat(lagPath)
	assert.NoError(t, err)
}

func TestSimulateThenInsideOut(t *testing.T) {
	dir, cfg, sc, freqs := workspace(t)
	archive := filepath.Join(dir, "run.hwbe")
	meanPath := filepath.Join(dir, "mean.csv")

	_, err := runCmd(t, "--config", cfg, "simulate", "--sc", sc, "--freqs", freqs,
		"--out", archive, "--mean", meanPath)
	require.NoError(t, err)

	ens, err := tsio.ReadEnsembleFile(archive)
	require.NoError(t, err)
	assert.Equal(t, 2, ens.Runs())
	assert.Equal(t, 4, ens.Regions())

	out, err := runCmd(t, "--config", cfg, "insideout", "--archive", archive, "--phase", "post")
	require.NoError(t, err)
	assert.Contains(t, out, "run 0")
	assert.Contains(t, out, "run 1")
	assert.Contains(t, out, "mean")

	_, err = runCmd(t, "--config", cfg, "insideout", "--archive", archive, "--phase", "perturbation")
	assert.Error(t, err, "unperturbed archive has an empty perturbation phase")

	_, err = runCmd(t, "--config", cfg, "insideout", "--archive", archive, "--phase", "during")
	assert.Error(t, err)
}

func TestInsideOutCmd_FlagErrors(t *testing.T) {
	_, err := runCmd(t, "insideout")
	assert.Error(t, err)

	_, err = runCmd(t, "insideout", "--series", "a.csv", "--archive", "b.hwbe")
	assert.Error(t, err)
}

func TestFitCmd_Linear(t *testing.T) {
	dir, cfg, sc, freqs := workspace(t)
	series := filepath.Join(dir, "series.csv")
	ecPath := filepath.Join(dir, "ec.csv")

	_, err := runCmd(t, "--config", cfg, "synth", "noise", "--n", "4", "--t", "400", "--out", series)
	require.NoError(t, err)

	_, err = runCmd(t, "--config", cfg, "fit", "--series", series, "--sc", sc, "--freqs", freqs, "--out", ecPath)
	require.NoError(t, err)

	ec, err := tsio.ReadMatrixFile(ecPath)
	require.NoError(t, err)
	r, c := ec.Dims()
	assert.Equal(t, 4, r)
	assert.Equal(t, 4, c)

	out, err := runCmd(t, "--config", cfg, "asymmetry", "--ec", ecPath)
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestAsymmetryCmd(t *testing.T) {
	dir := t.TempDir()
	ecPath := filepath.Join(dir, "ec.csv")
	require.NoError(t, os.WriteFile(ecPath, []byte("0,1\n0,0\n"), 0o600))

	out, err := runCmd(t, "asymmetry", "--ec", ecPath)
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("fit:\n  source: oracle\n"), 0o600))

	_, err := runCmd(t, "--config", cfg, "version")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestLogLevelFlagOverride(t *testing.T) {
	_, err := runCmd(t, "--log-level", "verbose", "version")
	assert.Error(t, err)
}
