// SPDX-License-Identifier: MIT
// Package: config
//
// config.go — layered YAML/env configuration and converters.

// Package config provides configuration loading for the hopfwb command.
// Values are layered: defaults -> YAML file -> environment variables.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/asymmetry"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/fit"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/hopf"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/internal/logging"
	"github.com/wiepstikvoort/Nonequilibrium-asymmetry-PCI/linear"
)

// Environment variables recognised by Load.
const (
	EnvConfig   = "HOPFWB_CONFIG"
	EnvLogLevel = "HOPFWB_LOG_LEVEL"
	EnvWorkers  = "HOPFWB_WORKERS"
	EnvSeed     = "HOPFWB_SEED"
)

// Perturbation modes.
const (
	PerturbNone = "none"
	PerturbAll  = "all"
	PerturbMask = "mask"
)

// Fit sources.
const (
	SourceLinear    = "linear"
	SourceSimulated = "simulated"
)

// Config contains every hopfwb setting.
type Config struct {
	// Simulation holds the ensemble integration settings.
	Simulation SimulationConfig `yaml:"simulation"`

	// Perturbation selects and shapes the perturbation window.
	Perturbation PerturbationConfig `yaml:"perturbation"`

	// Linear holds the linear-noise solver settings.
	Linear LinearConfig `yaml:"linear"`

	// Fit holds the connectivity fitting settings.
	Fit FitConfig `yaml:"fit"`

	// Asymmetry holds the pair-count thresholding settings.
	Asymmetry AsymmetryConfig `yaml:"asymmetry"`

	// Logging holds the log verbosity.
	Logging LoggingConfig `yaml:"logging"`
}

// SimulationConfig mirrors hopf.Params plus the global coupling G.
type SimulationConfig struct {
	Runs        int     `yaml:"runs"`
	PrePert     float64 `yaml:"pre_pert"`
	PostPert    float64 `yaml:"post_pert"`
	TR          float64 `yaml:"tr"`
	Dt          float64 `yaml:"dt"`
	Transient   float64 `yaml:"transient"`
	Noise       float64 `yaml:"noise"`
	Bifurcation float64 `yaml:"bifurcation"`
	Seed        uint64  `yaml:"seed"`
	Workers     int     `yaml:"workers"`
	Coupling    float64 `yaml:"coupling"`
}

// PerturbationConfig selects None, AllNodes or MaskedNodes.
type PerturbationConfig struct {
	// Mode is "none", "all" or "mask".
	Mode string `yaml:"mode"`

	// Regions lists the perturbed region indices for mode "mask".
	Regions []int `yaml:"regions,omitempty"`

	Length    float64 `yaml:"length"`
	Amplitude float64 `yaml:"amplitude"`
}

// LinearConfig configures linear.Solve.
type LinearConfig struct {
	Sigma       float64 `yaml:"sigma"`
	Bifurcation float64 `yaml:"bifurcation"`
	Tolerance   float64 `yaml:"tolerance"`
	MaxIter     int     `yaml:"max_iter"`
}

// FitConfig configures fit.Params and the statistics source.
type FitConfig struct {
	EpsFC        float64 `yaml:"eps_fc"`
	EpsCov       float64 `yaml:"eps_cov"`
	OnlyPositive bool    `yaml:"only_positive"`
	NormTarget   float64 `yaml:"norm_target"`
	Lag          int     `yaml:"lag"`
	MaxIter      int     `yaml:"max_iter"`

	// Source is "linear" or "simulated".
	Source string `yaml:"source"`

	// MinFCCorr stops the fit once the FC correlation reaches it (0 = off).
	MinFCCorr float64 `yaml:"min_fc_corr"`
}

// AsymmetryConfig mirrors asymmetry.Options.
type AsymmetryConfig struct {
	Threshold bool    `yaml:"threshold"`
	UseMean   bool    `yaml:"use_mean"`
	Value     float64 `yaml:"value"`
}

// LoggingConfig configures log verbosity: "info" (default), "debug" or "trace".
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config populated from the library defaults.
func Default() *Config {
	hp := hopf.DefaultParams()
	fp := fit.DefaultParams()
	ao := asymmetry.DefaultOptions()

	return &Config{
		Simulation: SimulationConfig{
			Runs:        hp.Runs,
			PrePert:     hp.PrePert,
			PostPert:    hp.PostPert,
			TR:          hp.TR,
			Dt:          hp.Dt,
			Transient:   hp.Transient,
			Noise:       hp.Noise,
			Bifurcation: hp.Bifurcation,
			Coupling:    0.5,
		},
		Perturbation: PerturbationConfig{
			Mode:      PerturbNone,
			Length:    hopf.DefaultPerturbationLength,
			Amplitude: hopf.DefaultPerturbationAmplitude,
		},
		Linear: LinearConfig{
			Sigma:       0.01,
			Bifurcation: hopf.DefaultBifurcation,
			Tolerance:   1e-12,
			MaxIter:     100,
		},
		Fit: FitConfig{
			EpsFC:        fp.EpsFC,
			EpsCov:       fp.EpsCov,
			OnlyPositive: fp.OnlyPositive,
			NormTarget:   fp.NormTarget,
			Lag:          fp.Lag,
			MaxIter:      fp.MaxIter,
			Source:       SourceLinear,
		},
		Asymmetry: AsymmetryConfig{
			Threshold: ao.Threshold,
			UseMean:   ao.UseMean,
			Value:     ao.Value,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load returns defaults overlaid with the YAML file at path (or at
// $HOPFWB_CONFIG when path is empty, if set) and the environment.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}

	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file; keys not
// present keep their defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the library constructors would otherwise
// reject later, so that the command fails before doing any work.
func (c *Config) Validate() error {
	if err := c.Simulation.Params().Validate(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	switch c.Perturbation.Mode {
	case PerturbNone, PerturbAll:
	case PerturbMask:
		if len(c.Perturbation.Regions) == 0 {
			return fmt.Errorf("perturbation: mode %q needs at least one region", PerturbMask)
		}
	default:
		return fmt.Errorf("perturbation: invalid mode %q (valid: none, all, mask)", c.Perturbation.Mode)
	}
	if c.Perturbation.Length < 0 {
		return fmt.Errorf("perturbation: length must be non-negative, got %g", c.Perturbation.Length)
	}

	if !(c.Linear.Sigma > 0) || math.IsInf(c.Linear.Sigma, 0) {
		return fmt.Errorf("linear: sigma must be positive and finite, got %g", c.Linear.Sigma)
	}
	if !finite(c.Linear.Bifurcation, c.Simulation.Coupling, c.Perturbation.Amplitude) {
		return fmt.Errorf("bifurcation, coupling and amplitude must be finite")
	}
	if !(c.Linear.Tolerance > 0) || math.IsInf(c.Linear.Tolerance, 0) || c.Linear.MaxIter <= 0 {
		return fmt.Errorf("linear: tolerance and max_iter must be positive and finite, got %g and %d", c.Linear.Tolerance, c.Linear.MaxIter)
	}

	if err := c.Fit.Params().Validate(); err != nil {
		return fmt.Errorf("fit: %w", err)
	}
	if c.Fit.Source != SourceLinear && c.Fit.Source != SourceSimulated {
		return fmt.Errorf("fit: invalid source %q (valid: linear, simulated)", c.Fit.Source)
	}
	if c.Fit.MaxIter == 0 && c.Fit.MinFCCorr == 0 {
		return fmt.Errorf("fit: %w", fit.ErrNoStopCondition)
	}

	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, warn, error)", c.Logging.Level)
	}

	return nil
}

// Params converts the simulation section to hopf.Params.
func (s SimulationConfig) Params() hopf.Params {
	return hopf.Params{
		Runs:        s.Runs,
		PrePert:     s.PrePert,
		PostPert:    s.PostPert,
		TR:          s.TR,
		Dt:          s.Dt,
		Transient:   s.Transient,
		Noise:       s.Noise,
		Bifurcation: s.Bifurcation,
		Seed:        s.Seed,
		Workers:     s.Workers,
	}
}

// Build converts the perturbation section for a network of n regions.
func (p PerturbationConfig) Build(n int) (hopf.Perturbation, error) {
	var mask []bool
	if p.Mode == PerturbMask {
		mask = make([]bool, n)
		for _, r := range p.Regions {
			if r < 0 || r >= n {
				return hopf.Perturbation{}, fmt.Errorf("perturbation: region %d out of range [0,%d): %w", r, n, hopf.ErrDimensionMismatch)
			}
			mask[r] = true
		}
	}

	return hopf.NewPerturbation(p.Mode == PerturbAll, mask, p.Length, p.Amplitude)
}

// Options converts the linear section to solver options; coupling is the
// simulation's global G.
func (l LinearConfig) Options(coupling float64) []linear.Option {
	return []linear.Option{
		linear.WithSigma(l.Sigma),
		linear.WithBifurcation(l.Bifurcation),
		linear.WithTolerance(l.Tolerance),
		linear.WithMaxIter(l.MaxIter),
		linear.WithCoupling(coupling),
	}
}

// Params converts the fit section to fit.Params, installing a Stop
// callback when MinFCCorr is set.
func (f FitConfig) Params() fit.Params {
	p := fit.Params{
		EpsFC:        f.EpsFC,
		EpsCov:       f.EpsCov,
		OnlyPositive: f.OnlyPositive,
		NormTarget:   f.NormTarget,
		Lag:          f.Lag,
		MaxIter:      f.MaxIter,
	}
	if target := f.MinFCCorr; target > 0 {
		p.Stop = func(it fit.Iteration) bool { return it.FCCorr >= target }
	}

	return p
}

// Options converts the asymmetry section.
func (a AsymmetryConfig) Options() asymmetry.Options {
	return asymmetry.Options{Threshold: a.Threshold, UseMean: a.UseMean, Value: a.Value}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Workers = n
		}
	}
	if v := os.Getenv(EnvSeed); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Simulation.Seed = n
		}
	}
}
