// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

// Package config loads the sweep and connection defaults from an optional
// YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
)

// Duration wraps time.Duration to marshal as a duration string ("750ms",
// "1s") instead of nanoseconds.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dd, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: bad duration %q: %w", s, err)
	}
	*d = Duration(dd)
	return nil
}

// Config gathers everything a sweep run needs that is not typed in at the
// prompt: the sweep defaults and how to reach the instrument.
type Config struct {
	Sweep      Sweep      `yaml:"sweep"`
	Connection Connection `yaml:"connection"`
}

// Sweep holds the default sweep parameters, used to prefill the input form
// and as the base the run subcommand's flags override.
type Sweep struct {
	Start   float64  `yaml:"start"`
	End     float64  `yaml:"end"`
	Step    float64  `yaml:"step"`
	Settle  Duration `yaml:"settle"`
	Channel int      `yaml:"channel"`
}

// Spec converts the configured defaults into a runnable sweep Spec.
func (s Sweep) Spec() sweep.Spec {
	return sweep.Spec{
		Start:   s.Start,
		End:     s.End,
		Step:    s.Step,
		Settle:  time.Duration(s.Settle),
		Channel: s.Channel,
	}
}

// Connection selects the instrument. An empty backend searches every
// backend; an empty resource means pick the first one discovered.
type Connection struct {
	Backend  string `yaml:"backend"`
	Resource string `yaml:"resource"`
	BaudRate int    `yaml:"baud_rate"`
}

// Default returns the built-in configuration: the bench supply's usual
// −3 V → 6 V half-volt staircase with a one second settle on channel 1.
func Default() Config {
	return Config{
		Sweep: Sweep{
			Start:   -3.0,
			End:     6.0,
			Step:    0.5,
			Settle:  Duration(time.Second),
			Channel: 1,
		},
		Connection: Connection{
			BaudRate: 9600,
		},
	}
}

// Load reads the YAML file at path over the defaults, so absent fields keep
// their built-in values. An empty path is not an error and yields the
// defaults unchanged; a missing file at an explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
