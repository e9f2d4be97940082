// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ivsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, -3.0, cfg.Sweep.Start)
	assert.Equal(t, 6.0, cfg.Sweep.End)
	assert.Equal(t, 0.5, cfg.Sweep.Step)
	assert.Equal(t, time.Second, time.Duration(cfg.Sweep.Settle))
	assert.Equal(t, 1, cfg.Sweep.Channel)
	assert.Equal(t, 9600, cfg.Connection.BaudRate)
	assert.Empty(t, cfg.Connection.Backend)
	assert.Empty(t, cfg.Connection.Resource)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoadKeepsDefaultsForAbsentFields(t *testing.T) {
	path := writeConfig(t, `
sweep:
  start: 0
  end: 1
  step: 0.3
  settle: 250ms
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Sweep.Start)
	assert.Equal(t, 1.0, cfg.Sweep.End)
	assert.Equal(t, 0.3, cfg.Sweep.Step)
	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.Sweep.Settle))

	// Untouched fields keep their built-in values.
	assert.Equal(t, 1, cfg.Sweep.Channel)
	assert.Equal(t, 9600, cfg.Connection.BaudRate)
}

func TestLoadConnection(t *testing.T) {
	path := writeConfig(t, `
connection:
  backend: sim
  resource: SIM::resistor::INSTR
  baud_rate: 115200
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sim", cfg.Connection.Backend)
	assert.Equal(t, "SIM::resistor::INSTR", cfg.Connection.Resource)
	assert.Equal(t, 115200, cfg.Connection.BaudRate)
}

func TestLoadIgnoresUnknownFields(t *testing.T) {
	path := writeConfig(t, `
sweep:
  start: 2
  ramp_rate: 10
plotting:
  theme: dark
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Sweep.Start)
}

func TestLoadBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "sweep: ["))
	assert.Error(t, err)
}

func TestLoadBadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "sweep:\n  settle: fast\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad duration")
}

func TestDurationMarshalsAsString(t *testing.T) {
	out, err := yaml.Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(out), "settle: 1s")

	var cfg Config
	require.NoError(t, yaml.Unmarshal(out, &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestSweepSpec(t *testing.T) {
	spec := Default().Sweep.Spec()
	assert.Equal(t, -3.0, spec.Start)
	assert.Equal(t, 6.0, spec.End)
	assert.Equal(t, 0.5, spec.Step)
	assert.Equal(t, time.Second, spec.Settle)
	assert.Equal(t, 1, spec.Channel)
}
