// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/config"
)

func defaultForm() form {
	cfg := config.Default()
	cfg.Connection.Resource = "SIM::diode::INSTR"
	return newForm(cfg)
}

func TestFormValuesFromDefaults(t *testing.T) {
	spec, resource, err := defaultForm().values()
	require.NoError(t, err)

	assert.Equal(t, -3.0, spec.Start)
	assert.Equal(t, 6.0, spec.End)
	assert.Equal(t, 0.5, spec.Step)
	assert.Equal(t, time.Second, spec.Settle)
	assert.Equal(t, 1, spec.Channel)
	assert.Equal(t, "SIM::diode::INSTR", resource)
}

func TestFormSettleAcceptsSecondsNumber(t *testing.T) {
	f := defaultForm()
	f.inputs[fieldSettle].SetValue("0.25")

	spec, _, err := f.values()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, spec.Settle)
}

func TestFormSettleAcceptsDuration(t *testing.T) {
	f := defaultForm()
	f.inputs[fieldSettle].SetValue("750ms")

	spec, _, err := f.values()
	require.NoError(t, err)
	assert.Equal(t, 750*time.Millisecond, spec.Settle)
}

func TestFormValueErrors(t *testing.T) {
	tests := []struct {
		name  string
		field int
		value string
		want  string
	}{
		{"start", fieldStart, "x", "bad start voltage"},
		{"end", fieldEnd, "", "bad end voltage"},
		{"step", fieldStep, "0..5", "bad step voltage"},
		{"settle", fieldSettle, "fast", "bad settle time"},
		{"channel", fieldChannel, "one", "bad channel"},
		{"resource", fieldResource, "  ", "no resource selected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := defaultForm()
			f.inputs[tt.field].SetValue(tt.value)
			_, _, err := f.values()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestFormCycle(t *testing.T) {
	f := defaultForm()
	assert.Equal(t, fieldStart, f.focus)
	assert.True(t, f.inputs[fieldStart].Focused())

	f = f.cycle(1)
	assert.Equal(t, fieldEnd, f.focus)
	assert.False(t, f.inputs[fieldStart].Focused())
	assert.True(t, f.inputs[fieldEnd].Focused())

	f = f.cycle(-1)
	f = f.cycle(-1)
	assert.Equal(t, fieldResource, f.focus)
	assert.True(t, f.inputs[fieldResource].Focused())
}

func TestFormSetEnabled(t *testing.T) {
	f := defaultForm().setEnabled(false)
	for i := range f.inputs {
		assert.False(t, f.inputs[i].Focused())
	}

	f = f.setEnabled(true)
	assert.True(t, f.inputs[f.focus].Focused())
}

func TestFormViewListsFields(t *testing.T) {
	v := defaultForm().view()
	for _, label := range fieldLabels {
		assert.Contains(t, v, label)
	}
	assert.Contains(t, v, "SIM::diode::INSTR")
}
