// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/config"
	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
)

// Form field order; tab cycles through it.
const (
	fieldStart = iota
	fieldEnd
	fieldStep
	fieldSettle
	fieldChannel
	fieldResource
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Start (V)",
	"End (V)",
	"Step (V)",
	"Settle",
	"Channel",
	"Resource",
}

// form is the sweep parameter entry block. Exactly one field is focused
// while the form is enabled; a running sweep disables the whole block.
type form struct {
	inputs  [fieldCount]textinput.Model
	focus   int
	enabled bool
}

func newForm(cfg config.Config) form {
	var f form
	for i := range f.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 14
		f.inputs[i] = ti
	}
	f.inputs[fieldResource].CharLimit = 128
	f.inputs[fieldResource].Width = 34

	f.inputs[fieldStart].SetValue(formatVolts(cfg.Sweep.Start))
	f.inputs[fieldEnd].SetValue(formatVolts(cfg.Sweep.End))
	f.inputs[fieldStep].SetValue(formatVolts(cfg.Sweep.Step))
	f.inputs[fieldSettle].SetValue(time.Duration(cfg.Sweep.Settle).String())
	f.inputs[fieldChannel].SetValue(strconv.Itoa(cfg.Sweep.Channel))
	f.inputs[fieldResource].SetValue(cfg.Connection.Resource)
	f.inputs[fieldResource].Placeholder = "ctrl+r to scan"

	f.enabled = true
	f.inputs[f.focus].Focus()
	return f
}

func formatVolts(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// cycle moves focus by delta, wrapping around the field order.
func (f form) cycle(delta int) form {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
	return f
}

// setEnabled blurs every field while a sweep runs and restores focus after.
func (f form) setEnabled(on bool) form {
	f.enabled = on
	if on {
		f.inputs[f.focus].Focus()
		return f
	}
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	return f
}

// update forwards msg to the focused field.
func (f form) update(msg tea.Msg) (form, tea.Cmd) {
	if !f.enabled {
		return f, nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// resource returns the trimmed resource field value.
func (f form) resource() string {
	return strings.TrimSpace(f.inputs[fieldResource].Value())
}

// setResource overwrites the resource field.
func (f *form) setResource(r string) {
	f.inputs[fieldResource].SetValue(r)
}

// values parses the form into a sweep spec and resource string. The settle
// field accepts a Go duration ("750ms") or a bare number of seconds.
func (f form) values() (sweep.Spec, string, error) {
	var spec sweep.Spec
	var err error

	if spec.Start, err = parseVolts(f.inputs[fieldStart].Value(), "start"); err != nil {
		return spec, "", err
	}
	if spec.End, err = parseVolts(f.inputs[fieldEnd].Value(), "end"); err != nil {
		return spec, "", err
	}
	if spec.Step, err = parseVolts(f.inputs[fieldStep].Value(), "step"); err != nil {
		return spec, "", err
	}
	if spec.Settle, err = parseSettle(f.inputs[fieldSettle].Value()); err != nil {
		return spec, "", err
	}

	ch := strings.TrimSpace(f.inputs[fieldChannel].Value())
	if spec.Channel, err = strconv.Atoi(ch); err != nil {
		return spec, "", fmt.Errorf("bad channel %q", ch)
	}

	resource := f.resource()
	if resource == "" {
		return spec, "", fmt.Errorf("no resource selected")
	}
	return spec, resource, nil
}

func parseVolts(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s voltage %q", name, strings.TrimSpace(s))
	}
	return v, nil
}

func parseSettle(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if sec, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(sec * float64(time.Second)), nil
	}
	return 0, fmt.Errorf("bad settle time %q", s)
}

// view renders the labelled fields, one per line.
func (f form) view() string {
	var b strings.Builder
	for i := range f.inputs {
		label := fieldLabels[i]
		style := labelStyle
		if f.enabled && i == f.focus {
			style = focusedStyle
		}
		b.WriteString(style.Render(runewidth.FillRight(label, 10)))
		b.WriteString("  ")
		b.WriteString(f.inputs[i].View())
		if i < fieldCount-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
