// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	axisStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dotStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// stateStyle colors the terminal state badge.
func stateStyle(s sweep.State) lipgloss.Style {
	switch s {
	case sweep.Completed:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	case sweep.Cancelled:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	case sweep.Failed:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	default:
		return statusStyle
	}
}
