// Copyright (c) 2026 The Computer-Based-Measurement-Control developers. All rights reserved.
// Project site: https://github.com/Ganesh999-tech/Computer-Based-Measurement-Control
// Use of this source code is governed by a MIT-style license that
// can be found in the LICENSE.txt file for the project.

package tui

import (
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Ganesh999-tech/Computer-Based-Measurement-Control/pkg/sweep"
)

// Braille cell geometry: 2 dot columns by 4 dot rows per terminal cell.
const (
	dotsPerCellX = 2
	dotsPerCellY = 4
	brailleBase  = 0x2800
)

// brailleBit maps a dot position inside one cell to its bit in the braille
// patterns block.
var brailleBit = [dotsPerCellY][dotsPerCellX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvas is a braille dot grid. Dot coordinates have their origin at the
// bottom-left; out-of-range dots are dropped.
type canvas struct {
	w, h  int // in cells
	cells []rune
}

func newCanvas(w, h int) *canvas {
	return &canvas{w: w, h: h, cells: make([]rune, w*h)}
}

func (c *canvas) set(x, y int) {
	if x < 0 || y < 0 || x >= c.w*dotsPerCellX || y >= c.h*dotsPerCellY {
		return
	}
	yy := c.h*dotsPerCellY - 1 - y
	c.cells[(yy/dotsPerCellY)*c.w+x/dotsPerCellX] |= brailleBit[yy%dotsPerCellY][x%dotsPerCellX]
}

func (c *canvas) row(i int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		mask := c.cells[i*c.w+x]
		if mask == 0 {
			b.WriteByte(' ')
			continue
		}
		b.WriteRune(brailleBase | mask)
	}
	return b.String()
}

// line draws the dot segment from (x0,y0) to (x1,y1).
func (c *canvas) line(x0, y0, x1, y1 int) {
	dx := iabs(x1 - x0)
	dy := -iabs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// renderChart draws the accumulated I–V curve into a width x height cell
// box: a left current-axis gutter, the braille canvas, and a voltage axis
// underneath. Returns "" when there is nothing to draw or no room to draw
// it.
func renderChart(points []sweep.Point, width, height int) string {
	if len(points) == 0 {
		return ""
	}

	vmin, vmax := points[0].Voltage, points[0].Voltage
	imin, imax := points[0].Current, points[0].Current
	for _, p := range points[1:] {
		vmin = math.Min(vmin, p.Voltage)
		vmax = math.Max(vmax, p.Voltage)
		imin = math.Min(imin, p.Current)
		imax = math.Max(imax, p.Current)
	}
	vmin, vmax = widen(vmin, vmax)
	imin, imax = widen(imin, imax)

	hiLabel := axisLabel(imax)
	loLabel := axisLabel(imin)
	gutter := max(runewidth.StringWidth(hiLabel), runewidth.StringWidth(loLabel))

	pw := width - gutter - 1
	ph := height - 2
	if pw < 8 || ph < 2 {
		return ""
	}

	c := newCanvas(pw, ph)
	dx, dy := pw*dotsPerCellX-1, ph*dotsPerCellY-1
	px, py := -1, -1
	for _, p := range points {
		x := int(math.Round((p.Voltage - vmin) / (vmax - vmin) * float64(dx)))
		y := int(math.Round((p.Current - imin) / (imax - imin) * float64(dy)))
		if px >= 0 {
			c.line(px, py, x, y)
		} else {
			c.set(x, y)
		}
		px, py = x, y
	}

	var b strings.Builder
	for row := 0; row < ph; row++ {
		label := ""
		switch row {
		case 0:
			label = hiLabel
		case ph - 1:
			label = loLabel
		}
		b.WriteString(labelStyle.Render(pad(label, gutter)))
		b.WriteString(axisStyle.Render("│"))
		b.WriteString(dotStyle.Render(c.row(row)))
		b.WriteByte('\n')
	}

	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", pw)))
	b.WriteByte('\n')

	left, right := axisLabel(vmin), axisLabel(vmax)
	b.WriteString(strings.Repeat(" ", gutter+1))
	if lw, rw := runewidth.StringWidth(left), runewidth.StringWidth(right); lw+rw+2 <= pw {
		b.WriteString(labelStyle.Render(left))
		b.WriteString(strings.Repeat(" ", pw-lw-rw))
		b.WriteString(labelStyle.Render(right))
	} else {
		b.WriteString(labelStyle.Render(left))
	}
	return b.String()
}

// widen pushes apart a degenerate axis range so a flat trace still lands
// mid-scale.
func widen(lo, hi float64) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	pad := math.Abs(lo) / 10
	if pad == 0 {
		pad = 0.5
	}
	return lo - pad, hi + pad
}

// axisLabel keeps tick labels short; currents live in the milli/micro range
// and read best in compact scientific form.
func axisLabel(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}

// pad right-aligns s in a field of w cells.
func pad(s string, w int) string {
	if d := w - runewidth.StringWidth(s); d > 0 {
		return strings.Repeat(" ", d) + s
	}
	return s
}
