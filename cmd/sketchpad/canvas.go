package main

import (
	"github.com/gdamore/tcell/v2"
)

// Every terminal cell holds a 2x4 grid of braille dots.
const (
	dotsX = 2
	dotsY = 4
)

// brailleBits maps a dot position within a cell to its bit in the braille
// pattern block starting at U+2800.
var brailleBits = [dotsY][dotsX]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// canvas is a dot raster drawn with braille characters. Every cell takes the
// color of the last dot set in it.
type canvas struct {
	cols, rows int
	bits       []uint8
	colors     []tcell.Color
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{}
	c.resize(cols, rows)
	return c
}

func (c *canvas) resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	c.cols, c.rows = cols, rows
	c.bits = make([]uint8, cols*rows)
	c.colors = make([]tcell.Color, cols*rows)
}

// size returns the canvas size in dots.
func (c *canvas) size() (int, int) {
	return c.cols * dotsX, c.rows * dotsY
}

func (c *canvas) clear() {
	clear(c.bits)
	clear(c.colors)
}

// set sets the dot at (x, y). Dots outside the canvas are ignored.
func (c *canvas) set(x, y int, col tcell.Color) {
	w, h := c.size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	i := (y/dotsY)*c.cols + x/dotsX
	c.bits[i] |= brailleBits[y%dotsY][x%dotsX]
	c.colors[i] = col
}

// line sets the dots of a line from (x0, y0) to (x1, y1).
func (c *canvas) line(x0, y0, x1, y1 int, col tcell.Color) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// disc sets the dots within radius r of (x, y).
func (c *canvas) disc(x, y, r int, col tcell.Color) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.set(x+dx, y+dy, col)
			}
		}
	}
}

// cell returns the character and color of the cell at (col, row).
func (c *canvas) cell(col, row int) (rune, tcell.Color) {
	i := row*c.cols + col
	if c.bits[i] == 0 {
		return ' ', tcell.ColorDefault
	}
	return 0x2800 + rune(c.bits[i]), c.colors[i]
}

func (c *canvas) draw(s tcell.Screen) {
	for row := range c.rows {
		for col := range c.cols {
			r, fg := c.cell(col, row)
			s.SetContent(col, row, r, nil, tcell.StyleDefault.Foreground(fg))
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
