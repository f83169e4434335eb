// Package ui provides terminal rendering helpers for guidelint commands.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PatternTable renders the pattern inventory for the list command
type PatternTable struct {
	writer  io.Writer
	rows    [][]string
	noColor bool
}

var patternHeaders = []string{"ID", "STRENGTH", "TITLE", "LOCATION"}

// NewPatternTable creates an empty pattern table writing to w
func NewPatternTable(w io.Writer, noColor bool) *PatternTable {
	return &PatternTable{writer: w, noColor: noColor}
}

// AddPattern adds one pattern row
func (t *PatternTable) AddPattern(id, strength, title, location string) {
	if strength == "" {
		strength = "-"
	}
	t.rows = append(t.rows, []string{id, strength, title, location})
}

// Render writes the table
func (t *PatternTable) Render() {
	widths := make([]int, len(patternHeaders))
	for i, h := range patternHeaders {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	header := color.New(color.Bold, color.FgCyan)
	separator := color.New(color.FgHiBlack)
	if t.noColor {
		header.DisableColor()
		separator.DisableColor()
	}

	for i, h := range patternHeaders {
		header.Fprint(t.writer, padRight(h, widths[i]))
		if i < len(patternHeaders)-1 {
			fmt.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for i, width := range widths {
		separator.Fprint(t.writer, strings.Repeat("─", width))
		if i < len(widths)-1 {
			separator.Fprint(t.writer, "  ")
		}
	}
	fmt.Fprintln(t.writer)

	for _, row := range t.rows {
		for i, cell := range row {
			fmt.Fprint(t.writer, padRight(cell, widths[i]))
			if i < len(row)-1 {
				fmt.Fprint(t.writer, "  ")
			}
		}
		fmt.Fprintln(t.writer)
	}
}

// padRight pads a string with spaces on the right to reach the target width
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
