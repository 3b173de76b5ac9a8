// Package models defines data structures for turnout extraction.
package models

import "math"

// Grid is a read-only 2-D view of raw cell values.
//
// Cells are nil (blank), float64/int64 (numeric, possibly NaN), or string.
// Rows and columns that are entirely blank are removed at construction, so
// all indices seen by the extraction engine are post-filter.
type Grid struct {
	cells [][]any
	cols  int
}

// NewGrid builds a Grid from raw (possibly ragged) cell rows, dropping
// rows and columns that contain no data.
func NewGrid(cells [][]any) *Grid {
	maxCols := 0
	for _, row := range cells {
		if len(row) > maxCols {
			maxCols = len(row)
		}
	}

	colHasData := make([]bool, maxCols)
	var kept [][]any
	for _, row := range cells {
		hasData := false
		for j, v := range row {
			if !isBlank(v) {
				hasData = true
				colHasData[j] = true
			}
		}
		if hasData {
			kept = append(kept, row)
		}
	}

	// Rebuild rows without the blank columns.
	var colMap []int
	for j, ok := range colHasData {
		if ok {
			colMap = append(colMap, j)
		}
	}

	filtered := make([][]any, len(kept))
	for i, row := range kept {
		filtered[i] = make([]any, len(colMap))
		for k, j := range colMap {
			if j < len(row) {
				filtered[i][k] = row[j]
			}
		}
	}

	return &Grid{cells: filtered, cols: len(colMap)}
}

// Rows returns the number of rows after blank-row filtering.
func (g *Grid) Rows() int { return len(g.cells) }

// Cols returns the number of columns after blank-column filtering.
func (g *Grid) Cols() int { return g.cols }

// Value returns the cell at (row, col), or nil when the cell is blank or
// the indices are out of range.
func (g *Grid) Value(row, col int) any {
	if row < 0 || row >= len(g.cells) {
		return nil
	}
	r := g.cells[row]
	if col < 0 || col >= len(r) {
		return nil
	}
	return r[col]
}

// isBlank reports whether a raw cell carries no data.
func isBlank(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case float64:
		return math.IsNaN(x)
	}
	return false
}
