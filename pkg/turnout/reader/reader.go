// Package reader turns input files into the raw cell structures the
// extraction engine consumes.
package reader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
)

// Workbook reads the first sheet of an xlsx workbook into a Grid.
// Numeric-looking cell text is coerced to int64/float64 so the engine sees
// typed scalars; blank rows and columns are dropped by the Grid itself.
func Workbook(path string) (*models.Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	cells := make([][]any, len(rows))
	for i, row := range rows {
		cells[i] = make([]any, len(row))
		for j, v := range row {
			cells[i][j] = parseValue(v)
		}
	}
	return models.NewGrid(cells), nil
}

// CSV reads a delimited text file into string rows. Ragged rows are
// allowed; the fixed-layout extractors length-check per row.
func CSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

// parseValue attempts to parse cell text as a number.
// Returns int64 for integers, float64 for decimals (including the NaN
// sentinel), nil for blanks, or the original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
