// Package turnout normalizes election turnout spreadsheets into flat
// (year, state, turnout) records. The census path runs the multi-block
// discovery engine over a raw cell grid; the project path handles the
// fixed-layout Elections Project CSV formats.
package turnout

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
	"github.com/ukval/turnoutnorm/pkg/turnout/parser"
	"github.com/ukval/turnoutnorm/pkg/turnout/reader"
)

// LayoutByName maps a CLI layout name to its engine parameters.
func LayoutByName(name string) (parser.Layout, error) {
	switch name {
	case "a5a":
		return parser.A5aLayout(), nil
	case "a5b":
		return parser.A5bLayout(), nil
	}
	return parser.Layout{}, fmt.Errorf("unknown layout %q (must be a5a or a5b)", name)
}

// Census normalizes one or more multi-block census workbooks and returns
// the merged, sorted records.
func Census(paths []string, layout parser.Layout) ([]models.Record, error) {
	var all []models.Record
	for _, path := range paths {
		records, err := censusFile(path, layout)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	parser.SortRecords(all)
	return all, nil
}

func censusFile(path string, layout parser.Layout) ([]models.Record, error) {
	grid, err := reader.Workbook(path)
	if err != nil {
		return nil, &NormalizeError{Path: path, Stage: "read", Err: err}
	}
	records, err := parser.ExtractGrid(grid, layout)
	if err != nil {
		return nil, &NormalizeError{Path: path, Stage: "extract", Err: err}
	}
	slog.Info("normalized workbook", "file", path, "records", len(records))
	return records, nil
}

// Project normalizes one or more fixed-layout Elections Project CSV files
// and returns the merged, sorted records. Each file's format is inferred
// from its name: the combined 1980-2014 file, the keyed 2024 format, or a
// single-year file whose year appears in the name.
func Project(paths []string) ([]models.Record, error) {
	var all []models.Record
	for _, path := range paths {
		records, err := projectFile(path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	parser.SortRecords(all)
	return all, nil
}

func projectFile(path string) ([]models.Record, error) {
	rows, err := reader.CSV(path)
	if err != nil {
		return nil, &NormalizeError{Path: path, Stage: "read", Err: err}
	}

	name := filepath.Base(path)
	var records []models.Record
	switch {
	case strings.Contains(name, "1980-2014"):
		records, err = parser.ExtractMultiYear(rows)
	case strings.Contains(name, "2024"):
		records, err = parser.ExtractKeyed(rows, 2024)
	default:
		year, ok := yearFromName(name)
		if !ok {
			err = fmt.Errorf("cannot infer election year from file name %q", name)
		} else {
			records, err = parser.ExtractSingleYear(rows, year)
		}
	}
	if err != nil {
		return nil, &NormalizeError{Path: path, Stage: "extract", Err: err}
	}

	slog.Info("normalized file", "file", path, "records", len(records))
	return records, nil
}

// yearFromName finds the first plausible 4-digit year in a file name.
func yearFromName(name string) (int, bool) {
	for i := 0; i+4 <= len(name); i++ {
		if i > 0 && isDigit(name[i-1]) {
			continue
		}
		if i+4 < len(name) && isDigit(name[i+4]) {
			continue
		}
		s := name[i : i+4]
		if !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[2]) || !isDigit(s[3]) {
			continue
		}
		y, err := strconv.Atoi(s)
		if err == nil && y >= 1900 && y <= 2100 {
			return y, true
		}
	}
	return 0, false
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
