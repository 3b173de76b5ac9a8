package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
)

// ErrColumnNotFound indicates a fixed-layout file is missing its value
// column.
var ErrColumnNotFound = errors.New("turnout column not found")

// turnoutHeaders are the value-column names used across single-year
// Elections Project files; naming drifted between releases.
var turnoutHeaders = []string{
	"VEP Highest Office",
	"VEP Turnout Rate (Highest Office)",
	"VEP Turnout Rate (highest office)",
	"VEP turnout rate (Highest Office)",
}

// keyedTurnoutHeaders are the lower-cased value-column candidates for the
// keyed (2024-style) format.
var keyedTurnoutHeaders = []string{
	"vep_turnout_rate",
	"vep turnout rate",
	"vep turnout rate (highest office)",
}

// ExtractSingleYear parses a single-year Elections Project file: one
// caption row, one header row, then data rows with the state in column 0.
// All records carry the given year. Footnote rows ("Note:" or "*"-prefixed)
// and the national aggregate are skipped.
func ExtractSingleYear(rows [][]string, year int) ([]models.Record, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: file has no header rows", ErrColumnNotFound)
	}
	headers := rows[1]

	turnoutIdx := -1
	for idx, h := range headers {
		for _, cand := range turnoutHeaders {
			if h == cand {
				turnoutIdx = idx
				break
			}
		}
		if turnoutIdx >= 0 {
			break
		}
	}
	if turnoutIdx < 0 {
		return nil, fmt.Errorf("%w: no VEP turnout header in %v", ErrColumnNotFound, headers)
	}

	var records []models.Record
	for _, row := range rows[2:] {
		if len(row) <= turnoutIdx {
			continue
		}
		state := strings.TrimSpace(row[0])
		if state == "" || state == "United States" ||
			strings.HasPrefix(state, "Note:") || strings.HasPrefix(state, "*") {
			continue
		}
		if v, ok := CleanPercent(row[turnoutIdx]); ok {
			records = append(records, models.Record{Year: year, State: state, Turnout: v})
		}
	}
	return records, nil
}

// ExtractMultiYear parses the combined 1980-2014 file: two header rows,
// the year in column 0, the state in column 3, and the value under the
// exact "VEP Highest Office" header.
func ExtractMultiYear(rows [][]string) ([]models.Record, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: file has no header rows", ErrColumnNotFound)
	}
	headers := rows[1]

	const yearIdx, stateIdx = 0, 3
	turnoutIdx := -1
	for idx, h := range headers {
		if h == "VEP Highest Office" {
			turnoutIdx = idx
			break
		}
	}
	if turnoutIdx < 0 {
		return nil, fmt.Errorf("%w: no %q header", ErrColumnNotFound, "VEP Highest Office")
	}

	var records []models.Record
	for _, row := range rows[2:] {
		if len(row) <= stateIdx || len(row) <= turnoutIdx {
			continue
		}
		yearText := strings.TrimSpace(row[yearIdx])
		state := strings.TrimSpace(row[stateIdx])
		if yearText == "" || !allDigits(yearText) || state == "United States" {
			continue
		}
		year, err := strconv.Atoi(yearText)
		if err != nil {
			continue
		}
		if v, ok := CleanPercent(row[turnoutIdx]); ok {
			records = append(records, models.Record{Year: year, State: state, Turnout: v})
		}
	}
	return records, nil
}

// ExtractKeyed parses the keyed (2024-style) format: the first row is a
// header keyed by name, matched case-insensitively. All records carry the
// given year.
func ExtractKeyed(rows [][]string, year int) ([]models.Record, error) {
	if len(rows) < 1 {
		return nil, fmt.Errorf("%w: file is empty", ErrColumnNotFound)
	}

	keys := make(map[string]int, len(rows[0]))
	for idx, h := range rows[0] {
		keys[strings.ToLower(strings.TrimSpace(h))] = idx
	}

	stateIdx, ok := keys["state"]
	if !ok {
		return nil, fmt.Errorf("%w: no state column", ErrColumnNotFound)
	}
	turnoutIdx := -1
	for _, cand := range keyedTurnoutHeaders {
		if idx, found := keys[cand]; found {
			turnoutIdx = idx
			break
		}
	}
	if turnoutIdx < 0 {
		return nil, fmt.Errorf("%w: no VEP turnout column among %v", ErrColumnNotFound, keyedTurnoutHeaders)
	}

	var records []models.Record
	for _, row := range rows[1:] {
		if len(row) <= stateIdx || len(row) <= turnoutIdx {
			continue
		}
		state := strings.TrimSpace(row[stateIdx])
		if state == "" || state == "United States" {
			continue
		}
		if v, ok := CleanPercent(row[turnoutIdx]); ok {
			records = append(records, models.Record{Year: year, State: state, Turnout: v})
		}
	}
	return records, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
