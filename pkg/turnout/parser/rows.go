package parser

import (
	"strings"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
)

// scanState drives the grid scanner. Modeling the cursor jumps explicitly
// avoids the off-by-one risk of ad hoc increments around header rows.
type scanState int

const (
	scanningForHeader scanState = iota
	extractingBlock
)

// ExtractGrid runs the full discovery-and-extraction pass over a grid:
// it alternates between scanning for a header anchor and walking the data
// rows beneath it, switching back to scanning when a row independently
// looks like the next block's anchor. Records are returned in block order,
// unsorted. Returns ErrNoBlocks when no header is found anywhere.
func ExtractGrid(g *models.Grid, layout Layout) ([]models.Record, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	var (
		records []models.Record
		block   HeaderBlock
		found   bool
	)
	state := scanningForHeader
	i := 0
	for i < g.Rows() {
		switch state {
		case scanningForHeader:
			b, ok := detectHeaderAt(g, i, layout)
			if !ok {
				i++
				continue
			}
			block = b
			found = true
			state = extractingBlock
			i += 2 // data rows start below the sub-header

		case extractingBlock:
			if countPeriodTokens(g, i, layout) >= layout.MinPeriodTokens {
				state = scanningForHeader
				continue // boundary: the next block anchors here
			}
			records = append(records, extractRow(g, i, block, layout)...)
			i++
		}
	}

	if !found {
		return nil, ErrNoBlocks
	}
	return records, nil
}

// ExtractBlock walks the data rows of a single detected block, from two
// rows below its anchor until the next block boundary or the end of the
// grid, and returns the records it contributes.
func ExtractBlock(g *models.Grid, block HeaderBlock, layout Layout) []models.Record {
	var records []models.Record
	for r := block.AnchorRow + 2; r < g.Rows(); r++ {
		// Defensive re-check: stop if this row anchors another block,
		// even when the detector assumed a longer data region.
		if countPeriodTokens(g, r, layout) >= layout.MinPeriodTokens {
			break
		}
		records = append(records, extractRow(g, r, block, layout)...)
	}
	return records
}

// extractRow emits the records for one data row: one per period that has
// both a resolved column and a present cleaned value. Caption, blank, and
// aggregate rows contribute nothing. Periods are visited in ascending
// order so repeated runs produce identical sequences.
func extractRow(g *models.Grid, r int, block HeaderBlock, layout Layout) []models.Record {
	subject := cellText(g.Value(r, 0))
	if subject == "" {
		return nil
	}
	lower := strings.ToLower(subject)
	if lower == "nan" {
		return nil
	}
	for _, prefix := range layout.Captions {
		if strings.HasPrefix(lower, prefix) {
			return nil
		}
	}
	for _, agg := range layout.Aggregates {
		if lower == strings.ToLower(agg) {
			return nil
		}
	}

	var records []models.Record
	for _, period := range block.PeriodList() {
		col, ok := block.Column(period, layout.Preference)
		if !ok {
			continue
		}
		value, ok := CleanPercent(g.Value(r, col))
		if !ok {
			continue
		}
		records = append(records, models.Record{Year: period, State: subject, Turnout: value})
	}
	return records
}
