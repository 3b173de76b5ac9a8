package parser

import (
	"sort"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
)

// SortRecords orders records by year ascending, then state ascending.
// The sort is stable, so duplicate (year, state) pairs from overlapping
// blocks keep their emission order; duplicates are deliberately not
// deduplicated.
func SortRecords(records []models.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Year != records[j].Year {
			return records[i].Year < records[j].Year
		}
		return records[i].State < records[j].State
	})
}
