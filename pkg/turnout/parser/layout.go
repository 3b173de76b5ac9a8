package parser

import (
	"errors"
	"fmt"
)

// ErrBadLayout indicates a Layout is missing a required element.
var ErrBadLayout = errors.New("invalid layout")

// Layout holds the heuristics that adapt the block engine to one input
// format. All fields are required; the same engine serves multiple source
// layouts by swapping these parameters rather than hardcoding them at the
// call sites.
type Layout struct {
	// Variants are the recognized sub-header label prefixes, lower case
	// (e.g. "total", "citizen").
	Variants []string
	// Preference is the ordered list of variant names to resolve a
	// period's value column from; the first present variant wins.
	Preference []string
	// Aggregates are subject labels for roll-up rows, matched exactly and
	// case-insensitively, whose rows are excluded from output.
	Aggregates []string
	// Captions are lower-case subject prefixes marking caption rows
	// (e.g. "table"), which are skipped without ending a block.
	Captions []string
	// MinPeriod and MaxPeriod bound the plausible period labels.
	MinPeriod, MaxPeriod int
	// MinPeriodTokens is the number of period tokens a row needs to count
	// as a header anchor. The default of 3 separates genuine headers from
	// incidental numeric cells.
	MinPeriodTokens int
}

// A5aLayout returns the layout for the census A5_Vote workbook, which
// prefers citizen-population percentages over totals.
func A5aLayout() Layout {
	return Layout{
		Variants:        []string{"total", "citizen"},
		Preference:      []string{"citizen", "total"},
		Aggregates:      []string{"united states"},
		Captions:        []string{"table"},
		MinPeriod:       1900,
		MaxPeriod:       2100,
		MinPeriodTokens: 3,
	}
}

// A5bLayout returns the layout for the census registration workbook,
// which prefers total-population percentages.
func A5bLayout() Layout {
	l := A5aLayout()
	l.Preference = []string{"total", "citizen"}
	return l
}

// Validate reports a structural failure when a required layout element is
// missing. A structurally incomplete layout cannot be retried; it needs a
// human to adjust configuration.
func (l Layout) Validate() error {
	if l.MinPeriod <= 0 || l.MaxPeriod <= 0 || l.MaxPeriod < l.MinPeriod {
		return fmt.Errorf("%w: period bounds [%d, %d]", ErrBadLayout, l.MinPeriod, l.MaxPeriod)
	}
	if len(l.Variants) == 0 {
		return fmt.Errorf("%w: no variant labels", ErrBadLayout)
	}
	if len(l.Preference) == 0 {
		return fmt.Errorf("%w: empty variant preference", ErrBadLayout)
	}
	if l.MinPeriodTokens < 1 {
		return fmt.Errorf("%w: min period tokens %d", ErrBadLayout, l.MinPeriodTokens)
	}
	return nil
}
