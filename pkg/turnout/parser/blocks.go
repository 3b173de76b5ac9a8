package parser

import (
	"errors"
	"sort"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
)

// ErrNoBlocks indicates no header block was detected anywhere in the grid.
var ErrNoBlocks = errors.New("no header blocks found")

// HeaderBlock is one detected table header within a multi-table sheet.
type HeaderBlock struct {
	// AnchorRow is the grid row holding the period tokens.
	AnchorRow int
	// Periods maps each period found on the anchor row to the variant
	// columns discovered on the sub-header row beneath it. A period with
	// no matched variant keeps an empty map and contributes no records.
	Periods map[int]map[string]int
}

// PeriodList returns the block's periods in ascending order.
func (b HeaderBlock) PeriodList() []int {
	periods := make([]int, 0, len(b.Periods))
	for p := range b.Periods {
		periods = append(periods, p)
	}
	sort.Ints(periods)
	return periods
}

// Column resolves the value column for a period under the given ordered
// variant preference. ok=false when no preferred variant is mapped.
func (b HeaderBlock) Column(period int, preference []string) (int, bool) {
	m, ok := b.Periods[period]
	if !ok {
		return 0, false
	}
	for _, name := range preference {
		if col, found := m[name]; found {
			return col, true
		}
	}
	return 0, false
}

// DetectBlocks scans the grid top to bottom and returns all header blocks
// in row order. Anchor rows never overlap: after a block is emitted the
// scan resumes below its sub-header row. Returns ErrNoBlocks when the grid
// contains no recognizable header.
func DetectBlocks(g *models.Grid, layout Layout) ([]HeaderBlock, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	var blocks []HeaderBlock
	i := 0
	for i < g.Rows() {
		block, ok := detectHeaderAt(g, i, layout)
		if !ok {
			i++
			continue
		}
		blocks = append(blocks, block)
		i += 2 // past the anchor and sub-header rows
	}

	if len(blocks) == 0 {
		return nil, ErrNoBlocks
	}
	return blocks, nil
}

// detectHeaderAt tests whether row i anchors a header block and, if so,
// builds its period-to-column index from the sub-header row i+1.
func detectHeaderAt(g *models.Grid, i int, layout Layout) (HeaderBlock, bool) {
	if i+1 >= g.Rows() {
		return HeaderBlock{}, false
	}
	tokens := headerTokens(g, i, layout)
	if len(tokens) < layout.MinPeriodTokens {
		return HeaderBlock{}, false
	}

	block := HeaderBlock{AnchorRow: i, Periods: make(map[int]map[string]int, len(tokens))}
	for _, tok := range tokens {
		m := make(map[string]int, 2)
		// The sub-header for a period sits at the token's column or the
		// one to its right; the first match per variant wins.
		for _, col := range []int{tok.col, tok.col + 1} {
			name, ok := matchVariant(g.Value(i+1, col), layout.Variants)
			if !ok {
				continue
			}
			if _, dup := m[name]; !dup {
				m[name] = col
			}
		}
		block.Periods[tok.period] = m
	}
	return block, true
}

type periodToken struct {
	col    int
	period int
}

// headerTokens collects the period tokens on a row, skipping column 0
// (reserved for subject labels).
func headerTokens(g *models.Grid, row int, layout Layout) []periodToken {
	var tokens []periodToken
	for j := 1; j < g.Cols(); j++ {
		if p, ok := ParsePeriod(g.Value(row, j), layout.MinPeriod, layout.MaxPeriod); ok {
			tokens = append(tokens, periodToken{col: j, period: p})
		}
	}
	return tokens
}

// countPeriodTokens is the boundary test shared with the row extractor: a
// data row that independently carries enough period tokens marks the start
// of the next block.
func countPeriodTokens(g *models.Grid, row int, layout Layout) int {
	n := 0
	for j := 1; j < g.Cols(); j++ {
		if _, ok := ParsePeriod(g.Value(row, j), layout.MinPeriod, layout.MaxPeriod); ok {
			n++
		}
	}
	return n
}
