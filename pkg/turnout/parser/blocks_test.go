package parser

import (
	"errors"
	"testing"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
)

func grid(rows ...[]any) *models.Grid {
	return models.NewGrid(rows)
}

func TestDetectBlocksSingle(t *testing.T) {
	g := grid(
		[]any{"", int64(2020), int64(2016), int64(2012)},
		[]any{"", "Total", "Total", "Total"},
		[]any{"Alabama", "63.6%", "59.1", "58.0"},
	)

	blocks, err := DetectBlocks(g, A5aLayout())
	if err != nil {
		t.Fatalf("DetectBlocks failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}

	b := blocks[0]
	if b.AnchorRow != 0 {
		t.Errorf("Expected anchor row 0, got %d", b.AnchorRow)
	}
	wantPeriods := []int{2012, 2016, 2020}
	got := b.PeriodList()
	if len(got) != len(wantPeriods) {
		t.Fatalf("Expected periods %v, got %v", wantPeriods, got)
	}
	for i, p := range wantPeriods {
		if got[i] != p {
			t.Errorf("Period %d: expected %d, got %d", i, p, got[i])
		}
	}

	if col, ok := b.Column(2020, []string{"total"}); !ok || col != 1 {
		t.Errorf("Column(2020) = (%d, %v), want (1, true)", col, ok)
	}
}

func TestDetectBlocksNone(t *testing.T) {
	g := grid(
		[]any{"State", "Rate"},
		[]any{"Alabama", "63.6"},
	)

	_, err := DetectBlocks(g, A5aLayout())
	if !errors.Is(err, ErrNoBlocks) {
		t.Fatalf("Expected ErrNoBlocks, got %v", err)
	}
}

func TestDetectBlocksAnchorsIncreasing(t *testing.T) {
	g := grid(
		[]any{"", int64(2020), int64(2016), int64(2012)},
		[]any{"", "Total", "Total", "Total"},
		[]any{"Alabama", "61", "59", "58"},
		[]any{"", int64(2008), int64(2004), int64(2000)},
		[]any{"", "Total", "Total", "Total"},
		[]any{"Alaska", "50", "51", "52"},
	)

	blocks, err := DetectBlocks(g, A5aLayout())
	if err != nil {
		t.Fatalf("DetectBlocks failed: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].AnchorRow >= blocks[1].AnchorRow {
		t.Errorf("Anchor rows not increasing: %d, %d", blocks[0].AnchorRow, blocks[1].AnchorRow)
	}
	if blocks[1].AnchorRow != 3 {
		t.Errorf("Expected second anchor at row 3, got %d", blocks[1].AnchorRow)
	}
}

func TestDetectBlocksSkipsSubHeaderRow(t *testing.T) {
	// The sub-header row carries period-like tokens of its own; the scan
	// cursor must jump past it rather than treat it as another anchor.
	g := grid(
		[]any{"", int64(2020), int64(2016), int64(2012)},
		[]any{"", int64(1996), int64(1992), int64(1988)},
		[]any{"Alabama", "61", "59", "58"},
	)

	blocks, err := DetectBlocks(g, A5aLayout())
	if err != nil {
		t.Fatalf("DetectBlocks failed: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
}

func TestDetectBlocksUnmappedPeriod(t *testing.T) {
	// A period whose sub-header matches no variant is still registered,
	// but resolves to no column.
	g := grid(
		[]any{"", int64(2020), int64(2016), int64(2012)},
		[]any{"", "Total", "Total", "Registered"},
		[]any{"Alabama", "61", "59", "58"},
	)

	blocks, err := DetectBlocks(g, A5aLayout())
	if err != nil {
		t.Fatalf("DetectBlocks failed: %v", err)
	}

	b := blocks[0]
	if _, ok := b.Periods[2012]; !ok {
		t.Fatal("Period 2012 not registered")
	}
	if col, ok := b.Column(2012, []string{"citizen", "total"}); ok {
		t.Errorf("Expected no column for 2012, got %d", col)
	}
}

func TestDetectBlocksVariantPair(t *testing.T) {
	// Total and citizen columns side by side under one period.
	g := grid(
		[]any{"", int64(2020), "", int64(2016), int64(2012)},
		[]any{"", "Total", "Citizen", "Total", "Total"},
		[]any{"Alabama", "61", "63", "59", "58"},
	)

	blocks, err := DetectBlocks(g, A5aLayout())
	if err != nil {
		t.Fatalf("DetectBlocks failed: %v", err)
	}

	b := blocks[0]
	if col, ok := b.Column(2020, []string{"citizen", "total"}); !ok || col != 2 {
		t.Errorf("Citizen-first Column(2020) = (%d, %v), want (2, true)", col, ok)
	}
	if col, ok := b.Column(2020, []string{"total", "citizen"}); !ok || col != 1 {
		t.Errorf("Total-first Column(2020) = (%d, %v), want (1, true)", col, ok)
	}
}

func TestDetectBlocksBadLayout(t *testing.T) {
	g := grid(
		[]any{"", int64(2020), int64(2016), int64(2012)},
		[]any{"", "Total", "Total", "Total"},
	)

	_, err := DetectBlocks(g, Layout{})
	if !errors.Is(err, ErrBadLayout) {
		t.Fatalf("Expected ErrBadLayout, got %v", err)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Layout)
		ok     bool
	}{
		{"valid", func(l *Layout) {}, true},
		{"zero bounds", func(l *Layout) { l.MinPeriod, l.MaxPeriod = 0, 0 }, false},
		{"inverted bounds", func(l *Layout) { l.MinPeriod, l.MaxPeriod = 2100, 1900 }, false},
		{"no variants", func(l *Layout) { l.Variants = nil }, false},
		{"no preference", func(l *Layout) { l.Preference = nil }, false},
		{"zero token threshold", func(l *Layout) { l.MinPeriodTokens = 0 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := A5aLayout()
			tt.mutate(&l)
			err := l.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrBadLayout) {
				t.Errorf("Validate() = %v, want ErrBadLayout", err)
			}
		})
	}
}
