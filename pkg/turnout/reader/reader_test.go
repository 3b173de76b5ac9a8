package reader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B1", 2020)
	f.SetCellValue(sheetName, "C1", 2016)
	f.SetCellValue(sheetName, "B2", "Total")
	f.SetCellValue(sheetName, "C2", "Total")
	f.SetCellValue(sheetName, "A3", "Alabama")
	f.SetCellValue(sheetName, "B3", "63.6%")
	f.SetCellValue(sheetName, "C3", 59.1)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	g, err := Workbook(tmpFile)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}

	if g.Rows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", g.Rows())
	}
	if g.Cols() != 3 {
		t.Fatalf("Expected 3 cols, got %d", g.Cols())
	}

	// Numeric cells coerce to typed scalars, text stays text.
	if g.Value(0, 1) != int64(2020) {
		t.Errorf("Expected int64(2020), got %v (type %T)", g.Value(0, 1), g.Value(0, 1))
	}
	if g.Value(2, 0) != "Alabama" {
		t.Errorf("Expected \"Alabama\", got %v", g.Value(2, 0))
	}
	if g.Value(2, 1) != "63.6%" {
		t.Errorf("Expected \"63.6%%\", got %v", g.Value(2, 1))
	}
	if g.Value(2, 2) != 59.1 {
		t.Errorf("Expected 59.1, got %v (type %T)", g.Value(2, 2), g.Value(2, 2))
	}
}

func TestWorkbookMissingFile(t *testing.T) {
	if _, err := Workbook(filepath.Join(t.TempDir(), "absent.xlsx")); err == nil {
		t.Fatal("Expected error for missing file")
	}
}

func TestCSV(t *testing.T) {
	content := "State,Rate\nAlabama,59.1\nWyoming,64.6,extra\n"
	tmpFile := filepath.Join(t.TempDir(), "test.csv")
	if err := os.WriteFile(tmpFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	rows, err := CSV(tmpFile)
	if err != nil {
		t.Fatalf("CSV failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	// Ragged rows are allowed.
	if len(rows[2]) != 3 {
		t.Errorf("Expected 3 fields in ragged row, got %d", len(rows[2]))
	}
	if rows[1][0] != "Alabama" {
		t.Errorf("Expected \"Alabama\", got %q", rows[1][0])
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"2020", int64(2020)},
		{"63.6", 63.6},
		{"-100", int64(-100)},
		{"Alabama", "Alabama"},
		{"63.6%", "63.6%"},
		{"", nil},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type %T), expected %v (type %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
