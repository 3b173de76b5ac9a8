// Package output serializes normalized records to their persisted form.
package output

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ukval/turnoutnorm/pkg/turnout/models"
)

// ToJSON renders records as a JSON array with two-space indentation, the
// shape downstream consumers read. An empty input renders as "[]", never
// "null".
func ToJSON(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return json.MarshalIndent(records, "", "  ")
}

// WriteFile serializes records to path, creating parent directories as
// needed.
func WriteFile(path string, records []models.Record) error {
	data, err := ToJSON(records)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
