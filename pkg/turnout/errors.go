package turnout

import "fmt"

// NormalizeError represents a structural failure while normalizing one
// input file. Cell-level anomalies never surface as errors; only
// structural problems (unreadable file, no header blocks, missing value
// column) do, and they identify the file so a human can inspect the
// layout.
type NormalizeError struct {
	Path  string
	Stage string // "read", "extract"
	Err   error
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("normalize %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *NormalizeError) Unwrap() error {
	return e.Err
}
