package models

// Record is one normalized observation: a percentage value for a subject
// in a given year. The JSON field names are fixed for compatibility with
// downstream consumers of the persisted dataset.
type Record struct {
	// Year is the election year the value belongs to.
	Year int `json:"year"`
	// State is the subject label, e.g. a state name.
	State string `json:"state"`
	// Turnout is the percentage value, e.g. 63.6.
	Turnout float64 `json:"turnout"`
}
