package models

import "time"

// WindowFilter selects a closed historical window of captured snapshots
type WindowFilter struct {
	Start string `form:"start" json:"start"` // RFC3339
	End   string `form:"end" json:"end"`     // RFC3339
}

// Parse validates the filter and returns the window bounds
func (f WindowFilter) Parse() (time.Time, time.Time, error) {
	start, err := time.Parse(time.RFC3339, f.Start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(time.RFC3339, f.End)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
