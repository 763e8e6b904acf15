package models

import "time"

// ScheduledVisit is one planned service event at a stop
type ScheduledVisit struct {
	Line            string    `json:"line"`
	Brigade         string    `json:"brigade"`
	ExpectedArrival time.Time `json:"expectedArrival"`
}

// Stop is a transit stop with its precomputed district and planned visits.
// District is computed once at ingest and treated as constant for a run;
// an empty district means the stop lies outside every known district.
type Stop struct {
	ID       string           `json:"id"`
	Lat      float64          `json:"lat"`
	Lon      float64          `json:"lon"`
	District string           `json:"district"`
	Visits   []ScheduledVisit `json:"visits"`
}

// Position returns the stop's coordinates as a Point
func (s Stop) Position() Point {
	return Point{Lat: s.Lat, Lon: s.Lon}
}
