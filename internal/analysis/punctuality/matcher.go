// Package punctuality matches scheduled stop visits against observed vehicle
// positions and aggregates lateness per stop and per district.
package punctuality

import (
	"time"

	"github.com/wawbus/fleet-analytics-go/internal/models"
)

// secondsOfDay strips the date and returns seconds since midnight.
// The whole matching pipeline works in time-of-day terms: schedules repeat
// daily and snapshots are captured within a single service day.
func secondsOfDay(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Matcher finds the observed arrival for a scheduled stop visit
type Matcher struct {
	radiusMeters float64
	lowerBound   time.Duration
	upperBound   time.Duration
}

// NewMatcher creates a matcher with the given radius and asymmetric window
// bounds. The lower bound is the smaller one: a vehicle may run a little
// early, but service quality cares mostly about lateness.
func NewMatcher(radiusMeters float64, lowerBound, upperBound time.Duration) *Matcher {
	return &Matcher{
		radiusMeters: radiusMeters,
		lowerBound:   lowerBound,
		upperBound:   upperBound,
	}
}

// FindArrival scans the snapshot window for rows of (brigade, line) within
// the matching radius of the stop, inside the time-of-day window
// [expected-lower, expected+upper]. Among all candidates the one closest to
// the stop wins; on equal distance the first encountered in snapshot/row
// order is kept. The returned arrival is seconds since midnight.
//
// Rows with malformed timestamps are skipped, never an error. A pair with no
// qualifying rows anywhere in the window yields found == false.
func (m *Matcher) FindArrival(snapshots []models.PositionSnapshot, brigade, line string,
	stopPoint models.Point, expected time.Time) (arrivalSec int, found bool) {

	windowLower := secondsOfDay(expected.Add(-m.lowerBound))
	windowUpper := secondsOfDay(expected.Add(m.upperBound))

	var minimumDistance float64
	haveCandidate := false

	for _, snapshot := range snapshots {
		captured := secondsOfDay(snapshot.CapturedAt)
		if captured < windowLower || captured > windowUpper {
			continue
		}

		for _, row := range snapshot.Rows {
			if row.Brigade != brigade || row.Line != line {
				continue
			}

			dist := stopPoint.DistanceMeters(row.Position())
			if dist > m.radiusMeters {
				continue
			}

			rowTime, err := time.Parse(models.RowTimeLayout, row.Time)
			if err != nil {
				continue
			}

			rowSec := secondsOfDay(rowTime)
			if rowSec < windowLower {
				continue
			}

			if !haveCandidate || dist < minimumDistance {
				haveCandidate = true
				minimumDistance = dist
				arrivalSec = rowSec
			}
		}
	}

	return arrivalSec, haveCandidate
}
