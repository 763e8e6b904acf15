package punctuality

import (
	"log"

	"github.com/wawbus/fleet-analytics-go/internal/models"
)

// Aggregator drives the matcher over every (stop, scheduled visit) pair and
// accumulates per-stop and per-district lateness
type Aggregator struct {
	matcher *Matcher
}

// NewAggregator creates an aggregator around a matcher
func NewAggregator(matcher *Matcher) *Aggregator {
	return &Aggregator{matcher: matcher}
}

// Aggregate runs the punctuality analysis over the full stop list.
// A visit counts only if a match was found and the match does not exceed the
// lateness ceiling expected+upper. The ceiling re-checks what the matcher's
// window already enforces; both checks are kept so the filtering stays
// identical even if the two bounds are ever tuned apart.
func (a *Aggregator) Aggregate(stops []models.Stop, snapshots []models.PositionSnapshot) *models.PunctualityReport {
	report := &models.PunctualityReport{
		StopLateCounts:     make(map[string]int),
		DistrictLateCounts: make(map[string]int),
		DistrictLateTimes:  make(map[string][]float64),
	}

	visits := 0
	for _, stop := range stops {
		stopPoint := stop.Position()

		for _, visit := range stop.Visits {
			visits++

			arrivalSec, found := a.matcher.FindArrival(snapshots, visit.Brigade, visit.Line, stopPoint, visit.ExpectedArrival)
			if !found {
				continue
			}

			maximumSec := secondsOfDay(visit.ExpectedArrival.Add(a.matcher.upperBound))
			if arrivalSec > maximumSec {
				continue
			}

			a.record(report, stop, visit, arrivalSec)
		}
	}

	log.Printf("[PunctualityAggregator] %d/%d scheduled visits matched, %d late arrivals",
		len(report.LateTimes), visits, len(report.LateStops))
	return report
}

// record books one matched visit into the aggregates. Lateness clamps to
// zero; an exactly on-time arrival enters the late-time lists but not the
// late counts. District aggregation is skipped for an empty district label.
func (a *Aggregator) record(report *models.PunctualityReport, stop models.Stop,
	visit models.ScheduledVisit, arrivalSec int) {

	lateSeconds := arrivalSec - secondsOfDay(visit.ExpectedArrival)
	lateMinutes := 0.0
	if lateSeconds > 0 {
		lateMinutes = float64(lateSeconds) / 60.0
	}

	report.Records = append(report.Records, models.ArrivalRecord{
		StopID:      stop.ID,
		District:    stop.District,
		Line:        visit.Line,
		Brigade:     visit.Brigade,
		LateMinutes: lateMinutes,
	})
	report.LateTimes = append(report.LateTimes, lateMinutes)
	report.DistrictLateTimes[stop.District] = append(report.DistrictLateTimes[stop.District], lateMinutes)

	if lateMinutes > 0 {
		report.LateStops = append(report.LateStops, models.LateStop{
			StopID:   stop.ID,
			Position: stop.Position(),
		})
		report.StopLateCounts[stop.ID]++
		if stop.District != "" {
			report.DistrictLateCounts[stop.District]++
		}
	}
}
