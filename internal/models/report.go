package models

// ArrivalRecord is one matched stop visit with its derived lateness
type ArrivalRecord struct {
	StopID      string  `json:"stopId"`
	District    string  `json:"district,omitempty"`
	Line        string  `json:"line"`
	Brigade     string  `json:"brigade"`
	LateMinutes float64 `json:"lateMinutes"` // >= 0; early arrivals clamp to 0
}

// LateStop is the location of a stop that saw at least one late arrival
type LateStop struct {
	StopID   string `json:"stopId"`
	Position Point  `json:"position"`
}

// PunctualityReport aggregates lateness over every matched scheduled visit
type PunctualityReport struct {
	Records            []ArrivalRecord      `json:"records"`
	LateTimes          []float64            `json:"lateTimes"` // minutes, includes on-time zeros
	LateStops          []LateStop           `json:"lateStops"`
	StopLateCounts     map[string]int       `json:"stopLateCounts"`
	DistrictLateCounts map[string]int       `json:"districtLateCounts"`
	DistrictLateTimes  map[string][]float64 `json:"districtLateTimes"`
	Summary            *PunctualitySummary  `json:"summary,omitempty"`
}

// PunctualitySummary carries the headline numbers derived from a report
type PunctualitySummary struct {
	MatchedVisits   int     `json:"matchedVisits"`
	LateArrivals    int     `json:"lateArrivals"`
	MeanLateMinutes float64 `json:"meanLateMinutes"`
	P90LateMinutes  float64 `json:"p90LateMinutes"`
	MostLateStopID  string  `json:"mostLateStopId,omitempty"`
	MostLateCount   int     `json:"mostLateCount,omitempty"`
}

// SpeedingEvent is one maximal over-limit run for a vehicle, located at the
// midpoint of the run's boundary positions
type SpeedingEvent struct {
	VehicleID string `json:"vehicleId"`
	Position  Point  `json:"position"`
	District  string `json:"district,omitempty"`
}

// SpeedingReport aggregates speeding runs over the whole window
type SpeedingReport struct {
	EventCount     int             `json:"eventCount"`
	MeasuredCount  int             `json:"measuredCount"`
	RejectedCount  int             `json:"rejectedCount"`
	Events         []SpeedingEvent `json:"events"`
	Velocities     []float64       `json:"velocities"` // km/h, every measured sample
	DistrictCounts map[string]int  `json:"districtCounts"`
	VehicleCounts  map[string]int  `json:"vehicleCounts"` // runs per vehicle
	Summary        *SpeedingSummary `json:"summary,omitempty"`
}

// DistinctVehicles returns how many vehicles produced at least one run
func (r *SpeedingReport) DistinctVehicles() int {
	return len(r.VehicleCounts)
}

// SpeedingSummary carries the headline numbers derived from a report
type SpeedingSummary struct {
	DistinctVehicles   int     `json:"distinctVehicles"`
	MeanVelocityKmh    float64 `json:"meanVelocityKmh"`
	P90VelocityKmh     float64 `json:"p90VelocityKmh"`
	SpeedingPercent    float64 `json:"speedingPercent"` // runs vs measured samples
	RejectedPercent    float64 `json:"rejectedPercent"` // rejected vs all samples
}

// AnalysisResult bundles both reports for one analysis window
type AnalysisResult struct {
	Punctuality *PunctualityReport `json:"punctuality"`
	Speeding    *SpeedingReport    `json:"speeding"`
}
