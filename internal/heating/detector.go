// Package heating classifies pool-heating telemetry. Everything here is pure:
// no I/O, no clock, no shared state.
package heating

import (
	"cmp"
	"math"
	"slices"
	"time"

	"alerts_review/internal/models"
)

// Policy defaults for slow-heating detection.
const (
	DefaultMinSnapshots      = 6
	DefaultMinWindow         = 3 * time.Hour
	DefaultMaxHeatingRate    = 0.5  // °F per hour, exclusive
	DefaultMinTemperatureGap = 10.0 // °F, inclusive
	DefaultMaxAmbientAir     = 55.0 // °F, inclusive
)

// Thresholds are the tunable cutoffs of the detector.
type Thresholds struct {
	MinSnapshots      int
	MinWindow         time.Duration
	MaxHeatingRate    float64
	MinTemperatureGap float64
	MaxAmbientAir     float64
}

// DefaultThresholds returns the policy defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinSnapshots:      DefaultMinSnapshots,
		MinWindow:         DefaultMinWindow,
		MaxHeatingRate:    DefaultMaxHeatingRate,
		MinTemperatureGap: DefaultMinTemperatureGap,
		MaxAmbientAir:     DefaultMaxAmbientAir,
	}
}

// Skip reasons reported by Evaluate when the series cannot be judged.
const (
	SkipNotPool       = "not_pool"
	SkipTooFewSamples = "too_few_snapshots"
	SkipMissingPool   = "missing_pool_temperature"
	SkipShortWindow   = "window_too_short"
)

// Assessment is the verdict plus the metrics it was derived from.
type Assessment struct {
	Detected            bool    `json:"slow_heating_detected"`
	Skipped             string  `json:"skipped,omitempty"`
	Snapshots           int     `json:"snapshots"`
	ElapsedHours        float64 `json:"elapsed_hours"`
	HeatingRate         float64 `json:"heating_rate_f_per_hour"`
	AverageAirTemp      float64 `json:"average_air_temp_f"`
	TemperatureGap      float64 `json:"temperature_gap_f"`
	HeaterAlwaysOn      bool    `json:"heater_always_on"`
	PumpAlwaysOn        bool    `json:"pump_always_on"`
	IncompleteTelemetry bool    `json:"incomplete_telemetry"`
}

// Detector decides whether a pool heater is running but losing to cold air.
type Detector struct {
	th Thresholds
}

// NewDetector fills zero-valued thresholds with the defaults.
func NewDetector(th Thresholds) *Detector {
	def := DefaultThresholds()
	if th.MinSnapshots <= 0 {
		th.MinSnapshots = def.MinSnapshots
	}
	if th.MinWindow <= 0 {
		th.MinWindow = def.MinWindow
	}
	if th.MaxHeatingRate == 0 {
		th.MaxHeatingRate = def.MaxHeatingRate
	}
	if th.MinTemperatureGap == 0 {
		th.MinTemperatureGap = def.MinTemperatureGap
	}
	if th.MaxAmbientAir == 0 {
		th.MaxAmbientAir = def.MaxAmbientAir
	}
	return &Detector{th: th}
}

// Thresholds returns the effective cutoffs.
func (d *Detector) Thresholds() Thresholds { return d.th }

// SlowHeating is the boolean verdict for a snapshot series.
func (d *Detector) SlowHeating(series []models.Snapshot, body models.BodyType) bool {
	return d.Evaluate(series, body).Detected
}

// Evaluate runs the detection and reports the intermediate metrics. Missing
// air temperatures and a missing final set point count as 0; the assessment
// marks that with IncompleteTelemetry.
func (d *Detector) Evaluate(series []models.Snapshot, body models.BodyType) Assessment {
	a := Assessment{Snapshots: len(series)}
	if body != models.BodyPool {
		a.Skipped = SkipNotPool
		return a
	}
	if len(series) < d.th.MinSnapshots {
		a.Skipped = SkipTooFewSamples
		return a
	}

	sorted := sortByTime(series)
	first, last := sorted[0], sorted[len(sorted)-1]
	if first.PoolTemp == nil || last.PoolTemp == nil {
		a.Skipped = SkipMissingPool
		return a
	}

	elapsed := last.Timestamp.Sub(first.Timestamp)
	a.ElapsedHours = elapsed.Hours()
	if elapsed < d.th.MinWindow {
		a.Skipped = SkipShortWindow
		return a
	}

	a.HeatingRate = (*last.PoolTemp - *first.PoolTemp) / a.ElapsedHours

	var airSum float64
	a.HeaterAlwaysOn, a.PumpAlwaysOn = true, true
	for _, s := range sorted {
		if s.AirTemp != nil {
			airSum += *s.AirTemp
		} else {
			a.IncompleteTelemetry = true
		}
		if !s.PoolHeater.Heating() {
			a.HeaterAlwaysOn = false
		}
		if s.FilterPump != models.PumpOn {
			a.PumpAlwaysOn = false
		}
	}
	a.AverageAirTemp = airSum / float64(len(sorted))

	setPoint := 0.0
	if last.SetPointPool != nil {
		setPoint = *last.SetPointPool
	} else {
		a.IncompleteTelemetry = true
	}
	a.TemperatureGap = setPoint - *last.PoolTemp

	a.Detected = a.HeaterAlwaysOn &&
		a.PumpAlwaysOn &&
		a.TemperatureGap >= d.th.MinTemperatureGap &&
		a.HeatingRate < d.th.MaxHeatingRate &&
		a.AverageAirTemp <= d.th.MaxAmbientAir
	return a
}

// sortByTime returns a time-ordered copy. Equal timestamps are ordered by pool
// temperature so that input order never leaks into first/last.
func sortByTime(series []models.Snapshot) []models.Snapshot {
	out := slices.Clone(series)
	slices.SortStableFunc(out, func(x, y models.Snapshot) int {
		if c := x.Timestamp.Compare(y.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(tempOrMin(x.PoolTemp), tempOrMin(y.PoolTemp))
	})
	return out
}

func tempOrMin(v *float64) float64 {
	if v == nil {
		return math.Inf(-1)
	}
	return *v
}
