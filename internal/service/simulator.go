package service

import (
	"context"
	"hash/fnv"
	"math"
	"time"

	"alerts_review/internal/logger"
	"alerts_review/internal/models"
	"alerts_review/internal/repository"
)

// ----------- Simulation constants (°F) -----------
const (
	PoolStartF      = 62.0 // first reading of a new system
	SetPointF       = 84.0
	MinAirF         = 45.0 // coldest simulated ambient
	AirSpreadF      = 35   // ambient range above MinAirF
	ReferenceAirF   = 70.0 // ambient at which the heater reaches RampPerHourF
	ColdAirFloorF   = 50.0 // ambient at which heating stalls
	RampPerHourF    = 2.0  // °F per hour at ReferenceAirF
	MinRampPerHourF = 0.05 // °F per hour, even in the coldest air
)

const (
	DefaultSimStep     = 15 * time.Minute
	DefaultSimBackfill = 6 * time.Hour // how far back a new system's telemetry starts
)

// SimulatorService appends synthetic snapshots for every open pool case so
// the review pipeline has telemetry in development. Each tick advances a
// system by one step of simulated time until it catches up with the clock.
type SimulatorService struct {
	caseRepo     repository.CaseRepo
	snapshotRepo repository.SnapshotRepo
	step         time.Duration
	log          *logger.Logger
	now          func() time.Time
}

// NewSimulatorService returns a simulator with defaults.
func NewSimulatorService(caseRepo repository.CaseRepo, snapshotRepo repository.SnapshotRepo, step time.Duration, log *logger.Logger) *SimulatorService {
	if step <= 0 {
		step = DefaultSimStep
	}
	return &SimulatorService{
		caseRepo:     caseRepo,
		snapshotRepo: snapshotRepo,
		step:         step,
		log:          log,
		now:          time.Now,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.Tick(ctx)
		}
	}
}

// Tick advances every system that has an open pool case by one step.
func (s *SimulatorService) Tick(ctx context.Context) {
	systems, err := s.caseRepo.ListOpenSystems(ctx, models.BodyPool)
	if err != nil {
		s.log.Warnw("simulator_list_systems_failed", "err", err)
		return
	}
	now := s.now().UTC()
	for _, id := range systems {
		last, err := s.snapshotRepo.Latest(ctx, id)
		if err != nil {
			s.log.Warnw("simulator_latest_failed", "system_id", id, "err", err)
			continue
		}
		next, ok := s.nextSnapshot(id, last, now)
		if !ok {
			continue
		}
		if err := s.snapshotRepo.Append(ctx, id, next); err != nil {
			s.log.Warnw("simulator_append_failed", "system_id", id, "err", err)
		}
	}
}

// nextSnapshot derives the reading one step after last. ok is false while
// the next reading would lie in the future.
func (s *SimulatorService) nextSnapshot(systemID string, last *models.Snapshot, now time.Time) (models.Snapshot, bool) {
	air := airTempFor(systemID)
	if last == nil {
		return models.Snapshot{
			Timestamp:    now.Add(-DefaultSimBackfill).Truncate(time.Minute),
			AirTemp:      models.Float(air),
			PoolTemp:     models.Float(PoolStartF),
			SetPointPool: models.Float(SetPointF),
			PoolHeater:   models.HeaterOn,
			FilterPump:   models.PumpOn,
		}, true
	}

	ts := last.Timestamp.Add(s.step)
	if ts.After(now) {
		return models.Snapshot{}, false
	}

	pool := PoolStartF
	if last.PoolTemp != nil {
		pool = *last.PoolTemp
	}
	setPoint := SetPointF
	if last.SetPointPool != nil {
		setPoint = *last.SetPointPool
	}

	heater := models.HeaterOn
	pool += heatingRate(air) * s.step.Hours()
	if pool >= setPoint {
		pool = setPoint
		heater = models.HeaterStandby
	}

	return models.Snapshot{
		Timestamp:    ts,
		AirTemp:      models.Float(air),
		PoolTemp:     models.Float(math.Round(pool*100) / 100),
		SetPointPool: models.Float(setPoint),
		PoolHeater:   heater,
		FilterPump:   models.PumpOn,
	}, true
}

// heatingRate scales RampPerHourF linearly with ambient air between
// ColdAirFloorF and ReferenceAirF, never below MinRampPerHourF.
func heatingRate(airF float64) float64 {
	r := RampPerHourF * (airF - ColdAirFloorF) / (ReferenceAirF - ColdAirFloorF)
	return math.Max(r, MinRampPerHourF)
}

// airTempFor gives each system a stable ambient temperature.
func airTempFor(systemID string) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(systemID))
	return MinAirF + float64(h.Sum32()%AirSpreadF)
}
