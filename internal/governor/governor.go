// Package governor implements the per-profile control loop: sample, decide,
// actuate, accumulate, periodically tune and persist, respond to stop.
// Grounded on the teacher's metal/internal/thermal manager monitor loop and
// cmd/wfdevice/server lifecycle (cooperative cancellation via a single
// atomic flag, checked once per tick).
package governor

import (
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/wrale/wfthermald/internal/metrics"
	"github.com/wrale/wfthermald/internal/store"
	"github.com/wrale/wfthermald/internal/sysfs"
	"github.com/wrale/wfthermald/internal/thermalctl"
)

// PollInterval, TuneInterval, and PersistInterval are vars rather than
// consts so tests can shrink them instead of waiting out real time.
var (
	PollInterval    = 2 * time.Second
	TuneInterval    = 120 * time.Second
	PersistInterval = 300 * time.Second
)

const (
	MinFreqKHz       = 400_000
	stepDownCooldown = 3
)

// Governor runs exactly one profile's control loop until Stop is called.
type Governor struct {
	profile thermalctl.Profile
	state   thermalctl.State
	adapter sysfs.Adapter
	store   *store.FileStore
	metrics *metrics.Registry
	log     *zap.Logger

	stop atomic.Bool
}

// New constructs a Governor for profile, owning its own copy of state.
func New(profile thermalctl.Profile, state thermalctl.State, adapter sysfs.Adapter, fileStore *store.FileStore, reg *metrics.Registry, log *zap.Logger) *Governor {
	return &Governor{
		profile: profile,
		state:   state,
		adapter: adapter,
		store:   fileStore,
		metrics: reg,
		log:     log.With(zap.String("component", "governor")),
	}
}

// Stop requests cooperative shutdown; the governor checks this once per
// tick, so worst-case shutdown latency is one PollInterval plus the
// in-flight tick's work.
func (g *Governor) Stop() {
	g.stop.Store(true)
}

// Run executes the control loop until Stop is called, then returns the
// governor's (possibly tuned) working state for merge-back into the
// supervisor's master state.
func (g *Governor) Run() thermalctl.State {
	table := g.state.Table(g.profile)
	dirs := g.adapter.CPUDirs()
	if len(dirs) == 0 {
		g.log.Error("no CPU frequency directories discovered, governor exiting")
		return g.state
	}

	g.adapter.ApplyBase(dirs, MinFreqKHz, g.profile.EPP(), true)

	currentCap := table.MaxCap
	g.adapter.SetMaxFreq(dirs, currentCap)

	var stats thermalctl.Stats
	lastTune := time.Now()
	lastPersist := time.Now()
	cooldown := 0

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for !g.stop.Load() {
		<-ticker.C
		if g.stop.Load() {
			break
		}

		temp := g.adapter.ReadTemp()
		rpm := g.adapter.ReadFanRPM()

		g.metrics.TempCelsius.Set(float64(temp))
		g.metrics.FanRPM.Set(float64(rpm))

		rawTarget := table.TargetCap(temp, currentCap)

		newCap := currentCap
		if rawTarget > currentCap && cooldown > 0 {
			cooldown--
		} else {
			newCap = rawTarget
		}

		stats.Record(temp, rpm, currentCap, table.LowestCap())

		if newCap != currentCap {
			g.adapter.SetMaxFreq(dirs, newCap)
			direction := "up"
			if newCap < currentCap {
				direction = "down"
				cooldown = stepDownCooldown
			}
			g.metrics.CapTransitions.WithLabelValues(direction).Inc()
			g.log.Info("cap transition",
				zap.Uint64("from_khz", currentCap),
				zap.Uint64("to_khz", newCap),
				zap.Int32("temp_c", temp),
				zap.String("direction", direction),
			)
			currentCap = newCap
		}

		g.metrics.CurrentCapKHz.WithLabelValues(string(g.profile)).Set(float64(currentCap))

		now := time.Now()
		if now.Sub(lastTune) >= TuneInterval {
			before := *table
			thermalctl.Tune(g.profile, stats, table)
			if *table != before {
				g.metrics.TunerAdjustments.WithLabelValues(string(g.profile)).Inc()
				g.log.Info("tuner adjusted table",
					zap.Any("table", *table),
					zap.Float64("avg_temp", stats.AvgTemp()),
					zap.Float64("fan_pct", stats.FanPct()),
					zap.Float64("lowest_pct", stats.LowestPct()),
				)
			}
			stats.Reset()
			lastTune = now
		}

		if now.Sub(lastPersist) >= PersistInterval {
			g.store.Save(g.state)
			lastPersist = now
		}
	}

	return g.state
}
