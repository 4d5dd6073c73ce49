// Package supervisor owns the top-level control flow: load state, detect
// the active profile, spawn one governor at a time, react to profile
// changes and termination signals, tear down cleanly. Grounded on the
// teacher's cmd/wfdevice/server start/stop orchestration, adapted from an
// HTTP-server lifecycle to a single background control loop.
package supervisor

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/wrale/wfthermald/internal/governor"
	"github.com/wrale/wfthermald/internal/metrics"
	"github.com/wrale/wfthermald/internal/store"
	"github.com/wrale/wfthermald/internal/sysfs"
	"github.com/wrale/wfthermald/internal/thermalctl"
)

// ProfileSource supplies the initial profile; subsequent profile changes
// arrive on the channel passed to New. dbusevents.Reader satisfies this;
// tests use a fake.
type ProfileSource interface {
	InitialProfile() (thermalctl.Profile, bool)
}

// Supervisor runs the profile-switching control loop described in
// spec.md §4.5.
type Supervisor struct {
	adapter sysfs.Adapter
	store   *store.FileStore
	metrics *metrics.Registry
	log     *zap.Logger

	changes <-chan thermalctl.Profile
	source  ProfileSource

	running atomic.Bool
}

// New constructs a Supervisor. changes may be nil if the event source
// failed to connect; the supervisor then simply never observes profile
// switches, per spec.md §7.
func New(adapter sysfs.Adapter, fileStore *store.FileStore, reg *metrics.Registry, log *zap.Logger, source ProfileSource, changes <-chan thermalctl.Profile) *Supervisor {
	s := &Supervisor{
		adapter: adapter,
		store:   fileStore,
		metrics: reg,
		log:     log.With(zap.String("component", "supervisor")),
		source:  source,
		changes: changes,
	}
	s.running.Store(true)
	return s
}

// Run executes the supervisor's main loop until a termination signal
// arrives or the profile-change stream closes, then performs final
// teardown and returns.
func (s *Supervisor) Run() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		s.log.Info("received termination signal")
		s.running.Store(false)
	}()

	state := s.store.Load()

	profile, ok := thermalctl.Balanced, false
	if s.source != nil {
		profile, ok = s.source.InitialProfile()
	}
	if !ok {
		s.log.Warn("could not detect active profile at startup, defaulting to balanced")
		profile = thermalctl.Balanced
	}

	for {
		g := governor.New(profile, state.Clone(), s.adapter, s.store, s.metrics, s.log)

		resultCh := make(chan thermalctl.State, 1)
		go func() {
			resultCh <- g.Run()
		}()

		newProfile, haveNew := s.waitForProfileChange(profile)

		g.Stop()
		state = <-resultCh

		if haveNew {
			profile = newProfile
			continue
		}

		break
	}

	s.store.Save(state)
	s.finalReset()
	s.log.Info("shutdown completed")
}

// waitForProfileChange blocks until a different profile arrives on the
// change stream, the stream disconnects, or the running flag goes false,
// polling the running flag with a 1-second timeout as spec.md §4.5
// prescribes.
func (s *Supervisor) waitForProfileChange(current thermalctl.Profile) (thermalctl.Profile, bool) {
	for {
		select {
		case p, ok := <-s.changes:
			if !ok {
				return "", false
			}
			if p == current {
				continue
			}
			return p, true
		case <-time.After(time.Second):
			if !s.running.Load() {
				return "", false
			}
		}
	}
}

// finalReset restores the safe baseline (max frequency, balance_power EPP,
// boost disabled) across all CPUs before the process exits.
func (s *Supervisor) finalReset() {
	dirs := s.adapter.CPUDirs()
	if len(dirs) == 0 {
		return
	}
	s.adapter.SetMaxFreq(dirs, thermalctl.MaxCap)
	s.adapter.ApplyBase(dirs, governor.MinFreqKHz, "balance_power", false)
}
