package governor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wrale/wfthermald/internal/metrics"
	"github.com/wrale/wfthermald/internal/store"
	"github.com/wrale/wfthermald/internal/thermalctl"
)

// fakeAdapter is an in-memory stand-in for sysfs.Adapter, used to drive
// the governor's control loop without touching a real machine.
type fakeAdapter struct {
	mu sync.Mutex

	temp int32
	rpm  uint32
	dirs []string

	lastMaxFreq uint64
	setCount    int
	baseApplied bool
}

func newFakeAdapter() *fakeAdapter {
	return &fakeAdapter{dirs: []string{"cpu0"}}
}

func (f *fakeAdapter) ReadTemp() int32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.temp
}

func (f *fakeAdapter) ReadFanRPM() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rpm
}

func (f *fakeAdapter) CPUDirs() []string {
	return f.dirs
}

func (f *fakeAdapter) SetMaxFreq(dirs []string, kHz uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastMaxFreq = kHz
	f.setCount++
}

func (f *fakeAdapter) ApplyBase(dirs []string, minKHz uint64, epp string, boost bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.baseApplied = true
}

func (f *fakeAdapter) setTemp(t int32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.temp = t
}

func newTestGovernor(t *testing.T, adapter *fakeAdapter) (*Governor, string) {
	t.Helper()

	origPoll, origTune, origPersist := PollInterval, TuneInterval, PersistInterval
	PollInterval = 10 * time.Millisecond
	TuneInterval = time.Hour
	PersistInterval = time.Hour
	t.Cleanup(func() {
		PollInterval, TuneInterval, PersistInterval = origPoll, origTune, origPersist
	})

	dir := t.TempDir() + "/state.json"
	fs := store.NewFileStore(dir, zap.NewNop())
	reg := metrics.New()
	state := thermalctl.DefaultState()
	return New(thermalctl.Balanced, state, adapter, fs, reg, zap.NewNop()), dir
}

func TestGovernorNoCPUDirsExitsImmediately(t *testing.T) {
	adapter := newFakeAdapter()
	adapter.dirs = nil
	g, _ := newTestGovernor(t, adapter)

	done := make(chan thermalctl.State, 1)
	go func() { done <- g.Run() }()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("governor did not exit promptly with no CPU dirs")
	}
}

func TestGovernorAppliesBaseAndInitialCap(t *testing.T) {
	adapter := newFakeAdapter()
	g, _ := newTestGovernor(t, adapter)

	go g.Run()
	// Allow the goroutine to execute its startup sequence before stopping.
	time.Sleep(5 * time.Millisecond)
	g.Stop()

	adapter.mu.Lock()
	defer adapter.mu.Unlock()
	assert.True(t, adapter.baseApplied)
	assert.Equal(t, thermalctl.DefaultTable(thermalctl.Balanced).MaxCap, adapter.lastMaxFreq)
}

func TestGovernorStopReturnsState(t *testing.T) {
	adapter := newFakeAdapter()
	g, _ := newTestGovernor(t, adapter)

	done := make(chan thermalctl.State, 1)
	go func() { done <- g.Run() }()
	time.Sleep(5 * time.Millisecond)
	g.Stop()

	select {
	case state := <-done:
		require.Equal(t, thermalctl.DefaultState(), state)
	case <-time.After(time.Second):
		t.Fatal("governor did not stop within the expected shutdown latency")
	}
}
