package thermalctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTablesSatisfyInvariants(t *testing.T) {
	for _, p := range []Profile{PowerSaver, Balanced, Performance} {
		tbl := DefaultTable(p)
		assertInvariants(t, p, &tbl)
	}
}

func TestEnforceInvariantsIsIdempotent(t *testing.T) {
	for _, p := range []Profile{PowerSaver, Balanced, Performance} {
		tbl := DefaultTable(p)
		tbl.EnforceInvariants(p.Ceiling())
		before := tbl
		tbl.EnforceInvariants(p.Ceiling())
		assert.Equal(t, before, tbl, "second enforcement must be a no-op")
	}
}

func TestEnforceInvariantsClampsOutOfBoundTable(t *testing.T) {
	tbl := Table{
		MaxCap:     10_000_000,
		Caps:       [4]uint64{9_999_999, 9_999_998, 1_000, 500},
		Thresholds: [4]int32{65, 72, 78, 83},
		Hysteresis: 5,
	}
	tbl.EnforceInvariants(Balanced.Ceiling())
	assertInvariants(t, Balanced, &tbl)
}

func assertInvariants(t *testing.T, p Profile, tbl *Table) {
	t.Helper()
	require.LessOrEqual(t, MinCap, tbl.MaxCap)
	require.LessOrEqual(t, tbl.MaxCap, p.Ceiling())

	for _, c := range tbl.Caps {
		require.GreaterOrEqual(t, c, MinCap)
	}

	levels := tbl.Levels()
	for i := 0; i < len(levels)-1; i++ {
		if levels[i] > MinCap+MinSpread {
			assert.GreaterOrEqual(t, levels[i]-levels[i+1], MinSpread,
				"levels[%d]=%d levels[%d]=%d", i, levels[i], i+1, levels[i+1])
		}
	}
}

// Balanced-profile scenarios from spec.md §8.
func TestTargetCapBalancedScenarios(t *testing.T) {
	tbl := DefaultTable(Balanced)

	t.Run("below all thresholds holds", func(t *testing.T) {
		got := tbl.TargetCap(60, 4_000_000)
		assert.Equal(t, uint64(4_000_000), got)
	})

	t.Run("crosses three thresholds in one tick", func(t *testing.T) {
		got := tbl.TargetCap(79, 4_000_000)
		assert.Equal(t, uint64(2_500_000), got)
	})

	t.Run("hysteresis blocks premature ascent", func(t *testing.T) {
		got := tbl.TargetCap(74, 2_500_000)
		assert.Equal(t, uint64(2_500_000), got)
	})

	t.Run("ascends exactly one rung", func(t *testing.T) {
		got := tbl.TargetCap(59, 2_500_000)
		assert.Equal(t, uint64(3_000_000), got)
	})
}

func TestTargetCapStepDownUnbounded(t *testing.T) {
	tbl := DefaultTable(Balanced)
	got := tbl.TargetCap(tbl.Thresholds[3]+1, tbl.MaxCap)
	assert.Equal(t, tbl.Caps[3], got)
}

func TestTargetCapSingleRungAscent(t *testing.T) {
	tbl := DefaultTable(Balanced)
	levels := tbl.Levels()

	current := levels[2]
	got := tbl.TargetCap(tbl.Thresholds[0]-tbl.Hysteresis-1, current)
	assert.Equal(t, levels[1], got)
}

func TestTargetCapHoldUnderHysteresis(t *testing.T) {
	tbl := DefaultTable(Balanced)
	current := tbl.Caps[1] // cur_level = 2

	temp := tbl.Thresholds[1] - tbl.Hysteresis
	got := tbl.TargetCap(temp, current)
	assert.Equal(t, current, got)
}

func TestTargetCapMonotoneDescent(t *testing.T) {
	tbl := DefaultTable(Performance)
	current := tbl.MaxCap

	prev := tbl.TargetCap(50, current)
	for temp := int32(51); temp <= 96; temp++ {
		got := tbl.TargetCap(temp, current)
		assert.LessOrEqual(t, got, prev, "target_cap must be non-increasing in temp at temp=%d", temp)
		prev = got
	}
}
