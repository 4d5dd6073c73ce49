package thermalctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatsRecordAndDerive(t *testing.T) {
	var s Stats
	s.Record(50, 0, 2_000_000, 1_200_000)
	s.Record(60, 150, 1_200_000, 1_200_000)
	s.Record(55, 0, 2_000_000, 1_200_000)

	assert.Equal(t, 3, s.Samples)
	assert.InDelta(t, 55.0, s.AvgTemp(), 0.001)
	assert.Equal(t, int32(60), s.MaxTemp)
	assert.InDelta(t, 100.0/3, s.FanPct(), 0.001)
	assert.InDelta(t, 100.0/3, s.LowestPct(), 0.001)
}

func TestStatsEmptyWindow(t *testing.T) {
	var s Stats
	assert.Equal(t, 0.0, s.AvgTemp())
	assert.Equal(t, 0.0, s.FanPct())
	assert.Equal(t, 0.0, s.LowestPct())
}

func TestStatsReset(t *testing.T) {
	var s Stats
	s.Record(90, 200, 1_200_000, 1_200_000)
	s.Reset()
	assert.Equal(t, Stats{}, s)
}
