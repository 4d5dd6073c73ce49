package thermalctl

// Cap ladder bounds, shared across all three profile tables.
const (
	MinCap    uint64 = 1_200_000 // kHz; never cap below this
	MaxCap    uint64 = 4_500_000 // kHz; tuner never raises above this
	MinSpread uint64 = 200_000   // kHz; minimum gap between adjacent rungs
)

// Table is the five-level cap ladder for one power profile.
type Table struct {
	MaxCap     uint64    `json:"max_cap"`
	Thresholds [4]int32  `json:"thresholds"`
	Caps       [4]uint64 `json:"caps"`
	Hysteresis int32     `json:"hysteresis"`
}

// Levels returns the five cap rungs, most permissive first.
func (t *Table) Levels() [5]uint64 {
	return [5]uint64{t.MaxCap, t.Caps[0], t.Caps[1], t.Caps[2], t.Caps[3]}
}

// LowestCap returns the bottom rail of the ladder.
func (t *Table) LowestCap() uint64 {
	return t.Caps[3]
}

// DefaultTable returns the calibrated starting table for the given profile.
func DefaultTable(p Profile) Table {
	switch p {
	case PowerSaver:
		return Table{
			MaxCap:     3_000_000,
			Caps:       [4]uint64{2_500_000, 2_000_000, 1_500_000, 1_200_000},
			Thresholds: [4]int32{50, 55, 58, 62},
			Hysteresis: 2,
		}
	case Performance:
		return Table{
			MaxCap:     4_500_000,
			Caps:       [4]uint64{3_800_000, 3_200_000, 2_800_000, 2_200_000},
			Thresholds: [4]int32{75, 85, 92, 95},
			Hysteresis: 5,
		}
	default: // Balanced
		return Table{
			MaxCap:     4_000_000,
			Caps:       [4]uint64{3_500_000, 3_000_000, 2_500_000, 2_000_000},
			Thresholds: [4]int32{65, 72, 78, 83},
			Hysteresis: 5,
		}
	}
}

// TargetCap is the decision function: given the current package temperature
// and the currently-acting cap, returns the cap that should be in effect.
//
// Step-down is unbounded in magnitude and never hysteretic: if the
// temperature now calls for a deeper rung than the current cap, the deeper
// rung is returned immediately, skipping intermediate rungs if needed.
// Ascent is exactly one rung at a time and gated by hysteresis below the
// threshold that originally justified the current rung.
func (t *Table) TargetCap(temp int32, currentCap uint64) uint64 {
	levels := t.Levels()

	targetLevel := 0
	for i, thr := range t.Thresholds {
		if temp > thr {
			targetLevel = i + 1
		}
	}

	downCap := levels[targetLevel]
	if downCap < currentCap {
		return downCap
	}

	curLevel := 4
	for i, lvl := range levels {
		if currentCap >= lvl {
			curLevel = i
			break
		}
	}

	if curLevel > 0 {
		upThresh := t.Thresholds[curLevel-1] - t.Hysteresis
		if temp < upThresh {
			return levels[curLevel-1]
		}
	}

	return currentCap
}

// EnforceInvariants clamps the table into the shape guaranteed by the data
// model: max_cap within [MinCap, ceiling], and caps strictly descending by at
// least MinSpread (or pinned at MinCap). Idempotent: calling it again on an
// already-enforced table is a no-op.
func (t *Table) EnforceInvariants(ceiling uint64) {
	if t.MaxCap > ceiling {
		t.MaxCap = ceiling
	}
	if t.MaxCap < MinCap {
		t.MaxCap = MinCap
	}

	prev := t.MaxCap
	for i := range t.Caps {
		rung := t.Caps[i]
		if rung < MinCap {
			rung = MinCap
		}
		if prev > MinCap+MinSpread {
			if rung > prev-MinSpread {
				rung = prev - MinSpread
			}
		} else {
			rung = MinCap
		}
		if rung < MinCap {
			rung = MinCap
		}
		t.Caps[i] = rung
		prev = rung
	}
}
