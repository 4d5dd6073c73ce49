package thermalctl

// FreqStep is the quantum by which the tuner raises or lowers caps per tune
// window. The PowerSaver first threshold moves by 1 °C instead.
const FreqStep = 100_000 // kHz

// Tune applies one window's worth of per-profile heuristics to the table
// belonging to profile, then re-enforces the table's invariants. It is a
// no-op when the window has fewer than MinTuneSamples samples. The
// heuristics are conservative by construction: at most one branch fires per
// window, and it moves the caps it touches by one FreqStep (two for max_cap
// and the first rung in Performance's danger branch) or the PowerSaver first
// threshold by 1 °C.
func Tune(p Profile, stats Stats, table *Table) {
	if stats.Samples < MinTuneSamples {
		return
	}

	switch p {
	case PowerSaver:
		tunePowerSaver(stats, table)
	case Performance:
		tunePerformance(stats, table)
	default:
		tuneBalanced(stats, table)
	}

	table.EnforceInvariants(p.Ceiling())
}

func tunePowerSaver(stats Stats, table *Table) {
	fanPct := stats.FanPct()
	switch {
	case fanPct == 0 && stats.MaxTemp < table.Thresholds[2] && stats.AvgTemp() >= 48:
		table.MaxCap = saturateUp(table.MaxCap)
	case fanPct > 20:
		table.MaxCap = saturateDown(table.MaxCap)
		for i := range table.Caps {
			table.Caps[i] = saturateDown(table.Caps[i])
		}
	case fanPct > 0:
		table.Thresholds[0] = clampThreshold(table.Thresholds[0]-1, 40, 55)
	}
}

func tuneBalanced(stats Stats, table *Table) {
	switch {
	case stats.MaxTemp < table.Thresholds[2]-5 && stats.LowestPct() == 0:
		table.MaxCap = saturateUp(table.MaxCap)
		table.Caps[0] = saturateUp(table.Caps[0])
	case stats.MaxTemp > table.Thresholds[3]:
		table.MaxCap = saturateDown(table.MaxCap)
		table.Caps[0] = saturateDown(table.Caps[0])
	}
}

func tunePerformance(stats Stats, table *Table) {
	switch {
	case stats.MaxTemp < table.Thresholds[2]-3 && stats.LowestPct() == 0:
		table.MaxCap = saturateUp(table.MaxCap)
		table.Caps[0] = saturateUp(table.Caps[0])
	case stats.MaxTemp > 95:
		table.MaxCap = saturateDown(saturateDown(table.MaxCap))
		table.Caps[0] = saturateDown(saturateDown(table.Caps[0]))
		table.Caps[1] = saturateDown(table.Caps[1])
	case stats.MaxTemp > table.Thresholds[2]:
		table.MaxCap = saturateDown(table.MaxCap)
		table.Caps[0] = saturateDown(table.Caps[0])
	}
}

func saturateUp(v uint64) uint64 {
	if v+FreqStep > MaxCap {
		return MaxCap
	}
	return v + FreqStep
}

func saturateDown(v uint64) uint64 {
	if v < MinCap+FreqStep {
		return MinCap
	}
	return v - FreqStep
}

func clampThreshold(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
