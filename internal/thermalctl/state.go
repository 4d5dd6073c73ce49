package thermalctl

// State holds one Table per profile. It is owned by the supervisor; a
// value copy ("snapshot") is handed to each governor instance, and the
// governor returns its (possibly tuned) copy at teardown for merge-back.
// State deliberately carries no mutex: the supervisor/governor boundary
// exchanges whole snapshots rather than sharing memory, so no table is
// ever mutated from two goroutines at once.
type State struct {
	PowerSaver  Table `json:"power_saver"`
	Balanced    Table `json:"balanced"`
	Performance Table `json:"performance"`
}

// DefaultState returns the calibrated starting point for all three
// profiles.
func DefaultState() State {
	return State{
		PowerSaver:  DefaultTable(PowerSaver),
		Balanced:    DefaultTable(Balanced),
		Performance: DefaultTable(Performance),
	}
}

// Table returns a pointer to the table for profile p, so callers can read
// or mutate it in place.
func (s *State) Table(p Profile) *Table {
	switch p {
	case PowerSaver:
		return &s.PowerSaver
	case Performance:
		return &s.Performance
	default:
		return &s.Balanced
	}
}

// Clone returns an independent copy of s, suitable for handing to a new
// governor worker.
func (s State) Clone() State {
	return s
}
