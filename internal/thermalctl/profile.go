// Package thermalctl implements the cap ladder, rolling tune statistics, and
// auto-tuning heuristics at the heart of the thermal governor.
package thermalctl

import "strings"

// Profile is the closed set of power profiles the governor can run under.
type Profile string

const (
	PowerSaver  Profile = "power-saver"
	Balanced    Profile = "balanced"
	Performance Profile = "performance"
)

// Name returns the human-readable name of the profile.
func (p Profile) Name() string {
	switch p {
	case PowerSaver:
		return "Power Saver"
	case Performance:
		return "Performance"
	default:
		return "Balanced"
	}
}

// EPP returns the energy_performance_preference hint for the profile.
func (p Profile) EPP() string {
	switch p {
	case PowerSaver:
		return "power"
	case Performance:
		return "performance"
	default:
		return "balance_power"
	}
}

// Ceiling returns the absolute maximum cap, in kHz, permitted for the profile.
func (p Profile) Ceiling() uint64 {
	if p == PowerSaver {
		return 3_500_000
	}
	return 4_500_000
}

// Valid reports whether p is one of the three known profiles.
func (p Profile) Valid() bool {
	switch p {
	case PowerSaver, Balanced, Performance:
		return true
	default:
		return false
	}
}

// ParseProfile maps a loosely-formatted token (as seen on the PowerProfiles
// D-Bus interface) to a Profile. It returns false if none of the three
// known tokens appear in s.
func ParseProfile(s string) (Profile, bool) {
	switch {
	case strings.Contains(s, "power-saver"):
		return PowerSaver, true
	case strings.Contains(s, "performance"):
		return Performance, true
	case strings.Contains(s, "balanced"):
		return Balanced, true
	default:
		return "", false
	}
}
