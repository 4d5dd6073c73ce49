// Package config holds the command-line configuration for wfthermald,
// grounded on the teacher's cmd/wfdevice/options package: a Config struct
// with sensible defaults, consumed directly by the cobra flag definitions.
package config

import "github.com/wrale/wfthermald/internal/sysfs"

// Config holds every user-tunable setting for the daemon.
type Config struct {
	// Sysfs paths (sensor/actuator surface).
	ThermalZonePath string
	Fan1Path        string
	Fan2Path        string
	BoostPath       string
	CPURoot         string

	// Persistence.
	StateFile string

	// Logging.
	LogLevel string
	LogJSON  bool

	// Metrics listener.
	ManagementAddr string
}

// New returns a Config populated with the calibrated defaults for the
// original target hardware.
func New() *Config {
	sysfsDefaults := sysfs.DefaultConfig()
	return &Config{
		ThermalZonePath: sysfsDefaults.ThermalZonePath,
		Fan1Path:        sysfsDefaults.Fan1Path,
		Fan2Path:        sysfsDefaults.Fan2Path,
		BoostPath:       sysfsDefaults.BoostPath,
		CPURoot:         sysfsDefaults.CPURoot,

		StateFile: "/var/lib/thermal-governor/tuned-params.json",

		LogLevel: "info",
		LogJSON:  false,

		ManagementAddr: "127.0.0.1:9092",
	}
}

// SysfsConfig projects the sysfs-relevant fields of c into sysfs.Config.
func (c *Config) SysfsConfig() sysfs.Config {
	return sysfs.Config{
		ThermalZonePath: c.ThermalZonePath,
		Fan1Path:        c.Fan1Path,
		Fan2Path:        c.Fan2Path,
		BoostPath:       c.BoostPath,
		CPURoot:         c.CPURoot,
	}
}
