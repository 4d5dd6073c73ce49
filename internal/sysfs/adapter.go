// Package sysfs adapts the Linux sysfs thermal/cpufreq surface used by the
// governor to read temperatures and fan speeds and to write frequency caps.
// Grounded on the teacher's metal/hw/thermal read path: failures are
// swallowed and reported as a neutral zero value, since the control loop is
// self-correcting: sensors are read again every tick. Writes are not
// retried; a failed cap write stays missed until the governor's next cap
// change.
package sysfs

// Adapter is the sensor/actuator surface the governor depends on. The real
// implementation is LinuxAdapter; tests substitute a fake.
type Adapter interface {
	ReadTemp() int32
	ReadFanRPM() uint32
	CPUDirs() []string
	SetMaxFreq(dirs []string, kHz uint64)
	ApplyBase(dirs []string, minKHz uint64, epp string, boost bool)
}

// Config holds the sysfs paths the adapter reads and writes. All fields are
// configuration, not hard-coded constants, since the calibrated defaults
// are specific to the original target hardware.
type Config struct {
	ThermalZonePath string // package temperature, millicelsius
	Fan1Path        string // fan 1 RPM
	Fan2Path        string // fan 2 RPM
	BoostPath       string // hwp_dynamic_boost
	CPURoot         string // CPU topology root, e.g. /sys/devices/system/cpu
}

// DefaultConfig returns the calibrated sysfs paths for the original target
// hardware (an Intel Core Ultra-class laptop).
func DefaultConfig() Config {
	return Config{
		ThermalZonePath: "/sys/class/thermal/thermal_zone8/temp",
		Fan1Path:        "/sys/class/hwmon/hwmon7/fan1_input",
		Fan2Path:        "/sys/class/hwmon/hwmon7/fan2_input",
		BoostPath:       "/sys/devices/system/cpu/intel_pstate/hwp_dynamic_boost",
		CPURoot:         "/sys/devices/system/cpu",
	}
}
