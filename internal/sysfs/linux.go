package sysfs

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// LinuxAdapter implements Adapter against a live Linux sysfs tree.
type LinuxAdapter struct {
	cfg Config
}

// NewLinuxAdapter returns an Adapter bound to cfg's sysfs paths.
func NewLinuxAdapter(cfg Config) *LinuxAdapter {
	return &LinuxAdapter{cfg: cfg}
}

var cpuDirPattern = regexp.MustCompile(`^cpu(\d+)$`)

// ReadTemp reads the package temperature, in millicelsius, and returns it
// converted to whole degrees Celsius. Returns 0 on any failure.
func (a *LinuxAdapter) ReadTemp() int32 {
	v, err := readInt(a.cfg.ThermalZonePath)
	if err != nil {
		return 0
	}
	return int32(v / 1000)
}

// ReadFanRPM returns the maximum of the two fan channels, or 0 on failure
// of both.
func (a *LinuxAdapter) ReadFanRPM() uint32 {
	var max uint32
	for _, path := range []string{a.cfg.Fan1Path, a.cfg.Fan2Path} {
		v, err := readInt(path)
		if err != nil {
			continue
		}
		if uint32(v) > max {
			max = uint32(v)
		}
	}
	return max
}

// CPUDirs enumerates per-CPU cpufreq control directories under CPURoot,
// sorted by CPU number ascending (cpu9 before cpu10, unlike lexical order).
func (a *LinuxAdapter) CPUDirs() []string {
	entries, err := os.ReadDir(a.cfg.CPURoot)
	if err != nil {
		return nil
	}

	type numbered struct {
		n    int
		path string
	}
	var found []numbered
	for _, e := range entries {
		m := cpuDirPattern.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		dir := filepath.Join(a.cfg.CPURoot, e.Name())
		if _, err := os.Stat(filepath.Join(dir, "cpufreq")); err != nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		found = append(found, numbered{n: n, path: dir})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].n < found[j].n })

	dirs := make([]string, len(found))
	for i, f := range found {
		dirs[i] = f.path
	}
	return dirs
}

// SetMaxFreq writes kHz to scaling_max_freq for every directory in dirs.
// Per-CPU failures are silently ignored; this is a best-effort write.
func (a *LinuxAdapter) SetMaxFreq(dirs []string, kHz uint64) {
	for _, dir := range dirs {
		_ = writeFile(filepath.Join(dir, "cpufreq", "scaling_max_freq"), strconv.FormatUint(kHz, 10))
	}
}

// ApplyBase writes the floor and EPP hint to every directory in dirs, and
// the boost flag to the global hwp_dynamic_boost path. Best-effort.
func (a *LinuxAdapter) ApplyBase(dirs []string, minKHz uint64, epp string, boost bool) {
	boostVal := "0"
	if boost {
		boostVal = "1"
	}
	_ = writeFile(a.cfg.BoostPath, boostVal)

	for _, dir := range dirs {
		_ = writeFile(filepath.Join(dir, "cpufreq", "scaling_min_freq"), strconv.FormatUint(minKHz, 10))
		_ = writeFile(filepath.Join(dir, "cpufreq", "energy_performance_preference"), epp)
	}
}

func readInt(path string) (int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
}

func writeFile(path, value string) error {
	return os.WriteFile(path, []byte(value), 0644)
}
