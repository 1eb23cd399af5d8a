package sshprobe

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLoadAvg reads /proc/loadavg output (e.g. "0.52 0.58 0.59 1/467 12345").
func parseLoadAvg(s string) (load1, load5, load15 float64, err error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("sshprobe.parseLoadAvg: unexpected output %q", s)
	}
	if load1, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("sshprobe.parseLoadAvg: %w", err)
	}
	if load5, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("sshprobe.parseLoadAvg: %w", err)
	}
	if load15, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return 0, 0, 0, fmt.Errorf("sshprobe.parseLoadAvg: %w", err)
	}
	return load1, load5, load15, nil
}

type memInfo struct {
	Total     uint64
	Used      uint64
	Usage     float64
	SwapTotal uint64
	SwapUsed  uint64
}

// parseMemInfo reads /proc/meminfo. Values there are in kB; the result is in
// bytes. Used memory is total minus MemAvailable, matching what free(1)
// reports as used+cache-aware.
func parseMemInfo(s string) (memInfo, error) {
	values := make(map[string]uint64)
	for _, line := range strings.Split(s, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		key := strings.TrimSuffix(fields[0], ":")
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}
		values[key] = v * 1024
	}
	total, ok := values["MemTotal"]
	if !ok || total == 0 {
		return memInfo{}, fmt.Errorf("sshprobe.parseMemInfo: missing MemTotal")
	}
	available := values["MemAvailable"]
	used := total - available
	info := memInfo{
		Total:     total,
		Used:      used,
		Usage:     float64(used) / float64(total) * 100,
		SwapTotal: values["SwapTotal"],
	}
	if info.SwapTotal > 0 {
		info.SwapUsed = info.SwapTotal - values["SwapFree"]
	}
	return info, nil
}

type diskInfo struct {
	Total uint64
	Used  uint64
	Usage float64
}

// parseDiskUsage reads `df -kP /` output (POSIX format, 1K blocks).
func parseDiskUsage(s string) (diskInfo, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) < 2 {
		return diskInfo{}, fmt.Errorf("sshprobe.parseDiskUsage: unexpected output %q", s)
	}
	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) < 4 {
		return diskInfo{}, fmt.Errorf("sshprobe.parseDiskUsage: unexpected line %q", lines[len(lines)-1])
	}
	total, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return diskInfo{}, fmt.Errorf("sshprobe.parseDiskUsage: %w", err)
	}
	used, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return diskInfo{}, fmt.Errorf("sshprobe.parseDiskUsage: %w", err)
	}
	info := diskInfo{
		Total: total * 1024,
		Used:  used * 1024,
	}
	if total > 0 {
		info.Usage = float64(used) / float64(total) * 100
	}
	return info, nil
}

// parseUptime reads /proc/uptime ("12345.67 54321.09") and returns whole
// seconds.
func parseUptime(s string) (uint64, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) < 1 {
		return 0, fmt.Errorf("sshprobe.parseUptime: unexpected output %q", s)
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("sshprobe.parseUptime: %w", err)
	}
	return uint64(seconds), nil
}

type cpuTimes struct {
	Idle  uint64
	Total uint64
}

// parseCPUStat reads the aggregate "cpu ..." line of /proc/stat. Idle
// includes iowait.
func parseCPUStat(line string) (cpuTimes, error) {
	fields := strings.Fields(strings.TrimSpace(line))
	if len(fields) < 5 || fields[0] != "cpu" {
		return cpuTimes{}, fmt.Errorf("sshprobe.parseCPUStat: unexpected line %q", line)
	}
	var times cpuTimes
	for i, field := range fields[1:] {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return cpuTimes{}, fmt.Errorf("sshprobe.parseCPUStat: %w", err)
		}
		times.Total += v
		// idle is field 4, iowait field 5 (1-indexed after "cpu").
		if i == 3 || i == 4 {
			times.Idle += v
		}
	}
	return times, nil
}

// cpuUsageBetween derives a usage percentage from two /proc/stat readings
// taken a moment apart.
func cpuUsageBetween(first, second cpuTimes) float64 {
	totalDelta := second.Total - first.Total
	if second.Total <= first.Total || totalDelta == 0 {
		return 0
	}
	idleDelta := second.Idle - first.Idle
	return float64(totalDelta-idleDelta) / float64(totalDelta) * 100
}
