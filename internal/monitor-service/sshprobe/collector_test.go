package sshprobe

import (
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCollectOutput = `0.52 0.58 0.59 1/467 12345
---
MemTotal:        8000000 kB
MemAvailable:    2000000 kB
SwapTotal:       4000000 kB
SwapFree:        3000000 kB
---
Filesystem     1024-blocks     Used Available Capacity Mounted on
/dev/vda1         41152736 12345678  28807058      31% /
---
12345.67 54321.09
---
4
---
183
---
cpu  100 0 50 800 50 0 0 0 0 0
cpu  150 0 75 850 75 0 0 0 0 0
---
Linux
5.15.0-91-generic
x86_64`

func TestParseCollectOutput(t *testing.T) {
	payload, err := parseCollectOutput(sampleCollectOutput)
	require.NoError(t, err)

	assert.Equal(t, model.DataSourceSSH, payload.DataSource)
	assert.WithinDuration(t, time.Now().UTC(), payload.Timestamp, 5*time.Second)

	assert.Equal(t, 0.52, payload.Load1)
	assert.Equal(t, 0.58, payload.Load5)
	assert.Equal(t, 0.59, payload.Load15)

	assert.Equal(t, uint64(8000000)*1024, payload.MemoryTotal)
	assert.Equal(t, uint64(6000000)*1024, payload.MemoryUsed)
	assert.InDelta(t, 75.0, payload.MemoryUsage, 0.01)
	assert.Equal(t, uint64(4000000)*1024, payload.SwapTotal)
	assert.Equal(t, uint64(1000000)*1024, payload.SwapUsed)

	assert.Equal(t, uint64(41152736)*1024, payload.DiskTotal)
	assert.Equal(t, uint64(12345678)*1024, payload.DiskUsed)

	assert.Equal(t, uint64(12345), payload.Uptime)
	assert.Equal(t, 4, payload.CPUCores)
	assert.Equal(t, 183, payload.ProcessCount)

	// 150 ticks passed between the two readings, 75 of them idle.
	assert.InDelta(t, 50.0, payload.CPUUsage, 0.01)

	assert.Equal(t, "Linux", payload.Platform)
	assert.Equal(t, "5.15.0-91-generic", payload.PlatformVersion)
	assert.Equal(t, "x86_64", payload.Arch)
}

func TestParseCollectOutput_WrongSectionCount(t *testing.T) {
	_, err := parseCollectOutput("just one section")
	assert.Error(t, err)
}

func TestParseCollectOutput_BadSectionZeroesFields(t *testing.T) {
	broken := `garbage loadavg
---
not meminfo
---
df went wrong
---
12345.67 54321.09
---
4
---
183
---
cpu  100 0 50 800 50 0 0 0 0 0
cpu  150 0 75 850 75 0 0 0 0 0
---
Linux
5.15.0-91-generic
x86_64`

	payload, err := parseCollectOutput(broken)
	require.NoError(t, err)
	assert.Zero(t, payload.Load1)
	assert.Zero(t, payload.MemoryTotal)
	assert.Zero(t, payload.DiskTotal)
	assert.Equal(t, uint64(12345), payload.Uptime)
}

func TestSplitSections(t *testing.T) {
	sections := splitSections("a\n---\nb\nc\n---\nd")
	require.Len(t, sections, 3)
	assert.Equal(t, "a", sections[0])
	assert.Equal(t, "b\nc", sections[1])
	assert.Equal(t, "d", sections[2])
}

func TestBuildClientConfig(t *testing.T) {
	_, err := buildClientConfig(credentials{Username: "root"}, time.Second)
	assert.ErrorIs(t, err, apperrors.ErrNoCredentials)

	cfg, err := buildClientConfig(credentials{Username: "root", Password: "secret"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "root", cfg.User)
	assert.Len(t, cfg.Auth, 1)
	assert.Equal(t, time.Second, cfg.Timeout)

	_, err = buildClientConfig(credentials{Username: "root", PrivateKey: "not a key"}, time.Second)
	assert.Error(t, err)
}

func TestCollector_Collect_NoCredentials(t *testing.T) {
	c := NewCollector(nil, time.Second)
	_, err := c.Collect(context.Background(), model.Server{Name: "web-01"})
	assert.ErrorIs(t, err, apperrors.ErrNoCredentials)
}
