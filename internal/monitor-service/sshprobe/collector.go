// Package sshprobe implements pull monitoring: the service logs into a
// server over SSH, reads /proc, and turns the output into the same metric
// payload an agent would push.
package sshprobe

import (
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/service"
	"VPS_Fleet_Monitor/pkg/cryptoutil"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/ssh"
)

const sectionSeparator = "---"

// collectScript gathers everything in one round trip. The two /proc/stat
// reads a second apart give a real usage delta instead of a meaningless
// since-boot average.
const collectScript = `cat /proc/loadavg
echo '---'
cat /proc/meminfo
echo '---'
df -kP /
echo '---'
cat /proc/uptime
echo '---'
nproc
echo '---'
ls /proc | grep -c '^[0-9]'
echo '---'
head -n1 /proc/stat
sleep 1
head -n1 /proc/stat
echo '---'
uname -s
uname -r
uname -m`

type credentials struct {
	Username   string `json:"username"`
	Password   string `json:"password,omitempty"`
	PrivateKey string `json:"private_key,omitempty"`
}

type Collector interface {
	// Collect logs into the server with its stored credentials and
	// returns a metric payload tagged with the ssh data source.
	Collect(ctx context.Context, server model.Server) (service.MetricPayload, error)
}

type collector struct {
	encryptor cryptoutil.Encryptor
	timeout   time.Duration
}

func (c *collector) Collect(ctx context.Context, server model.Server) (service.MetricPayload, error) {
	if server.EncryptedCredentials == "" {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: %w", apperrors.ErrNoCredentials)
	}
	plaintext, err := c.encryptor.Decrypt(server.EncryptedCredentials)
	if err != nil {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: %w", err)
	}
	var creds credentials
	if err = json.Unmarshal([]byte(plaintext), &creds); err != nil {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: %w", err)
	}

	clientConfig, err := buildClientConfig(creds, c.timeout)
	if err != nil {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: %w", err)
	}

	port := server.Port
	if port == 0 {
		port = 22
	}
	address := net.JoinHostPort(server.IPAddress, strconv.Itoa(port))
	client, err := ssh.Dial("tcp", address, clientConfig)
	if err != nil {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: dial %s: %w", address, err)
	}
	defer client.Close()

	session, err := client.NewSession()
	if err != nil {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: %w", err)
	}
	defer session.Close()

	output, err := session.Output(collectScript)
	if err != nil {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: run script: %w", err)
	}

	payload, err := parseCollectOutput(string(output))
	if err != nil {
		return service.MetricPayload{}, fmt.Errorf("Collector.Collect: %w", err)
	}
	payload.ServerName = server.Name
	return payload, nil
}

func buildClientConfig(creds credentials, timeout time.Duration) (*ssh.ClientConfig, error) {
	var methods []ssh.AuthMethod
	if creds.PrivateKey != "" {
		signer, err := ssh.ParsePrivateKey([]byte(creds.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("sshprobe.buildClientConfig: parse private key: %w", err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}
	if creds.Password != "" {
		methods = append(methods, ssh.Password(creds.Password))
	}
	if len(methods) == 0 {
		return nil, fmt.Errorf("sshprobe.buildClientConfig: %w", apperrors.ErrNoCredentials)
	}
	return &ssh.ClientConfig{
		User:            creds.Username,
		Auth:            methods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         timeout,
	}, nil
}

// parseCollectOutput maps the script's sections onto a metric payload.
// Sections that fail to parse zero their fields rather than failing the
// whole collection; only a malformed section count is fatal.
func parseCollectOutput(output string) (service.MetricPayload, error) {
	sections := splitSections(output)
	if len(sections) != 8 {
		return service.MetricPayload{}, fmt.Errorf("sshprobe.parseCollectOutput: expected 8 sections, got %d", len(sections))
	}

	payload := service.MetricPayload{
		Timestamp:  time.Now().UTC(),
		DataSource: model.DataSourceSSH,
	}

	if load1, load5, load15, err := parseLoadAvg(sections[0]); err == nil {
		payload.Load1, payload.Load5, payload.Load15 = load1, load5, load15
	}
	if mem, err := parseMemInfo(sections[1]); err == nil {
		payload.MemoryTotal = mem.Total
		payload.MemoryUsed = mem.Used
		payload.MemoryUsage = mem.Usage
		payload.SwapTotal = mem.SwapTotal
		payload.SwapUsed = mem.SwapUsed
	}
	if disk, err := parseDiskUsage(sections[2]); err == nil {
		payload.DiskTotal = disk.Total
		payload.DiskUsed = disk.Used
		payload.DiskUsage = disk.Usage
	}
	if uptime, err := parseUptime(sections[3]); err == nil {
		payload.Uptime = uptime
	}
	if cores, err := strconv.Atoi(strings.TrimSpace(sections[4])); err == nil {
		payload.CPUCores = cores
	}
	if processes, err := strconv.Atoi(strings.TrimSpace(sections[5])); err == nil {
		payload.ProcessCount = processes
	}
	statLines := strings.Split(strings.TrimSpace(sections[6]), "\n")
	if len(statLines) == 2 {
		first, errFirst := parseCPUStat(statLines[0])
		second, errSecond := parseCPUStat(statLines[1])
		if errFirst == nil && errSecond == nil {
			payload.CPUUsage = cpuUsageBetween(first, second)
		}
	}
	unameLines := strings.Split(strings.TrimSpace(sections[7]), "\n")
	if len(unameLines) == 3 {
		payload.Platform = strings.TrimSpace(unameLines[0])
		payload.PlatformVersion = strings.TrimSpace(unameLines[1])
		payload.Arch = strings.TrimSpace(unameLines[2])
	}
	return payload, nil
}

func splitSections(output string) []string {
	var sections []string
	var current []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == sectionSeparator {
			sections = append(sections, strings.Join(current, "\n"))
			current = nil
			continue
		}
		current = append(current, line)
	}
	sections = append(sections, strings.Join(current, "\n"))
	return sections
}

func NewCollector(encryptor cryptoutil.Encryptor, timeout time.Duration) Collector {
	return &collector{
		encryptor: encryptor,
		timeout:   timeout,
	}
}
