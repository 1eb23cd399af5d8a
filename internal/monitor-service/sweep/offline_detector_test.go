package sweep

import (
	mockrepository "VPS_Fleet_Monitor/internal/monitor-service/mocks/repository"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/pkg/mail"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingBroadcaster struct {
	mu       sync.Mutex
	statuses map[string]string
	alerts   []string
}

func newRecordingBroadcaster() *recordingBroadcaster {
	return &recordingBroadcaster{statuses: make(map[string]string)}
}

func (b *recordingBroadcaster) BroadcastServerStatus(serverName string, status string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses[serverName] = status
}

func (b *recordingBroadcaster) BroadcastAlert(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.alerts = append(b.alerts, message)
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestOfflineDetector_Sweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	testCases := []struct {
		name            string
		servers         []model.Server
		setupMocks      func(serverRepo *mockrepository.MockServerRepository)
		expectedFlips   int
		expectedOffline []string
	}{
		{
			name: "Stale server flips offline",
			servers: []model.Server{
				{
					Name:            "web-01",
					Status:          model.ServerStatusOnline,
					MonitorInterval: 300,
					LastSeen:        timePtr(now.Add(-1000 * time.Second)),
				},
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					UpdateServerStatus(ctx, "web-01", model.ServerStatusOffline, "").
					Return(nil)
			},
			expectedFlips:   1,
			expectedOffline: []string{"web-01"},
		},
		{
			name: "Fresh server stays online",
			servers: []model.Server{
				{
					Name:            "web-01",
					Status:          model.ServerStatusOnline,
					MonitorInterval: 300,
					LastSeen:        timePtr(now.Add(-200 * time.Second)),
				},
			},
			setupMocks:    func(serverRepo *mockrepository.MockServerRepository) {},
			expectedFlips: 0,
		},
		{
			name: "Already offline server is skipped",
			servers: []model.Server{
				{
					Name:            "web-01",
					Status:          model.ServerStatusOffline,
					MonitorInterval: 300,
					LastSeen:        timePtr(now.Add(-5000 * time.Second)),
				},
			},
			setupMocks:    func(serverRepo *mockrepository.MockServerRepository) {},
			expectedFlips: 0,
		},
		{
			name: "Never reported server stays unknown",
			servers: []model.Server{
				{
					Name:            "web-01",
					Status:          model.ServerStatusUnknown,
					MonitorInterval: 300,
				},
			},
			setupMocks:    func(serverRepo *mockrepository.MockServerRepository) {},
			expectedFlips: 0,
		},
		{
			name: "Short interval is floored at one minute",
			servers: []model.Server{
				{
					Name:            "web-01",
					Status:          model.ServerStatusOnline,
					MonitorInterval: 5,
					LastSeen:        timePtr(now.Add(-30 * time.Second)),
				},
			},
			setupMocks:    func(serverRepo *mockrepository.MockServerRepository) {},
			expectedFlips: 0,
		},
		{
			name: "One stuck row does not stop the pass",
			servers: []model.Server{
				{
					Name:            "web-01",
					Status:          model.ServerStatusOnline,
					MonitorInterval: 300,
					LastSeen:        timePtr(now.Add(-1000 * time.Second)),
				},
				{
					Name:            "web-02",
					Status:          model.ServerStatusOnline,
					MonitorInterval: 300,
					LastSeen:        timePtr(now.Add(-1000 * time.Second)),
				},
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository) {
				serverRepo.EXPECT().
					UpdateServerStatus(ctx, "web-01", model.ServerStatusOffline, "").
					Return(errors.New("db error"))
				serverRepo.EXPECT().
					UpdateServerStatus(ctx, "web-02", model.ServerStatusOffline, "").
					Return(nil)
			},
			expectedFlips:   1,
			expectedOffline: []string{"web-02"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			serverRepo := mockrepository.NewMockServerRepository(ctrl)
			serverRepo.EXPECT().GetServers(ctx).Return(tc.servers, nil)
			tc.setupMocks(serverRepo)

			broadcaster := newRecordingBroadcaster()
			detector := NewOfflineDetector(serverRepo, broadcaster, nil, "", 3, zap.NewNop()).(*offlineDetector)
			detector.now = func() time.Time { return now }

			flipped, err := detector.Sweep(ctx)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedFlips, flipped)

			for _, name := range tc.expectedOffline {
				assert.Equal(t, model.ServerStatusOffline, broadcaster.statuses[name])
			}
			if tc.expectedFlips > 0 {
				assert.Len(t, broadcaster.alerts, 1)
			} else {
				assert.Empty(t, broadcaster.alerts)
			}
		})
	}
}

func TestOfflineDetector_Sweep_Idempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	ctrl := gomock.NewController(t)

	serverRepo := mockrepository.NewMockServerRepository(ctrl)
	stale := model.Server{
		Name:            "web-01",
		Status:          model.ServerStatusOnline,
		MonitorInterval: 300,
		LastSeen:        timePtr(now.Add(-1000 * time.Second)),
	}

	// First pass flips the server, second pass sees it offline already.
	serverRepo.EXPECT().GetServers(ctx).Return([]model.Server{stale}, nil)
	serverRepo.EXPECT().
		UpdateServerStatus(ctx, "web-01", model.ServerStatusOffline, "").
		Return(nil)
	flippedServer := stale
	flippedServer.Status = model.ServerStatusOffline
	serverRepo.EXPECT().GetServers(ctx).Return([]model.Server{flippedServer}, nil)

	detector := NewOfflineDetector(serverRepo, newRecordingBroadcaster(), nil, "", 3, zap.NewNop()).(*offlineDetector)
	detector.now = func() time.Time { return now }

	flipped, err := detector.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)

	flipped, err = detector.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, flipped)
}

func TestOfflineDetector_Sweep_SendsAlertMail(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	ctrl := gomock.NewController(t)

	serverRepo := mockrepository.NewMockServerRepository(ctrl)
	serverRepo.EXPECT().GetServers(ctx).Return([]model.Server{
		{
			Name:            "web-01",
			Status:          model.ServerStatusOnline,
			MonitorInterval: 300,
			LastSeen:        timePtr(now.Add(-1000 * time.Second)),
		},
	}, nil)
	serverRepo.EXPECT().
		UpdateServerStatus(ctx, "web-01", model.ServerStatusOffline, "").
		Return(nil)

	mailSender := mail.NewMockSender(ctrl)
	mailSender.EXPECT().
		SendMail([]string{"admin@example.com"}, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	detector := NewOfflineDetector(serverRepo, newRecordingBroadcaster(), mailSender, "admin@example.com", 3, zap.NewNop()).(*offlineDetector)
	detector.now = func() time.Time { return now }

	flipped, err := detector.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, flipped)
}
