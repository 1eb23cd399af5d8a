package service

import (
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	mockrepository "VPS_Fleet_Monitor/internal/monitor-service/mocks/repository"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestIngestService_Ingest(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	testErr := errors.New("test error")

	testCases := []struct {
		name          string
		serverName    string
		payload       MetricPayload
		setupMocks    func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository)
		expectedError error
	}{
		{
			name:       "Success Agent payload",
			serverName: "web-01",
			payload: MetricPayload{
				Timestamp: now,
				CPUUsage:  12.5,
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository) {
				metricRepo.EXPECT().
					InsertSample(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, sample model.MetricSample) (model.MetricSample, error) {
						assert.Equal(t, "web-01", sample.ServerName)
						assert.Equal(t, model.DataSourceAgent, sample.DataSource)
						sample.ID = 1
						return sample, nil
					})
				serverRepo.EXPECT().
					UpdateServerStatus(ctx, "web-01", model.ServerStatusOnline, model.DataSourceAgent).
					Return(nil)
			},
			expectedError: nil,
		},
		{
			name:       "Success SSH payload keeps source",
			serverName: "web-01",
			payload: MetricPayload{
				Timestamp:  now,
				DataSource: model.DataSourceSSH,
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository) {
				metricRepo.EXPECT().
					InsertSample(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, sample model.MetricSample) (model.MetricSample, error) {
						assert.Equal(t, model.DataSourceSSH, sample.DataSource)
						return sample, nil
					})
				serverRepo.EXPECT().
					UpdateServerStatus(ctx, "web-01", model.ServerStatusOnline, model.DataSourceSSH).
					Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "Error Missing timestamp",
			serverName:    "web-01",
			payload:       MetricPayload{},
			setupMocks:    func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository) {},
			expectedError: apperrors.ErrInvalidPayload,
		},
		{
			name:       "Error Server name mismatch",
			serverName: "web-01",
			payload: MetricPayload{
				ServerName: "web-02",
				Timestamp:  now,
			},
			setupMocks:    func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository) {},
			expectedError: apperrors.ErrInvalidPayload,
		},
		{
			name:       "Error Unknown data source",
			serverName: "web-01",
			payload: MetricPayload{
				Timestamp:  now,
				DataSource: "carrier-pigeon",
			},
			setupMocks:    func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository) {},
			expectedError: apperrors.ErrInvalidPayload,
		},
		{
			name:       "Error Insert fails",
			serverName: "web-01",
			payload: MetricPayload{
				Timestamp: now,
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository) {
				metricRepo.EXPECT().
					InsertSample(ctx, gomock.Any()).
					Return(model.MetricSample{}, testErr)
			},
			expectedError: testErr,
		},
		{
			name:       "Error Unknown server",
			serverName: "ghost",
			payload: MetricPayload{
				Timestamp: now,
			},
			setupMocks: func(serverRepo *mockrepository.MockServerRepository, metricRepo *mockrepository.MockMetricRepository) {
				metricRepo.EXPECT().
					InsertSample(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, sample model.MetricSample) (model.MetricSample, error) {
						return sample, nil
					})
				serverRepo.EXPECT().
					UpdateServerStatus(ctx, "ghost", model.ServerStatusOnline, model.DataSourceAgent).
					Return(apperrors.ErrServerNotFound)
			},
			expectedError: apperrors.ErrServerNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			serverRepo := mockrepository.NewMockServerRepository(ctrl)
			metricRepo := mockrepository.NewMockMetricRepository(ctrl)
			tc.setupMocks(serverRepo, metricRepo)

			ingest := NewIngestService(serverRepo, metricRepo)

			_, err := ingest.Ingest(ctx, tc.serverName, tc.payload)

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestIngestService_LatestSample(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)

	serverRepo := mockrepository.NewMockServerRepository(ctrl)
	metricRepo := mockrepository.NewMockMetricRepository(ctrl)

	sample := model.MetricSample{ServerName: "web-01", CPUUsage: 50}
	metricRepo.EXPECT().
		GetLatestSample(ctx, "web-01").
		Return(sample, true, nil)

	ingest := NewIngestService(serverRepo, metricRepo)

	got, found, err := ingest.LatestSample(ctx, "web-01")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample, got)
}

func TestPayloadFromSample(t *testing.T) {
	sample := model.MetricSample{
		ID:          3,
		ServerName:  "web-01",
		Timestamp:   time.Now().UTC(),
		CPUUsage:    88.2,
		MemoryUsage: 61.7,
		Load1:       1.5,
		DataSource:  model.DataSourceAgent,
	}

	payload := PayloadFromSample(sample)

	assert.Equal(t, sample.ServerName, payload.ServerName)
	assert.Equal(t, sample.Timestamp, payload.Timestamp)
	assert.Equal(t, sample.CPUUsage, payload.CPUUsage)
	assert.Equal(t, sample.MemoryUsage, payload.MemoryUsage)
	assert.Equal(t, sample.Load1, payload.Load1)
	assert.Equal(t, sample.DataSource, payload.DataSource)
}
