package repository

import (
	mockrepository "VPS_Fleet_Monitor/internal/monitor-service/mocks/repository"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"bytes"
	"context"
	"encoding/gob"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func encodeSample(t *testing.T, sample model.MetricSample) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(sample))
	return buf.Bytes()
}

func TestCachedMetricRepository_GetLatestSample_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockMetricRepository(ctrl)

	sample := model.MetricSample{
		ID:         7,
		ServerName: "web-01",
		Timestamp:  time.Now().UTC().Truncate(time.Second),
		CPUUsage:   42.5,
		DataSource: model.DataSourceAgent,
	}

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("latest_sample:web-01").SetVal(string(encodeSample(t, sample)))

	repo := NewCachedMetricRepository(redisClient, mockRepo, time.Minute)

	got, found, err := repo.GetLatestSample(context.Background(), "web-01")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCachedMetricRepository_GetLatestSample_CacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockMetricRepository(ctrl)

	sample := model.MetricSample{
		ID:         9,
		ServerName: "web-01",
		Timestamp:  time.Now().UTC().Truncate(time.Second),
		CPUUsage:   13.2,
		DataSource: model.DataSourceSSH,
	}

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("latest_sample:web-01").RedisNil()
	redisMock.ExpectSet("latest_sample:web-01", encodeSample(t, sample), time.Minute).SetVal("OK")

	mockRepo.EXPECT().
		GetLatestSample(gomock.Any(), "web-01").
		Return(sample, true, nil)

	repo := NewCachedMetricRepository(redisClient, mockRepo, time.Minute)

	got, found, err := repo.GetLatestSample(context.Background(), "web-01")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCachedMetricRepository_GetLatestSample_NoSample(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockMetricRepository(ctrl)

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectGet("latest_sample:ghost").RedisNil()

	mockRepo.EXPECT().
		GetLatestSample(gomock.Any(), "ghost").
		Return(model.MetricSample{}, false, nil)

	repo := NewCachedMetricRepository(redisClient, mockRepo, time.Minute)

	_, found, err := repo.GetLatestSample(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestCachedMetricRepository_InsertSample_WritesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mockrepository.NewMockMetricRepository(ctrl)

	input := model.MetricSample{
		ServerName: "web-01",
		Timestamp:  time.Now().UTC().Truncate(time.Second),
	}
	inserted := input
	inserted.ID = 21

	redisClient, redisMock := redismock.NewClientMock()
	redisMock.ExpectSet("latest_sample:web-01", encodeSample(t, inserted), time.Minute).SetVal("OK")

	mockRepo.EXPECT().
		InsertSample(gomock.Any(), input).
		Return(inserted, nil)

	repo := NewCachedMetricRepository(redisClient, mockRepo, time.Minute)

	got, err := repo.InsertSample(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, inserted, got)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}
