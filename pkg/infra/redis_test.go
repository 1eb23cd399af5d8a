package infra

import (
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestNewRedisConnection(t *testing.T) {
	ctx := context.Background()
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		log.Fatalf("failed to start redis container: %s", err)
		return
	}
	defer func() {
		if e := testcontainers.TerminateContainer(redisContainer); e != nil {
			log.Fatalf("failed to terminate container: %s", e)
		}
	}()

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	testCases := []struct {
		name      string
		input     RedisConfig
		expectErr bool
	}{
		{
			name:      "valid input",
			input:     RedisConfig{Host: host, Port: port.Int()},
			expectErr: false,
		},
		{
			name:      "unreachable port",
			input:     RedisConfig{Host: host, Port: 1},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewRedisConnection(tc.input)
			if tc.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, client)
			}
		})
	}
}
