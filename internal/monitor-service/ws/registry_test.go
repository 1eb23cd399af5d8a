package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"VPS_Fleet_Monitor/internal/monitor-service/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry := NewRegistry(zap.NewNop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go registry.Run(ctx)
	return registry
}

func newDashboardSession(t *testing.T, id string, subscriptions ...string) *Session {
	t.Helper()
	session := newSession(id, nil, nil, zap.NewNop())
	require.True(t, session.bindDashboard())
	for _, name := range subscriptions {
		session.subscribe(name)
	}
	return session
}

func receiveFrame(t *testing.T, session *Session) Message {
	t.Helper()
	select {
	case frame := <-session.send:
		var msg Message
		require.NoError(t, json.Unmarshal(frame, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatalf("session %s received no frame", session.ID())
		return Message{}
	}
}

func assertNoFrame(t *testing.T, session *Session) {
	t.Helper()
	select {
	case frame := <-session.send:
		t.Fatalf("session %s received unexpected frame: %s", session.ID(), frame)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRegistry_BroadcastMonitorUpdate_SubscriptionFiltering(t *testing.T) {
	registry := newTestRegistry(t)

	subscribed := newDashboardSession(t, "dash-subscribed", "web-01")
	other := newDashboardSession(t, "dash-other", "db-01")
	unfiltered := newDashboardSession(t, "dash-all")
	agent := newSession("agent-1", nil, nil, zap.NewNop())
	require.True(t, agent.bindAgent("web-01"))

	for _, session := range []*Session{subscribed, other, unfiltered, agent} {
		registry.Register(session)
	}
	require.Equal(t, 4, registry.SessionCount())

	sample := model.MetricSample{
		ServerName: "web-01",
		Timestamp:  time.Now().UTC(),
		CPUUsage:   42.5,
		DataSource: model.DataSourceAgent,
	}
	registry.BroadcastMonitorUpdate("web-01", sample)

	for _, session := range []*Session{subscribed, unfiltered} {
		msg := receiveFrame(t, session)
		assert.Equal(t, MessageTypeMonitorUpdate, msg.Type)
		var update MonitorUpdateData
		require.NoError(t, json.Unmarshal(msg.Data, &update))
		assert.Equal(t, "web-01", update.ServerName)
		assert.Equal(t, 42.5, update.Data.CPUUsage)
	}
	assertNoFrame(t, other)
	assertNoFrame(t, agent)
}

func TestRegistry_BroadcastServerStatus_DashboardsOnly(t *testing.T) {
	registry := newTestRegistry(t)

	dashboard := newDashboardSession(t, "dash-1", "db-01")
	agent := newSession("agent-1", nil, nil, zap.NewNop())
	require.True(t, agent.bindAgent("web-01"))
	unauthenticated := newSession("pending", nil, nil, zap.NewNop())

	registry.Register(dashboard)
	registry.Register(agent)
	registry.Register(unauthenticated)

	registry.BroadcastServerStatus("web-01", model.ServerStatusOffline)

	// Status flips are not subscription-filtered; every dashboard sees them.
	msg := receiveFrame(t, dashboard)
	assert.Equal(t, MessageTypeServerStatus, msg.Type)
	var status ServerStatusData
	require.NoError(t, json.Unmarshal(msg.Data, &status))
	assert.Equal(t, "web-01", status.ServerName)
	assert.Equal(t, model.ServerStatusOffline, status.Status)

	assertNoFrame(t, agent)
	assertNoFrame(t, unauthenticated)
}

func TestRegistry_BroadcastAlert(t *testing.T) {
	registry := newTestRegistry(t)

	dashboard := newDashboardSession(t, "dash-1")
	registry.Register(dashboard)

	registry.BroadcastAlert("server web-01 is offline")

	msg := receiveFrame(t, dashboard)
	assert.Equal(t, MessageTypeAlert, msg.Type)
	var alert AlertData
	require.NoError(t, json.Unmarshal(msg.Data, &alert))
	assert.Equal(t, "server web-01 is offline", alert.Message)
}

func TestRegistry_Deregister(t *testing.T) {
	registry := newTestRegistry(t)

	dashboard := newDashboardSession(t, "dash-1")
	registry.Register(dashboard)
	require.Equal(t, 1, registry.SessionCount())

	registry.Deregister("dash-1")
	assert.Equal(t, 0, registry.SessionCount())
	assert.True(t, dashboard.closed.Load())

	// Unknown ids are a no-op.
	registry.Deregister("dash-1")
	registry.Deregister("never-registered")
	assert.Equal(t, 0, registry.SessionCount())
}

func TestRegistry_FailedSendRemovesSession(t *testing.T) {
	registry := newTestRegistry(t)

	healthy := newDashboardSession(t, "dash-healthy")
	dead := newDashboardSession(t, "dash-dead")
	registry.Register(healthy)
	registry.Register(dead)
	dead.close(4000, "gone")

	registry.BroadcastServerStatus("web-01", model.ServerStatusOnline)

	msg := receiveFrame(t, healthy)
	assert.Equal(t, MessageTypeServerStatus, msg.Type)
	assert.Eventually(t, func() bool {
		return registry.SessionCount() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestSession_SafeSendAfterClose(t *testing.T) {
	session := newDashboardSession(t, "dash-1")
	require.True(t, session.safeSend([]byte(`{}`)))

	session.close(4000, "gone")
	assert.False(t, session.safeSend([]byte(`{}`)))
}

func TestSession_SafeSendFullBuffer(t *testing.T) {
	session := newDashboardSession(t, "dash-1")
	for i := 0; i < sendBufferSize; i++ {
		require.True(t, session.safeSend([]byte(`{}`)))
	}
	assert.False(t, session.safeSend([]byte(`{}`)))
}

func TestSession_RoleBindsOnce(t *testing.T) {
	agent := newSession("agent-1", nil, nil, zap.NewNop())
	require.True(t, agent.bindAgent("web-01"))
	assert.False(t, agent.bindAgent("web-02"))
	assert.False(t, agent.bindDashboard())
	assert.Equal(t, RoleAgent, agent.Role())
	assert.Equal(t, "web-01", agent.ServerName())

	dashboard := newSession("dash-1", nil, nil, zap.NewNop())
	require.True(t, dashboard.bindDashboard())
	assert.False(t, dashboard.bindAgent("web-01"))
}

func TestSession_WantsMonitorUpdate(t *testing.T) {
	unauthenticated := newSession("pending", nil, nil, zap.NewNop())
	assert.False(t, unauthenticated.wantsMonitorUpdate("web-01"))

	agent := newSession("agent-1", nil, nil, zap.NewNop())
	require.True(t, agent.bindAgent("web-01"))
	assert.False(t, agent.wantsMonitorUpdate("web-01"))

	unfiltered := newDashboardSession(t, "dash-all")
	assert.True(t, unfiltered.wantsMonitorUpdate("web-01"))
	assert.True(t, unfiltered.wantsMonitorUpdate("db-01"))

	filtered := newDashboardSession(t, "dash-filtered", "web-01")
	assert.True(t, filtered.wantsMonitorUpdate("web-01"))
	assert.False(t, filtered.wantsMonitorUpdate("db-01"))
}
