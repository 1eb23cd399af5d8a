package routes

import (
	mockhandler "VPS_Fleet_Monitor/internal/monitor-service/mocks/api/handler"
	mockrepository "VPS_Fleet_Monitor/internal/monitor-service/mocks/repository"
	mockservice "VPS_Fleet_Monitor/internal/monitor-service/mocks/service"
	"VPS_Fleet_Monitor/internal/monitor-service/ws"
	"VPS_Fleet_Monitor/pkg/middleware"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSetUpMonitorRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockMonitorHandler(ctrl)
	mockMiddleware := middleware.NewMockAuthMiddleware(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
	nextMiddleware := func(c *gin.Context) {
		c.Next()
	}

	mockMiddleware.EXPECT().RequireSecret().Return(nextMiddleware).AnyTimes()

	mockHandler.EXPECT().CreateOrUpdateServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetServers().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().UpdateServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().DeleteServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ImportServersFromExcelFile().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ExportServersToExcelFile().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().ReceiveMonitorData().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().TriggerMonitor().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().RunConnectivityTest().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetMonitorHistory().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetConnectivityResults().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetConfig().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().SetConfig().Return(emptySuccessHandler).AnyTimes()

	registry := ws.NewRegistry(zap.NewNop())
	wsHandler := ws.NewHandler(
		zap.NewNop(),
		"secret",
		time.Second,
		registry,
		mockservice.NewMockIngestService(ctrl),
		mockrepository.NewMockServerRepository(ctrl),
	)

	SetUpMonitorRoutes(r, mockHandler, wsHandler, mockMiddleware)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Health Route",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
		{
			// A plain GET is not a websocket handshake, so the upgrade
			// is refused. The route existing is what matters here.
			name:           "WebSocket Route",
			method:         http.MethodGet,
			path:           "/ws",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Get Servers Route",
			method:         http.MethodGet,
			path:           "/api/servers",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Create Or Update Server Route",
			method:         http.MethodPost,
			path:           "/api/servers",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Import Servers Route",
			method:         http.MethodPost,
			path:           "/api/servers/import",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Export Servers Route",
			method:         http.MethodGet,
			path:           "/api/servers/export",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Server Route",
			method:         http.MethodGet,
			path:           "/api/servers/web-01",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Update Server Route",
			method:         http.MethodPatch,
			path:           "/api/servers/web-01",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Delete Server Route",
			method:         http.MethodDelete,
			path:           "/api/servers/web-01",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Receive Monitor Data Route",
			method:         http.MethodPost,
			path:           "/api/servers/web-01/data",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Trigger Monitor Route",
			method:         http.MethodPost,
			path:           "/api/servers/web-01/monitor",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Run Connectivity Test Route",
			method:         http.MethodPost,
			path:           "/api/servers/web-01/speedtest",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Monitor History Route",
			method:         http.MethodGet,
			path:           "/api/servers/web-01/history",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Connectivity Results Route",
			method:         http.MethodGet,
			path:           "/api/servers/web-01/connectivity",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Config Route",
			method:         http.MethodGet,
			path:           "/api/config/alert_threshold",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Set Config Route",
			method:         http.MethodPut,
			path:           "/api/config/alert_threshold",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
