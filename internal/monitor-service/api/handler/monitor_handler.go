package handler

import (
	"VPS_Fleet_Monitor/internal/monitor-service/api/dto/request"
	"VPS_Fleet_Monitor/internal/monitor-service/api/dto/response"
	apperrors "VPS_Fleet_Monitor/internal/monitor-service/errors"
	"VPS_Fleet_Monitor/internal/monitor-service/model"
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"VPS_Fleet_Monitor/internal/monitor-service/service"
	"VPS_Fleet_Monitor/internal/monitor-service/sshprobe"
	"VPS_Fleet_Monitor/internal/monitor-service/sweep"
	"VPS_Fleet_Monitor/pkg/cryptoutil"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultSSHPort         = 22
	defaultMonitorInterval = 300
	maxHistoryHours        = 720
)

// UpdateBroadcaster pushes persisted changes out to connected dashboards.
type UpdateBroadcaster interface {
	BroadcastMonitorUpdate(serverName string, sample model.MetricSample)
	BroadcastServerStatus(serverName string, status string)
}

type MonitorHandler interface {
	CreateOrUpdateServer() gin.HandlerFunc
	GetServers() gin.HandlerFunc
	GetServer() gin.HandlerFunc
	UpdateServer() gin.HandlerFunc
	DeleteServer() gin.HandlerFunc
	ImportServersFromExcelFile() gin.HandlerFunc
	ExportServersToExcelFile() gin.HandlerFunc
	ReceiveMonitorData() gin.HandlerFunc
	TriggerMonitor() gin.HandlerFunc
	RunConnectivityTest() gin.HandlerFunc
	GetMonitorHistory() gin.HandlerFunc
	GetConnectivityResults() gin.HandlerFunc
	GetConfig() gin.HandlerFunc
	SetConfig() gin.HandlerFunc
}

type monitorHandler struct {
	logger        *zap.Logger
	serverRepo    repository.ServerRepository
	metricRepo    repository.MetricRepository
	connRepo      repository.ConnectivityRepository
	configRepo    repository.ConfigRepository
	ingestService service.IngestService
	prober        sweep.ConnectivityProber
	collector     sshprobe.Collector
	encryptor     cryptoutil.Encryptor
	broadcaster   UpdateBroadcaster
	validator     *validator.Validate
}

func (*monitorHandler) formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required", err.Field())
	case "gte":
		return fmt.Sprintf("The %s field must be greater than or equal to %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("The %s field must be less than or equal to %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of: %s", err.Field(), err.Param())
	case "ip|hostname":
		return fmt.Sprintf("The %s field is not a valid ip or hostname", err.Field())
	default:
		return fmt.Sprintf("Validation failed for %s with tag %s.", err.Field(), err.Tag())
	}
}

func (m *monitorHandler) encryptCredentials(creds *request.CredentialsRequest) (string, error) {
	plain, err := json.Marshal(creds)
	if err != nil {
		return "", err
	}
	return m.encryptor.Encrypt(string(plain))
}

func (m *monitorHandler) CreateOrUpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpsertServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: m.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}

		server := model.Server{
			Name:            req.Name,
			IPAddress:       req.IPAddress,
			Port:            defaultSSHPort,
			MonitorMethod:   model.MonitorMethodPush,
			MonitorInterval: defaultMonitorInterval,
			Status:          model.ServerStatusUnknown,
			Location:        req.Location,
			Region:          req.Region,
			Seller:          req.Seller,
			Price:           req.Price,
			DueTime:         req.DueTime,
			BuyURL:          req.BuyURL,
		}
		if req.Port != nil {
			server.Port = *req.Port
		}
		if req.MonitorMethod != "" {
			server.MonitorMethod = req.MonitorMethod
		}
		if req.MonitorInterval != nil {
			server.MonitorInterval = *req.MonitorInterval
		}

		existing, err := m.serverRepo.GetServerByName(c, req.Name)
		exists := err == nil
		if err != nil && !errors.Is(err, apperrors.ErrServerNotFound) {
			err = fmt.Errorf("MonitorHandler.CreateOrUpdateServer: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to upsert server %s", req.Name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}

		if req.Credentials != nil {
			blob, err := m.encryptCredentials(req.Credentials)
			if err != nil {
				err = fmt.Errorf("MonitorHandler.CreateOrUpdateServer: %w", err)
				m.loggingError(c, err, fmt.Sprintf("failed to encrypt credentials for server %s", req.Name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
				return
			}
			server.EncryptedCredentials = blob
		} else if exists {
			// Keep the stored credentials when the request omits them.
			server.EncryptedCredentials = existing.EncryptedCredentials
		}

		res, err := m.serverRepo.UpsertServer(c, server)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.CreateOrUpdateServer: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to upsert server %s", req.Name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		status := http.StatusCreated
		if exists {
			status = http.StatusOK
		}
		c.JSON(status, response.NewServerInfoResponse(res))
	}
}

func (m *monitorHandler) GetServers() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := m.serverRepo.GetServers(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetServers: %w", err)
			m.loggingError(c, err, "failed to get servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		serversRes := make([]response.ServerInfoResponse, 0)
		for _, server := range servers {
			serversRes = append(serversRes, response.NewServerInfoResponse(server))
		}
		c.JSON(http.StatusOK, serversRes)
	}
}

func (m *monitorHandler) GetServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		server, err := m.serverRepo.GetServerByName(c, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrServerNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetServer: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to get server %s", name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponse(server))
	}
}

func (m *monitorHandler) UpdateServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.UpdateServerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: m.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		name := c.Param("name")
		updatedData := model.Server{
			Name:          name,
			IPAddress:     req.IPAddress,
			MonitorMethod: req.MonitorMethod,
			Location:      req.Location,
			Region:        req.Region,
			Seller:        req.Seller,
			Price:         req.Price,
			DueTime:       req.DueTime,
			BuyURL:        req.BuyURL,
		}
		if req.Port != nil {
			updatedData.Port = *req.Port
		}
		if req.MonitorInterval != nil {
			updatedData.MonitorInterval = *req.MonitorInterval
		}
		if req.Credentials != nil {
			blob, err := m.encryptCredentials(req.Credentials)
			if err != nil {
				err = fmt.Errorf("MonitorHandler.UpdateServer: %w", err)
				m.loggingError(c, err, fmt.Sprintf("failed to encrypt credentials for server %s", name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
				return
			}
			updatedData.EncryptedCredentials = blob
		}
		updatedServer, err := m.serverRepo.UpdateServer(c, updatedData)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("MonitorHandler.UpdateServer: %w", err)
				m.loggingError(c, err, fmt.Sprintf("failed to update server %s", name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		c.JSON(http.StatusOK, response.NewServerInfoResponse(updatedServer))
	}
}

func (m *monitorHandler) DeleteServer() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		err := m.serverRepo.DeleteServerByName(c, name)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.DeleteServer: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to delete server %s", name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Server deleted",
		})
	}
}

var errSheetNotFound = errors.New("sheet not found")
var errEmptyFile = errors.New("file is empty")
var errMissingRequiredColumn = errors.New("missing required column")

func (m *monitorHandler) ImportServersFromExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		ext := filepath.Ext(file.Filename)
		if ext != ".xlsx" && ext != ".xls" {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "File must be excel file",
			})
			return
		}
		importSheet := c.Query("sheet_name")

		validServers, invalidServers, err := m.extractServersFromExcelFile(file, importSheet)
		if err != nil {
			switch {
			case errors.Is(err, errEmptyFile):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "File is empty",
				})
			case errors.Is(err, errSheetNotFound):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Sheet not found",
				})
			case errors.Is(err, errMissingRequiredColumn):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Missing required column",
				})
			default:
				err = fmt.Errorf("MonitorHandler.ImportServersFromExcelFile: %w", err)
				m.loggingError(c, err, "failed to import servers", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}

		var importedServerNames []string
		for _, server := range validServers {
			if _, err = m.serverRepo.CreateServer(c, server); err != nil {
				if errors.Is(err, apperrors.ErrServerNameAlreadyExists) {
					invalidServers = append(invalidServers, server.Name)
					continue
				}
				err = fmt.Errorf("MonitorHandler.ImportServersFromExcelFile: %w", err)
				m.loggingError(c, err, "failed to import servers", zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
				return
			}
			importedServerNames = append(importedServerNames, server.Name)
		}
		c.JSON(http.StatusOK, response.ImportServerResponse{
			ImportedCount:   len(importedServerNames),
			ImportedServers: importedServerNames,
			FailedCount:     len(invalidServers),
			FailedServers:   invalidServers,
		})
	}
}

func (m *monitorHandler) extractServersFromExcelFile(file *multipart.FileHeader, importSheet string) (validServers []model.Server, invalidServers []string, err error) {
	fileContent, err := file.Open()
	if err != nil {
		return
	}
	defer fileContent.Close()

	xlsx, err := excelize.OpenReader(fileContent)
	if err != nil {
		return
	}
	defer xlsx.Close()

	if importSheet == "" {
		importSheet = xlsx.GetSheetName(0)
	} else {
		index, _ := xlsx.GetSheetIndex(importSheet)
		if index == -1 {
			err = errSheetNotFound
			return
		}
	}

	rows, err := xlsx.GetRows(importSheet)
	if err != nil {
		return
	}
	if len(rows) < 2 {
		err = errEmptyFile
		return
	}

	columnMap := make(map[string]int)
	for i, cell := range rows[0] {
		columnMap[strings.ToLower(strings.TrimSpace(cell))] = i
	}
	if _, ok := columnMap["name"]; !ok {
		err = errMissingRequiredColumn
		return
	}

	cell := func(row []string, column string) string {
		idx, ok := columnMap[column]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		name := cell(row, "name")
		req := request.UpsertServerRequest{
			Name:          name,
			IPAddress:     cell(row, "ip_address"),
			MonitorMethod: cell(row, "monitor_method"),
			Location:      cell(row, "location"),
			Region:        cell(row, "region"),
			Seller:        cell(row, "seller"),
			Price:         cell(row, "price"),
			BuyURL:        cell(row, "buy_url"),
		}
		if raw := cell(row, "port"); raw != "" {
			p, e := strconv.Atoi(raw)
			if e != nil {
				invalidServers = append(invalidServers, name)
				continue
			}
			req.Port = &p
		}
		if raw := cell(row, "monitor_interval"); raw != "" {
			interval, e := strconv.Atoi(raw)
			if e != nil {
				invalidServers = append(invalidServers, name)
				continue
			}
			req.MonitorInterval = &interval
		}
		if e := m.validator.Struct(req); e != nil {
			invalidServers = append(invalidServers, name)
			continue
		}
		server := model.Server{
			Name:            req.Name,
			IPAddress:       req.IPAddress,
			Port:            defaultSSHPort,
			MonitorMethod:   model.MonitorMethodPush,
			MonitorInterval: defaultMonitorInterval,
			Status:          model.ServerStatusUnknown,
			Location:        req.Location,
			Region:          req.Region,
			Seller:          req.Seller,
			Price:           req.Price,
			BuyURL:          req.BuyURL,
		}
		if req.Port != nil {
			server.Port = *req.Port
		}
		if req.MonitorMethod != "" {
			server.MonitorMethod = req.MonitorMethod
		}
		if req.MonitorInterval != nil {
			server.MonitorInterval = *req.MonitorInterval
		}
		validServers = append(validServers, server)
	}
	return
}

func (m *monitorHandler) ExportServersToExcelFile() gin.HandlerFunc {
	return func(c *gin.Context) {
		servers, err := m.serverRepo.GetServers(c)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportServersToExcelFile: %w", err)
			m.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		file, err := m.generateExcelFile(servers)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.ExportServersToExcelFile: %w", err)
			m.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		defer file.Close()
		fileName := fmt.Sprintf("servers-%s.xlsx", time.Now().Format("2006-01-02T15:04:05"))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		if err = file.Write(c.Writer); err != nil {
			err = fmt.Errorf("MonitorHandler.ExportServersToExcelFile: %w", err)
			m.loggingError(c, err, "failed to export servers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.Status(http.StatusOK)
	}
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}

func (m *monitorHandler) generateExcelFile(servers []model.Server) (*excelize.File, error) {
	f := excelize.NewFile()
	sheetName := "Servers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	headers := []interface{}{"name", "ip_address", "port", "status", "monitor_method", "monitor_interval", "location", "region", "seller", "price", "due_time", "last_seen", "created_at"}
	headerStartCell := "A1"
	err = f.SetSheetRow(sheetName, headerStartCell, &headers)
	if err != nil {
		return nil, err
	}
	for i, server := range servers {
		rowData := []interface{}{
			server.Name,
			server.IPAddress,
			server.Port,
			server.Status,
			server.MonitorMethod,
			server.MonitorInterval,
			server.Location,
			server.Region,
			server.Seller,
			server.Price,
			formatTimePtr(server.DueTime),
			formatTimePtr(server.LastSeen),
			server.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		startCell := fmt.Sprintf("A%d", i+2)
		err = f.SetSheetRow(sheetName, startCell, &rowData)
		if err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(index)
	return f, nil
}

func (m *monitorHandler) ReceiveMonitorData() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		var payload service.MetricPayload
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(http.StatusBadRequest, response.Response{
				Message: "Invalid request body",
			})
			return
		}
		sample, err := m.ingestService.Ingest(c, name, payload)
		if err != nil {
			switch {
			case errors.Is(err, apperrors.ErrInvalidPayload):
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid monitor payload",
				})
			case errors.Is(err, apperrors.ErrServerNotFound):
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
			default:
				err = fmt.Errorf("MonitorHandler.ReceiveMonitorData: %w", err)
				m.loggingError(c, err, fmt.Sprintf("failed to ingest monitor data for server %s", name), zap.ErrorLevel)
				c.JSON(http.StatusInternalServerError, response.Response{
					Message: "Internal server error",
				})
			}
			return
		}
		m.broadcaster.BroadcastMonitorUpdate(name, sample)
		c.JSON(http.StatusOK, response.Response{
			Message: "Monitor data received",
		})
	}
}

func (m *monitorHandler) TriggerMonitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		server, err := m.serverRepo.GetServerByName(c, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrServerNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.TriggerMonitor: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to get server %s", name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		payload, err := m.collector.Collect(c, server)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoCredentials) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Server has no stored credentials",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.TriggerMonitor: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to collect metrics from server %s over ssh", name), zap.WarnLevel)
			c.JSON(http.StatusBadGateway, response.Response{
				Message: "Failed to collect metrics over ssh",
			})
			return
		}
		sample, err := m.ingestService.Ingest(c, name, payload)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.TriggerMonitor: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to store collected metrics for server %s", name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		m.broadcaster.BroadcastMonitorUpdate(name, sample)
		c.JSON(http.StatusOK, response.NewMetricSampleResponse(sample))
	}
}

func (m *monitorHandler) RunConnectivityTest() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		results, err := m.prober.RunFor(c, name)
		if err != nil {
			if errors.Is(err, apperrors.ErrServerNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Server not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.RunConnectivityTest: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to run connectivity test for server %s", name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		resultsRes := make([]response.ConnectivityResultResponse, 0)
		for _, result := range results {
			resultsRes = append(resultsRes, response.NewConnectivityResultResponse(result))
		}
		c.JSON(http.StatusOK, resultsRes)
	}
}

func (m *monitorHandler) parseHoursQuery(c *gin.Context) (int, bool) {
	hours := c.DefaultQuery("hours", "24")
	h, err := strconv.Atoi(hours)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: "Hours must be an integer",
		})
		return 0, false
	}
	if h < 1 || h > maxHistoryHours {
		c.JSON(http.StatusBadRequest, response.Response{
			Message: fmt.Sprintf("Hours must be between 1 and %d", maxHistoryHours),
		})
		return 0, false
	}
	return h, true
}

func (m *monitorHandler) GetMonitorHistory() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		h, ok := m.parseHoursQuery(c)
		if !ok {
			return
		}
		since := time.Now().Add(-time.Duration(h) * time.Hour)
		samples, err := m.metricRepo.GetHistory(c, name, since)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetMonitorHistory: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to get monitor history of server %s", name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		samplesRes := make([]response.MetricSampleResponse, 0)
		for _, sample := range samples {
			samplesRes = append(samplesRes, response.NewMetricSampleResponse(sample))
		}
		c.JSON(http.StatusOK, samplesRes)
	}
}

func (m *monitorHandler) GetConnectivityResults() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		h, ok := m.parseHoursQuery(c)
		if !ok {
			return
		}
		since := time.Now().Add(-time.Duration(h) * time.Hour)
		results, err := m.connRepo.GetResults(c, name, since)
		if err != nil {
			err = fmt.Errorf("MonitorHandler.GetConnectivityResults: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to get connectivity results of server %s", name), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		resultsRes := make([]response.ConnectivityResultResponse, 0)
		for _, result := range results {
			resultsRes = append(resultsRes, response.NewConnectivityResultResponse(result))
		}
		c.JSON(http.StatusOK, resultsRes)
	}
}

func (m *monitorHandler) GetConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("key")
		value, err := m.configRepo.GetConfig(c, key)
		if err != nil {
			if errors.Is(err, apperrors.ErrConfigKeyNotFound) {
				c.JSON(http.StatusNotFound, response.Response{
					Message: "Config key not found",
				})
				return
			}
			err = fmt.Errorf("MonitorHandler.GetConfig: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to get config %s", key), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.ConfigResponse{
			Key:   key,
			Value: value,
		})
	}
}

func (m *monitorHandler) SetConfig() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SetConfigRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: m.formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		key := c.Param("key")
		configType := req.Type
		if configType == "" {
			configType = model.ConfigTypeString
		}
		if err := m.configRepo.SetConfig(c, key, req.Value, configType); err != nil {
			err = fmt.Errorf("MonitorHandler.SetConfig: %w", err)
			m.loggingError(c, err, fmt.Sprintf("failed to set config %s", key), zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.Response{
			Message: "Config updated",
		})
	}
}

func (m *monitorHandler) loggingError(c *gin.Context, err error, errDescription string, logLevel zapcore.Level) {
	var data []zapcore.Field
	data = append(data, zap.Error(err))
	data = append(data, zap.String("http_method", c.Request.Method))
	data = append(data, zap.String("http_path", c.Request.URL.Path))
	m.logger.Log(logLevel, errDescription, data...)
}

func NewMonitorHandler(
	logger *zap.Logger,
	serverRepo repository.ServerRepository,
	metricRepo repository.MetricRepository,
	connRepo repository.ConnectivityRepository,
	configRepo repository.ConfigRepository,
	ingestService service.IngestService,
	prober sweep.ConnectivityProber,
	collector sshprobe.Collector,
	encryptor cryptoutil.Encryptor,
	broadcaster UpdateBroadcaster,
) MonitorHandler {
	return &monitorHandler{
		logger:        logger,
		serverRepo:    serverRepo,
		metricRepo:    metricRepo,
		connRepo:      connRepo,
		configRepo:    configRepo,
		ingestService: ingestService,
		prober:        prober,
		collector:     collector,
		encryptor:     encryptor,
		broadcaster:   broadcaster,
		validator:     validator.New(),
	}
}
