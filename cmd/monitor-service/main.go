package main

import (
	"VPS_Fleet_Monitor/internal/monitor-service/api/handler"
	"VPS_Fleet_Monitor/internal/monitor-service/api/routes"
	"VPS_Fleet_Monitor/internal/monitor-service/config"
	"VPS_Fleet_Monitor/internal/monitor-service/repository"
	"VPS_Fleet_Monitor/internal/monitor-service/service"
	"VPS_Fleet_Monitor/internal/monitor-service/sshprobe"
	"VPS_Fleet_Monitor/internal/monitor-service/sweep"
	"VPS_Fleet_Monitor/internal/monitor-service/ws"
	"VPS_Fleet_Monitor/pkg/cryptoutil"
	"VPS_Fleet_Monitor/pkg/infra"
	"VPS_Fleet_Monitor/pkg/logger"
	"VPS_Fleet_Monitor/pkg/mail"
	"VPS_Fleet_Monitor/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer("./log/monitor-service.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "monitor-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up redis
	redisClient, err := infra.NewRedisConnection(infra.RedisConfig{
		Host: appConfig.Redis.Host,
		Port: appConfig.Redis.Port,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to redis", zap.Error(err))
	} else {
		zapLogger.Info("connected to redis successfully")
	}
	defer redisClient.Close()

	encryptor, err := cryptoutil.NewEncryptor(appConfig.Server.EncryptionKey)
	if err != nil {
		zapLogger.Fatal("invalid encryption key", zap.Error(err))
	}

	// set up dependencies
	serverRepo := repository.NewServerRepository(db)
	metricRepo := repository.NewCachedMetricRepository(redisClient, repository.NewMetricRepository(db), appConfig.Monitor.LatestSampleTTL)
	connRepo := repository.NewConnectivityRepository(db)
	configRepo := repository.NewConfigRepository(db)
	retentionRepo := repository.NewRetentionRepository(db)

	var mailSender mail.Sender
	if appConfig.Mail.Email != "" {
		mailSender = mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	}

	ingestService := service.NewIngestService(serverRepo, metricRepo)
	collector := sshprobe.NewCollector(encryptor, appConfig.Monitor.ProbeTimeout)
	prober := sweep.NewConnectivityProber(serverRepo, connRepo, zapLogger, appConfig.Monitor.ProbeTimeout, appConfig.Monitor.ProbeWorkers, appConfig.Monitor.ProbeNode, appConfig.Monitor.ProbeRegion)

	registry := ws.NewRegistry(zapLogger)
	registryCtx, registryCancel := context.WithCancel(context.Background())
	defer registryCancel()
	go registry.Run(registryCtx)

	wsHandler := ws.NewHandler(zapLogger, appConfig.Server.AuthSecret, appConfig.Monitor.StoreTimeout, registry, ingestService, serverRepo)
	offlineDetector := sweep.NewOfflineDetector(serverRepo, registry, mailSender, appConfig.Mail.AdminMailAddress, appConfig.Monitor.OfflineMultiplier, zapLogger)
	pullMonitor := sweep.NewPullMonitor(serverRepo, collector, ingestService, registry, zapLogger, appConfig.Monitor.ProbeWorkers)
	retention := sweep.NewRetention(retentionRepo, zapLogger)

	monitorHandler := handler.NewMonitorHandler(zapLogger, serverRepo, metricRepo, connRepo, configRepo, ingestService, prober, collector, encryptor, registry)
	m := middleware.NewAuthMiddleware(appConfig.Server.AuthSecret)

	// scheduled sweeps
	cronJob := cron.New()
	_, err = cronJob.AddFunc(appConfig.Monitor.OfflineSweepSpec, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), appConfig.Monitor.StoreTimeout)
		defer cancel2()
		flipped, e := offlineDetector.Sweep(ctx2)
		if e != nil {
			zapLogger.Error("offline sweep failed", zap.Error(e))
			return
		}
		if flipped > 0 {
			zapLogger.Info("offline sweep flipped servers", zap.Int("count", flipped))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to schedule offline sweep", zap.Error(err))
	}
	_, err = cronJob.AddFunc(appConfig.Monitor.PullSweepSpec, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel2()
		collected, e := pullMonitor.Sweep(ctx2)
		if e != nil {
			zapLogger.Error("pull monitor sweep failed", zap.Error(e))
			return
		}
		if collected > 0 {
			zapLogger.Debug("pull monitor sweep collected servers", zap.Int("count", collected))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to schedule pull monitor sweep", zap.Error(err))
	}
	_, err = cronJob.AddFunc(appConfig.Monitor.ConnectivitySpec, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel2()
		if _, e := prober.RunAll(ctx2); e != nil {
			zapLogger.Error("connectivity sweep failed", zap.Error(e))
		}
	})
	if err != nil {
		zapLogger.Fatal("failed to schedule connectivity sweep", zap.Error(err))
	}
	_, err = cronJob.AddFunc(appConfig.Monitor.RetentionSweepSpec, func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel2()
		stats, e := retention.Purge(ctx2, appConfig.Monitor.RetentionMaxAge)
		if e != nil {
			zapLogger.Error("retention sweep failed", zap.Error(e))
			return
		}
		zapLogger.Info("retention sweep finished",
			zap.Int64("metric_rows", stats.MetricSamples),
			zap.Int64("connectivity_rows", stats.ConnectivityResults),
			zap.Int64("operation_log_rows", stats.OperationLogs),
		)
	})
	if err != nil {
		zapLogger.Fatal("failed to schedule retention sweep", zap.Error(err))
	}
	cronJob.Start()

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.SetUpMonitorRoutes(r, monitorHandler, wsHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	cronJob.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
