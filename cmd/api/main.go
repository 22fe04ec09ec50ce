// @title           Kanban Board API
// @version         1.0
// @description     보드, 리스트, 카드와 초대 코드 기반 보드 공유 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.wealist.co.kr/support
// @contact.email  support@wealist.co.kr

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8000
// @BasePath  /api/kanban

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	_ "kanban-board-api/docs" // Swagger docs import

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/job"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/router"
	"kanban-board-api/internal/service"
)

const (
	dbRetryInterval     = 5 * time.Second
	dbStatsInterval     = 15 * time.Second
	migrationMaxRetries = 3
)

// swapHandler serves the unavailable router until the database connects
type swapHandler struct {
	current atomic.Value
}

func (h *swapHandler) Store(handler http.Handler) {
	h.current.Store(&handler)
}

func (h *swapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	(*h.current.Load().(*http.Handler)).ServeHTTP(w, r)
}

// background tracks what onDatabase starts so shutdown can stop it
type background struct {
	mu        sync.Mutex
	scheduler *cron.Cron
	statsDone chan struct{}
	db        *gorm.DB
}

func (b *background) stop(ctx context.Context, logger *zap.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.scheduler != nil {
		select {
		case <-b.scheduler.Stop().Done():
		case <-ctx.Done():
			logger.Warn("Cron jobs did not finish before shutdown timeout")
		}
	}
	if b.statsDone != nil {
		close(b.statsDone)
	}
	if b.db != nil {
		if err := database.Close(b.db); err != nil {
			logger.Error("Failed to close database", zap.Error(err))
		}
	}
}

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Kanban Board API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("auth_api_url", cfg.AuthAPI.BaseURL),
	)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Redis only backs the redemption rate limiter
	var rdb *redis.Client
	if cfg.Redis.URL != "" || cfg.Redis.Host != "" {
		rdb, err = database.NewRedis(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Failed to connect to Redis, redemption rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	} else {
		logger.Warn("Redis configuration missing, redemption rate limiting disabled")
	}

	// Initialize S3 client
	var storage service.ObjectStorage
	if cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		s3Client, err := client.NewS3Client(context.Background(), cfg.S3, m)
		if err != nil {
			logger.Warn("Failed to initialize S3 client, board export disabled", zap.Error(err))
		} else {
			storage = s3Client
			logger.Info("S3 client initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	} else {
		logger.Warn("S3 configuration incomplete, board export disabled")
	}

	// Tokens go to auth-service when configured, otherwise they are verified locally
	var authClient *client.AuthClient
	if cfg.AuthAPI.BaseURL != "" {
		authClient = client.NewAuthClient(cfg.AuthAPI.BaseURL, cfg.AuthAPI.Timeout, logger, m)
		logger.Info("Auth client initialized", zap.String("auth_api_url", cfg.AuthAPI.BaseURL))
	}

	routerConfig := router.Config{
		Redis:                rdb,
		Logger:               logger,
		Metrics:              m,
		BasePath:             cfg.Server.BasePath,
		JWTSecret:            cfg.JWT.Secret,
		AuthClient:           authClient,
		Storage:              storage,
		PresignExpiry:        cfg.S3.PresignExpiry,
		InvitationCodeLength: cfg.Invitation.CodeLength,
		RedeemRateLimit:      cfg.Invitation.RedeemRateLimit,
		RedeemRateWindow:     cfg.Invitation.RedeemRateWindow,
	}

	handler := &swapHandler{}
	handler.Store(router.SetupUnavailable(routerConfig))

	bg := &background{}
	onDatabase := func(db *gorm.DB) {
		if err := database.AutoMigrateWithRetry(db, logger, migrationMaxRetries); err != nil {
			logger.Error("Failed to run database migrations", zap.Error(err))
		}
		if err := database.RegisterMetricsCallbacks(db, m); err != nil {
			logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
		}

		metricsJob := job.NewMetricsJob(
			repository.NewBoardRepository(db),
			repository.NewListRepository(db),
			repository.NewCardRepository(db),
			repository.NewInvitationRepository(db),
			m,
			logger,
		)
		scheduler, err := job.NewScheduler(cfg.Jobs.MetricsCron, metricsJob, logger)
		if err != nil {
			logger.Error("Failed to schedule metrics job", zap.Error(err))
		} else {
			scheduler.Start()
			go metricsJob.Run()
		}

		bg.mu.Lock()
		bg.db = db
		bg.scheduler = scheduler
		bg.statsDone = database.StartDBStatsCollector(db, m, dbStatsInterval)
		bg.mu.Unlock()

		rc := routerConfig
		rc.DB = db
		handler.Store(router.Setup(rc))
		logger.Info("API routes enabled")
	}

	// Initialize database (실패해도 앱은 시작됨 - EKS pod 생존 보장)
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	stopRetry := make(chan struct{})
	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("⚠️  Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, dbRetryInterval, logger, stopRetry, onDatabase)
	} else {
		logger.Info("Database connected successfully")
		database.SetDB(db)
		onDatabase(db)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Kanban Board API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")
	close(stopRetry)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	bg.stop(ctx, logger)
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("Failed to close Redis", zap.Error(err))
		}
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
