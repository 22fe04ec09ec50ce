package router

import (
	"context"
	"net/http"
	"time"

	commonmw "github.com/OrangesCloud/wealist-advanced-go-pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"kanban-board-api/internal/client"
	"kanban-board-api/internal/database"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/response"
	"kanban-board-api/internal/service"
)

const serviceName = "kanban-board-api"

// Config holds router configuration
type Config struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Gatherer   prometheus.Gatherer
	BasePath   string
	JWTSecret  string
	AuthClient *client.AuthClient

	// Storage is nil when S3 is not configured; exports then answer 503
	Storage       service.ObjectStorage
	PresignExpiry time.Duration

	InvitationCodeLength int
	RedeemRateLimit      int
	RedeemRateWindow     time.Duration

	// Now overrides the clock used for invitation expiry
	Now func() time.Time
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	r := newEngine(cfg)

	// Initialize repositories
	boardRepo := repository.NewBoardRepository(cfg.DB)
	memberRepo := repository.NewMemberRepository(cfg.DB)
	invitationRepo := repository.NewInvitationRepository(cfg.DB)
	listRepo := repository.NewListRepository(cfg.DB)
	cardRepo := repository.NewCardRepository(cfg.DB)
	exportRepo := repository.NewExportRepository(cfg.DB)

	// Initialize services
	permissionService := service.NewPermissionService(boardRepo, memberRepo, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(boardRepo, permissionService, cfg.Metrics, cfg.Logger)
	listService := service.NewListService(listRepo, permissionService, cfg.Logger)
	cardService := service.NewCardService(cardRepo, listRepo, permissionService, cfg.Logger)
	invitationService := service.NewInvitationService(
		invitationRepo,
		memberRepo,
		boardRepo,
		permissionService,
		service.NewCodeGenerator(cfg.InvitationCodeLength),
		cfg.Now,
		cfg.Metrics,
		cfg.Logger,
	)
	exportService := service.NewExportService(
		boardRepo,
		exportRepo,
		permissionService,
		cfg.Storage,
		cfg.PresignExpiry,
		cfg.Now,
		cfg.Metrics,
		cfg.Logger,
	)

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(boardService)
	listHandler := handler.NewListHandler(listService)
	cardHandler := handler.NewCardHandler(cardService)
	invitationHandler := handler.NewInvitationHandler(invitationService)
	memberHandler := handler.NewMemberHandler(invitationService)
	exportHandler := handler.NewExportHandler(exportService)

	// Auth middleware - use auth-service validator if available, otherwise use local JWT
	var validator middleware.TokenValidator = middleware.NewJWTValidator(cfg.JWTSecret)
	if cfg.AuthClient != nil {
		validator = cfg.AuthClient
	}
	authMiddleware := middleware.Auth(validator)

	var redeemLimiter *middleware.RateLimiter
	if cfg.Redis != nil {
		redeemLimiter = middleware.NewRateLimiter(cfg.Redis, cfg.RedeemRateLimit, cfg.RedeemRateWindow, cfg.Logger)
	}

	api := r.Group(cfg.BasePath)
	api.Use(authMiddleware)

	boards := api.Group("/boards")
	{
		boards.POST("", boardHandler.CreateBoard)
		boards.GET("", boardHandler.GetBoards)
		boards.GET("/:boardId", boardHandler.GetBoard)
		boards.PATCH("/:boardId", boardHandler.UpdateBoard)
		boards.PATCH("/:boardId/visibility", boardHandler.UpdateVisibility)
		boards.DELETE("/:boardId", boardHandler.DeleteBoard)
		boards.GET("/:boardId/permissions", boardHandler.GetPermissions)

		boards.GET("/:boardId/lists", listHandler.GetLists)
		boards.POST("/:boardId/lists", listHandler.CreateList)

		boards.POST("/:boardId/invitations", invitationHandler.CreateInvitation)
		boards.GET("/:boardId/invitations", invitationHandler.GetInvitations)

		boards.GET("/:boardId/members", memberHandler.GetMembers)
		boards.DELETE("/:boardId/members/:userId", memberHandler.RemoveMember)

		boards.POST("/:boardId/export", exportHandler.ExportBoard)
		boards.GET("/:boardId/exports", exportHandler.GetExports)
	}

	lists := api.Group("/lists")
	{
		lists.PATCH("/:listId", listHandler.UpdateList)
		lists.DELETE("/:listId", listHandler.DeleteList)
		lists.GET("/:listId/cards", cardHandler.GetCards)
		lists.POST("/:listId/cards", cardHandler.CreateCard)
	}

	cards := api.Group("/cards")
	{
		cards.PATCH("/:cardId", cardHandler.UpdateCard)
		cards.DELETE("/:cardId", cardHandler.DeleteCard)
	}

	invitations := api.Group("/invitations")
	{
		invitations.DELETE("/:invitationId", invitationHandler.RevokeInvitation)
		invitations.GET("/:code", invitationHandler.PreviewInvitation)
		invitations.POST("/:code/accept", redeemLimiter.Middleware("redeem"), invitationHandler.AcceptInvitation)
	}

	return r
}

// SetupUnavailable returns a router that serves health, metrics and swagger
// but answers every API route with 503. It is used until the database is reachable.
func SetupUnavailable(cfg Config) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	r := newEngine(cfg)
	r.NoRoute(func(c *gin.Context) {
		response.SendError(c, http.StatusServiceUnavailable, response.ErrCodeServiceUnavailable, "Database is not available yet")
	})
	return r
}

// newEngine registers middleware and the unauthenticated operational routes
func newEngine(cfg Config) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(commonmw.Logger(cfg.Logger))
	r.Use(commonmw.DefaultCORS())
	r.Use(middleware.Metrics(cfg.Metrics))

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsHandler := gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	health := healthHandler
	ready := readyHandler(cfg.DB, cfg.Redis)

	r.GET("/metrics", metricsHandler)
	r.GET("/health", health)
	r.GET("/ready", ready)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.BasePath != "" && cfg.BasePath != "/" {
		base := r.Group(cfg.BasePath)
		base.GET("/metrics", metricsHandler)
		base.GET("/health", health)
		base.GET("/ready", ready)
		base.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": serviceName})
}

// readyHandler reports ready when the database answers a ping. Redis only
// backs the redemption rate limiter, which fails open, so it is reported but
// does not gate readiness.
func readyHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "service": serviceName, "database": "down"})
			return
		}

		redisStatus := "disabled"
		if rdb != nil {
			redisStatus = "up"
			if err := rdb.Ping(ctx).Err(); err != nil {
				redisStatus = "down"
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready", "service": serviceName, "database": "up", "redis": redisStatus})
	}
}
