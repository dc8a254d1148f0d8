package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"farmsight/internal/auth"
	"farmsight/internal/chat"
	"farmsight/internal/config"
	cronrunner "farmsight/internal/cron"
	"farmsight/internal/db"
	"farmsight/internal/estimate"
	"farmsight/internal/handler"
	"farmsight/internal/logger"
	gormrepository "farmsight/internal/repository/gorm"
	"farmsight/internal/seed"
	"farmsight/internal/service"

	_ "farmsight/docs"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("FS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if raw := os.Getenv("FS_ENV_ONLY"); raw != "" {
		envOnly = strings.EqualFold(raw, "true") || raw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Seed.Enabled {
		if err := seed.Run(ctx, dbConn.Gorm, logger); err != nil {
			logger.Fatal("seed failed", zap.Error(err))
		}
	}

	store := gormrepository.New(dbConn.Gorm)
	estimateSvc := &estimate.Service{Repo: store, Logger: logger}

	var chatClient *chat.Client
	if cfg.Chat.Enabled {
		chatClient = chat.NewClient(cfg.Chat, logger)
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm, AppName: "farmsight"}
	healthHandler.Register(engine)
	handler.RegisterDocs(engine)

	jwt := auth.JWT{Secret: []byte(cfg.Auth.JWTSecret), TokenTTL: cfg.Auth.TokenTTL}
	if cfg.Auth.Disabled {
		logger.Warn("auth disabled, all requests run as dev-user")
	}
	api := engine.Group("/api", auth.Middleware(jwt, cfg.Auth.Disabled))

	(&handler.EstimateHandler{Service: estimateSvc, Logger: logger}).Register(api)
	(&handler.ReferenceHandler{Repo: store, Logger: logger}).Register(api)
	(&handler.ChatHandler{Client: chatClient, Logger: logger}).Register(api)

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if cfg.Cron.Enabled {
		runner := cronrunner.New(logger, ctx)
		audit := &service.ReferenceAuditService{Repo: store, Logger: logger}
		if _, err := runner.Add(cfg.Cron.ReferenceAudit, func(ctx context.Context) {
			if err := audit.RunOnce(ctx); err != nil {
				logger.Warn("reference audit failed", zap.Error(err))
			}
		}); err != nil {
			logger.Warn("cron register reference audit failed", zap.Error(err))
		}
		runner.Start()
		defer runner.Stop()

		// One pass at startup so a bad seed surfaces immediately.
		if err := audit.RunOnce(ctx); err != nil {
			logger.Warn("startup reference audit failed", zap.Error(err))
		}
	}

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
