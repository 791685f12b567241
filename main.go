package main

import (
	"context"
	"net/http"
	"time"

	"github.com/veralabs/intentswap/src/config"
	"github.com/veralabs/intentswap/src/logger"

	"github.com/veralabs/intentswap/src/Infrastructure/oneclick"
	assetsHD "github.com/veralabs/intentswap/src/assets/delivery/http"
	assets "github.com/veralabs/intentswap/src/assets/usecase"
	cronRepo "github.com/veralabs/intentswap/src/cron/repository"
	cronUC "github.com/veralabs/intentswap/src/cron/usecase"
	swapAdapterIntent "github.com/veralabs/intentswap/src/intent/adapter/swap"
	intentHD "github.com/veralabs/intentswap/src/intent/delivery/http"
	intent "github.com/veralabs/intentswap/src/intent/usecase"
	assetsAdapter "github.com/veralabs/intentswap/src/swap/adapter/assets"
	cronAdapter "github.com/veralabs/intentswap/src/swap/adapter/cron"
	swapHD "github.com/veralabs/intentswap/src/swap/delivery/http"
	swapRepo "github.com/veralabs/intentswap/src/swap/repository"
	swap "github.com/veralabs/intentswap/src/swap/usecase"

	_ "github.com/veralabs/intentswap/docs" // Swagger docs

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func main() {
	cfg := config.LoadFromEnv()
	logg := logger.New(cfg.Env)

	// --- Database connection ---
	logg.Infof("Connecting to database")

	gormDB, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		logg.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logg.Fatalf("Failed to get generic DB handle: %v", err)
	}
	defer sqlDB.Close()

	// Connection pool tuning
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	// --- Infrastructure ---
	oneclickClient, err := oneclick.NewClient(cfg.OneClick.BaseURL,
		oneclick.WithJWT(cfg.OneClick.JWT),
		oneclick.WithLogger(logg.Zerolog()),
	)
	if err != nil {
		logg.Fatalf("Failed to build oneclick client: %v", err)
	}

	// --- Dependencies ---
	swapRepository := swapRepo.NewPostgresSwapRepo(gormDB, logg)
	cronRepository := cronRepo.NewCronRepo(gormDB, logg)

	assetsSvc := assets.NewService(logg)
	swapSvc := swap.NewService(
		swapRepository,
		swapRepository,
		oneclickClient,
		assetsAdapter.NewAssetPort(assetsSvc),
		logg,
		cfg.Quote,
	)
	tracker := swap.NewTracker(swapSvc, cfg.Tracking, logg)

	intentSvc := intent.NewService(logg)
	if err := intentSvc.SetAdapters(context.Background(), swapAdapterIntent.NewSwapPort(swapSvc)); err != nil {
		logg.Fatalf("Failed to wire intent adapters: %v", err)
	}

	cronSvc := cronUC.NewService(cronRepository, logg)

	intentHandler := intentHD.NewHandler(intentSvc, logg)
	swapHandler := swapHD.NewHandler(swapSvc, tracker, logg)
	assetsHandler := assetsHD.NewHandler(assetsSvc, logg)

	// --- Background sweeps ---
	c := cron.New()
	swap.NewCronService(c, swapSvc, cronAdapter.NewCronPort(cronSvc))
	c.Start()
	defer c.Stop()

	// --- Router ---
	r := gin.New()

	// Core middleware
	r.Use(gin.Recovery())
	r.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logg.Infof("%s %s status:%d duration:%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	})

	// --- Healthcheck ---
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Swagger ---
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// --- API routes ---
	intentHandler.RegisterRoutes(r)
	swapHandler.RegisterRoutes(r)
	assetsHandler.RegisterRoutes(r)

	// --- Start server ---
	logg.Infof("Starting service on %s (env=%s)", cfg.ListenAddr, cfg.Env)
	logg.Infof("Swagger UI available at http://localhost%s/swagger/index.html", cfg.ListenAddr)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Fatalf("Server terminated unexpectedly: %v", err)
	}
}
