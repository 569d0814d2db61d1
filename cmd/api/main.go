package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "frontdesk/api/swagger" // swagger docs
	"frontdesk/internal/config"
	"frontdesk/internal/database"
	"frontdesk/internal/datemath"
	"frontdesk/internal/events"
	"frontdesk/internal/handler"
	"frontdesk/internal/jobs"
	"frontdesk/internal/middleware"
	"frontdesk/internal/repository"
	"frontdesk/internal/service"
	"frontdesk/internal/websocket"
	"frontdesk/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Front Desk Pricing API
// @version         1.0
// @description     Hotel calendar arithmetic, stay validation, tax breakdowns and settlement snapshots.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	level := logger.ParseLevel(cfg.LogLevel)

	db, err := database.NewConnection(cfg.Database.DSN(), cfg.AutoMigrate)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Optional tax-rule cache
	var ruleCache repository.TaxRuleCache = repository.NoopTaxRuleCache{}
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Redis unreachable at %s, tax rules will be read from the database: %v", cfg.Redis.Addr, err)
		}
		cancel()
		ruleCache = repository.NewRedisTaxRuleCache(redisClient, cfg.Redis.TTL, logger.New("cache", level))
	}

	// Optional settlement events
	var publisher events.SettlementPublisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka, logger.New("events", level))
		log.Printf("Publishing settlements to %s", cfg.Kafka.SettlementTopic)
	}

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	clock := datemath.SystemClock{}

	// Set up dependencies (Repository -> Service -> Handler)
	txManager := repository.NewTransactionManager(db)
	taxRuleRepo := repository.NewTaxRuleRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	calendarService := service.NewCalendarService(cfg.HotelTimezone, clock)
	taxService := service.NewTaxService(taxRuleRepo, ruleCache, auditRepo, wsHub, logger.New("tax", level))
	stayService := service.NewStayService(taxService, snapshotRepo, cfg.HotelTimezone, clock)
	settlementService := service.NewSettlementService(snapshotRepo, auditRepo, txManager, taxService, publisher, wsHub, logger.New("settlement", level))
	auditService := service.NewAuditService(auditRepo)
	revenueService := service.NewRevenueService(revenueRepo, calendarService)

	// Initialize Handlers
	if err := handler.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}
	calendarHandler := handler.NewCalendarHandler(calendarService)
	stayHandler := handler.NewStayHandler(stayService)
	settlementHandler := handler.NewSettlementHandler(settlementService)
	taxHandler := handler.NewTaxHandler(taxService)
	auditHandler := handler.NewAuditHandler(auditService)
	statisticsHandler := handler.NewStatisticsHandler(revenueService)

	// Day rollover at hotel midnight
	scheduler := jobs.NewScheduler(cfg.HotelTimezone)
	rollover := jobs.NewDayRollover(cfg.HotelTimezone, clock, taxService, wsHub, logger.New("jobs", level))
	if err := jobs.Register(scheduler, rollover); err != nil {
		log.Fatalf("Failed to schedule day rollover: %v", err)
	}
	scheduler.Start()

	// Set up Gin Router
	router := gin.Default()
	router.Use(middleware.Metrics())

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"timezone": cfg.HotelTimezone,
			"today":    calendarService.Today().Today,
		})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, middleware.GetJWTSecret())
	})

	// API Routing
	calendarHandler.RegisterRoutes(router.Group(""))
	stayHandler.RegisterRoutes(router.Group(""))
	settlementHandler.RegisterRoutes(router.Group(""))
	taxHandler.RegisterRoutes(router.Group(""))
	auditHandler.RegisterRoutes(router.Group(""))
	statisticsHandler.RegisterRoutes(router.Group(""))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server listening on :%s (hotel timezone %s)", cfg.Port, cfg.HotelTimezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	<-scheduler.Stop().Done()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	if err := publisher.Close(); err != nil {
		log.Printf("Failed to close settlement publisher: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
