package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/777sanket/LinkManager-Backend/config"
	"github.com/777sanket/LinkManager-Backend/model"
	"github.com/777sanket/LinkManager-Backend/repo"
	"github.com/777sanket/LinkManager-Backend/shared"
	"github.com/777sanket/LinkManager-Backend/shared/db"
	"github.com/777sanket/LinkManager-Backend/tracker"
)

var (
	cfg    *config.Config
	logger *shared.Logger
	tracer *shared.Tracer

	metrics          *shared.Metrics
	requestPerSecond *prometheus.CounterVec
	redirectDuration *prometheus.HistogramVec
	TwoXXStatusCode  *prometheus.GaugeVec
	FourXXStatusCode *prometheus.GaugeVec
	FiveXXStatusCode *prometheus.GaugeVec

	database *db.PostgresDB
	cache    *shared.CacheClient
	rabbitmq *shared.RabbitMQ

	users       *repo.UserRepo
	links       *repo.LinkRepo
	analysis    *repo.AnalysisRepo
	cachedLinks *repo.CachedLinkStore

	recorder   *tracker.Recorder
	aggregator *tracker.Aggregator
)

func metricsHandler(c *fiber.Ctx) error {
	out, err := metrics.GetPrometheusMetrics()
	if err != nil {
		return c.Status(500).SendString("Failed to collect metrics")
	}
	return c.Type("text/plain").SendString(out)
}

func onGracefulShutDown() {
	logger.Info("Shutting down...")
	_ = tracer.Shutdown(context.Background())
	_ = rabbitmq.Close()
	_ = cache.Close()
	_ = database.Close()
}

func main() {
	cfg = config.Load()

	logger = shared.NewLogger(cfg.LogFile, cfg.LogMaxAge, cfg.LogMaxMB, "linkmanager")

	database = db.NewPostgresDB(cfg.PostgresDSN)
	if err := database.Init(); err != nil {
		logger.Fatal("CannotConnectPostgres", zap.Error(err))
	}
	if err := database.Migrate(&model.User{}, &model.Link{}, &model.ClickEvent{}); err != nil {
		logger.Fatal("CannotMigrate", zap.Error(err))
	}

	cache = shared.NewCacheClient(&shared.CacheConfig{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
	})
	if err := cache.Connect(context.Background()); err != nil {
		logger.Fatal("CannotConnectRedis", zap.Error(err))
	}

	rabbitmq = shared.NewRabbitMQ(cfg.RabbitURL)
	if err := rabbitmq.Connect(5 * time.Second); err != nil {
		logger.Fatal("CannotConnectRabbitMQ", zap.Error(err))
	}

	metrics = shared.NewMetrics()
	requestPerSecond = metrics.RegisterCounter("request_per_second", "Request per second", []string{"method", "path"})
	redirectDuration = metrics.RegisterHistogram("redirect_duration_seconds", "Redirect latency", []string{"outcome"},
		[]float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1})
	TwoXXStatusCode = metrics.RegisterGauge("status_code_2xx", "2xx status code", []string{"method", "path", "code"})
	FourXXStatusCode = metrics.RegisterGauge("status_code_4xx", "4xx status code", []string{"method", "path", "code"})
	FiveXXStatusCode = metrics.RegisterGauge("status_code_5xx", "5xx status code", []string{"method", "path", "code"})

	tracer = shared.NewTracer("linkmanager")

	users = repo.NewUserRepo(database)
	links = repo.NewLinkRepo(database)
	analysis = repo.NewAnalysisRepo(database)
	cachedLinks = repo.NewCachedLinkStore(links, cache)

	recorder = tracker.NewRecorder(cachedLinks, analysis)
	aggregator = tracker.NewAggregator(analysis, cfg.AnalyticsZone, cfg.DateWindow)

	if err := startClickConsumer(); err != nil {
		logger.Fatal("CannotStartClickConsumer", zap.Error(err))
	}

	logger.Info("Init done!!!")

	service := shared.NewHttpService("linkmanager", cfg.Port)
	service.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	service.Use(RequestCounterMiddleware)
	service.Use(ResponseStatusCodeMiddleware)

	service.Routes("/api/user/register", registerHandler, "POST")
	service.Routes("/api/user/login", loginHandler, "POST")
	service.Routes("/api/user/logout", logoutHandler, "POST")
	service.AuthRoutes("/api/user/", AuthMiddleware, getUserHandler, "GET")
	service.AuthRoutes("/api/user/edit", AuthMiddleware, editUserHandler, "PUT")
	service.AuthRoutes("/api/user/delete", AuthMiddleware, deleteUserHandler, "DELETE")

	service.AuthRoutes("/api/links/create", AuthMiddleware, createLinkHandler, "POST")
	service.AuthRoutes("/api/links/", AuthMiddleware, listLinksHandler, "GET")
	service.AuthRoutes("/api/links/edit/:id", AuthMiddleware, editLinkHandler, "PUT")
	service.AuthRoutes("/api/links/:id", AuthMiddleware, deleteLinkHandler, "DELETE")

	service.AuthRoutes("/all/links", AuthMiddleware, allClickEventsHandler, "GET")
	service.AuthRoutes("/clicks/total-clicks", AuthMiddleware, totalClicksHandler, "GET")
	service.AuthRoutes("/date/date-wise-clicks", AuthMiddleware, dateWiseClicksHandler, "GET")
	service.AuthRoutes("/device/device-wise-clicks", AuthMiddleware, deviceWiseClicksHandler, "GET")

	service.Routes("/metrics", metricsHandler, "GET")

	// keep last so it cannot shadow the fixed routes above
	service.Routes("/:shortCode", redirectHandler, "GET")

	if err := service.Start(onGracefulShutDown); err != nil {
		logger.Fatal("ServerStopped", zap.Error(err))
	}
}
