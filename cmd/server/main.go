package main

import (
	"os"

	"github.com/gin-gonic/gin"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/velesk/theatre-booking/config"
	"github.com/velesk/theatre-booking/internal/app"
	"github.com/velesk/theatre-booking/internal/cache"
	"github.com/velesk/theatre-booking/internal/database"
	"github.com/velesk/theatre-booking/internal/handler"
	"github.com/velesk/theatre-booking/internal/mq"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := database.Open(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	redisCache, err := cache.NewRedisCache(cfg.CacheURL)
	if err != nil {
		logger.Fatal("failed to connect to cache", zap.Error(err))
	}

	// The broker is optional: without it bookings still work, only the
	// confirmation messages are skipped.
	var mqConn *amqp.Connection
	if cfg.MQURL != "" {
		mqConn, err = mq.NewMQConn(cfg.MQURL)
		if err != nil {
			logger.Fatal("failed to connect to message broker", zap.Error(err))
		}
	}

	application := app.New(cfg, db, redisCache, mqConn, logger)
	if err := application.Init(); err != nil {
		logger.Fatal("failed to init app", zap.Error(err))
	}
	defer application.Close()

	engine := gin.New()
	engine.Use(gin.Recovery(), handler.RequestLogger(logger))

	handlers := handler.Handlers{
		Auth:         handler.NewAuthHandler(application.UserService, cfg.JWTSecret),
		Genres:       handler.NewGenreHandler(application.GenreService),
		Actors:       handler.NewActorHandler(application.ActorService, cfg.UploadDir),
		Plays:        handler.NewPlayHandler(application.PlayService, cfg.UploadDir),
		Halls:        handler.NewHallHandler(application.HallService),
		Performances: handler.NewPerformanceHandler(application.PerformanceService, application.AvailabilityService),
		Reservations: handler.NewReservationHandler(application.BookingWorkflow, application.BookingService),
	}
	handler.RegisterRoutes(engine, handlers, cfg.JWTSecret)

	logger.Info("server starting", zap.String("addr", cfg.Addr))
	if err := engine.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
