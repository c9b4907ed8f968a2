package app

import (
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/velesk/theatre-booking/config"
	"github.com/velesk/theatre-booking/internal/cache"
	"github.com/velesk/theatre-booking/internal/database"
	"github.com/velesk/theatre-booking/internal/mq"
	"github.com/velesk/theatre-booking/internal/repository"
	"github.com/velesk/theatre-booking/internal/service/domain"
	"github.com/velesk/theatre-booking/internal/service/workflow"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	UserService         domain.UserService
	GenreService        domain.GenreService
	ActorService        domain.ActorService
	PlayService         domain.PlayService
	HallService         domain.HallService
	AvailabilityService domain.AvailabilityService
	PerformanceService  domain.PerformanceService
	BookingService      domain.BookingService

	BookingWorkflow      *workflow.BookingWorkflow
	NotificationWorkflow *workflow.NotificationWorkflow
}

func New(config *config.Config, db *gorm.DB, cache *cache.RedisCache, mqConn *amqp.Connection, logger *zap.Logger) *App {
	userRepo := repository.NewUserRepoGorm(db)
	genreRepo := repository.NewGenreRepoGorm(db)
	actorRepo := repository.NewActorRepoGorm(db)
	playRepo := repository.NewPlayRepoGorm(db)
	hallRepo := repository.NewHallRepoGorm(db)
	performanceRepo := repository.NewPerformanceRepoGorm(db)
	reservationRepo := repository.NewReservationRepoGorm(db)
	ticketRepo := repository.NewTicketRepoGorm(db)

	userService := domain.NewUserService(userRepo)
	genreService := domain.NewGenreService(genreRepo)
	actorService := domain.NewActorService(actorRepo)
	playService := domain.NewPlayService(db, playRepo, actorRepo, genreRepo, cache)
	hallService := domain.NewHallService(hallRepo)
	availabilityService := domain.NewAvailabilityService(performanceRepo, ticketRepo)
	performanceService := domain.NewPerformanceService(performanceRepo, playRepo, hallRepo, availabilityService, cache)
	bookingService := domain.NewBookingService(db, performanceRepo, reservationRepo, ticketRepo)

	bookingWorkflow := workflow.NewBookingWorkflow(bookingService, mqConn, logger)
	notificationWorkflow := workflow.NewNotificationWorkflow(logger)

	return &App{
		Config:               config,
		DB:                   db,
		Cache:                cache,
		Logger:               logger,
		MQConn:               mqConn,
		UserService:          userService,
		GenreService:         genreService,
		ActorService:         actorService,
		PlayService:          playService,
		HallService:          hallService,
		AvailabilityService:  availabilityService,
		PerformanceService:   performanceService,
		BookingService:       bookingService,
		BookingWorkflow:      bookingWorkflow,
		NotificationWorkflow: notificationWorkflow,
	}
}

func (app *App) Init() error {
	if err := database.Migrate(app.DB); err != nil {
		return err
	}

	if app.MQConn != nil {
		if err := mq.InitQueues(app.MQConn); err != nil {
			return err
		}
		if err := app.NotificationWorkflow.Start(app.MQConn); err != nil {
			return err
		}
	}

	return nil
}

func (app *App) Close() error {
	if err := app.Cache.Close(); err != nil {
		return err
	}
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
