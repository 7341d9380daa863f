package main

import (
	"context"
	"fmt"
	"log"

	"stall-booking-service/config"
	auth_handler "stall-booking-service/internal/module/auth/handler"
	auth_repositories "stall-booking-service/internal/module/auth/repositories"
	auth_usecases "stall-booking-service/internal/module/auth/usecases"
	booking_handler "stall-booking-service/internal/module/booking/handler"
	booking_repositories "stall-booking-service/internal/module/booking/repositories"
	booking_usecases "stall-booking-service/internal/module/booking/usecases"
	settings_handler "stall-booking-service/internal/module/settings/handler"
	settings_repositories "stall-booking-service/internal/module/settings/repositories"
	settings_usecases "stall-booking-service/internal/module/settings/usecases"
	"stall-booking-service/internal/pkg/database"
	"stall-booking-service/internal/pkg/http"
	"stall-booking-service/internal/pkg/httpclient"
	log_internal "stall-booking-service/internal/pkg/log"
	"stall-booking-service/internal/pkg/mailer"
	"stall-booking-service/internal/pkg/messagestream"
	"stall-booking-service/internal/pkg/middleware"
	"stall-booking-service/internal/pkg/redis"
	"stall-booking-service/internal/pkg/scheduler"
	router "stall-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {
	ctx := context.Background()

	// init database
	db := database.GetConnection(&cfg.Database)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Error(ctx, "failed to run migrations", err)
	}

	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	locker := redis.SetupRedsync(redisClient)

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "failed to create publisher", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	taskClient := sched.InitClient(&cfg.Redis)
	taskInspector := asynq.NewInspector(asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	mail := mailer.New(&cfg.Mailer)

	bookingRepo := booking_repositories.New(db, logger, httpClient, &cfg.MarketAPI, redisClient, locker, taskClient, taskInspector)
	bookingUsecase := booking_usecases.New(bookingRepo, logger, publisher, &cfg.App)

	authRepo := auth_repositories.New(db, logger, redisClient)
	authUsecase := auth_usecases.New(authRepo, logger, mail, &cfg.Jwt, &cfg.App, &cfg.Admin)

	settingsRepo := settings_repositories.New(db, logger)
	settingsUsecase := settings_usecases.New(settingsRepo, logger)

	if err := authUsecase.EnsureAdminUser(ctx); err != nil {
		logger.Error(ctx, "failed to ensure admin user", err)
	}

	m := &middleware.Middleware{
		Log: logZap,
		Cfg: &cfg.Jwt,
	}

	v := validator.New()
	bookingHandler := booking_handler.BookingHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   bookingUsecase,
		Publish:   publisher,
		Mailer:    mail,
	}
	authHandler := auth_handler.AuthHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   authUsecase,
	}
	settingsHandler := settings_handler.SettingsHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   settingsUsecase,
	}
	healthHandler := http.HealthHandler{
		DB:    db,
		Redis: redisClient,
		Cfg:   &cfg.App,
	}

	var messageRouters []*message.Router

	consumeBookingEventsRouter, err := messagestream.NewRouter(publisher, "booking_events_poisoned", "booking_events_handler", booking_usecases.TopicBookingEvents, subscriber, bookingHandler.ConsumeBookingEvents)
	if err != nil {
		logger.Error(ctx, "failed to create booking_events router", err)
	}

	messageRouters = append(messageRouters, consumeBookingEventsRouter)

	// payment expiry worker and its dashboard
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypePaymentExpired},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.SetPaymentExpired},
	)
	go sched.StartMonitoring(&cfg.Redis, cfg.HttpServer.MonitoringPort)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &authHandler, &settingsHandler, &healthHandler, m)

	return r, messageRouters
}
