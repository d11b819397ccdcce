// File: dentalcare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dentalcare/config"
	"dentalcare/cron"
	"dentalcare/database"
	bookingRepo "dentalcare/database/repository/booking"
	doctorRepo "dentalcare/database/repository/doctor"
	paymentRepo "dentalcare/database/repository/payment"
	treatmentRepo "dentalcare/database/repository/treatment"
	userRepo "dentalcare/database/repository/user"
	"dentalcare/handlers"
	"dentalcare/middleware"
	"dentalcare/routes"
	"dentalcare/services/availability"
	"dentalcare/services/booking"
	"dentalcare/services/catalog"
	"dentalcare/services/doctor"
	"dentalcare/services/payment"
	"dentalcare/services/tasks"
	"dentalcare/services/user"
	"dentalcare/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.InitializeLogger(cfg.IsProduction(), cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	db, err := database.Open(rootCtx, cfg.DatabaseURL, cfg.DatabaseName)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(ctx); err != nil {
			logger.Warn("main: failed to close MongoDB client", zap.Error(err))
		}
	}()

	// The availability cache is optional; without Redis every request reads Mongo.
	var cache availability.SnapshotCache
	var redisClients []*redis.Client
	if cfg.AvailabilityCacheTTL > 0 {
		rdb, err := utils.NewRedisClient(rootCtx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
		if err != nil {
			logger.Warn("main: availability cache disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			redisClients = append(redisClients, rdb)
			cache = availability.NewRedisSnapshotCache(rdb, cfg.AvailabilityCacheTTL, logger)
		}
	}

	// repositories.
	treatments := treatmentRepo.NewMongoTreatmentRepo(db)
	bookings, err := bookingRepo.NewMongoBookingRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: booking storage unavailable: %v", err)
	}
	users := userRepo.NewMongoUserRepo(db)
	doctors := doctorRepo.NewMongoDoctorRepo(db)
	payments := paymentRepo.NewMongoPaymentRepo(db)

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Treatments: treatments,
		Bookings:   bookings,
		Cache:      cache,
		Logger:     logger,
	}

	catalogService := &catalog.DefaultCatalogService{
		Repo:         treatments,
		Availability: availabilityService,
		Logger:       logger,
	}
	if cfg.CatalogSeedFile != "" {
		seed, err := catalog.LoadSeedFile(cfg.CatalogSeedFile)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to read catalog seed: %v", err)
		}
		if err := catalogService.Seed(rootCtx, seed); err != nil {
			logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
		}
	}

	bookingService := &booking.DefaultBookingService{
		Bookings:     bookings,
		Treatments:   treatments,
		Payments:     payments,
		Availability: availabilityService,
		Dates:        utils.DateValidator{Strict: cfg.StrictDates, Layouts: cfg.Layouts()},
		Logger:       logger,
	}

	var worker *cron.ReminderWorker
	if cfg.RemindersEnabled {
		redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
		queue := asynq.NewClient(redisOpt)
		defer queue.Close()
		bookingService.Reminders = &tasks.ReminderScheduler{
			Queue:       queue,
			DateLayouts: cfg.Layouts(),
			Lead:        cfg.ReminderLead,
			Logger:      logger,
		}
		worker = cron.NewReminderWorker(redisOpt, logger)
		if err := worker.Start(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
	}

	tokens := utils.NewTokenIssuer(cfg.AccessTokenSecret, cfg.TokenTTL)
	userService := &user.DefaultUserService{Repo: users, Tokens: tokens, Logger: logger}
	doctorService := &doctor.DefaultDoctorService{Repo: doctors, Logger: logger}
	gateway := payment.NewStripeGateway(cfg.StripeKey, cfg.PaymentCurrency, nil, logger)

	health := utils.NewHealthMonitor(db, redisClients...)
	health.Start(rootCtx, time.Minute)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens: tokens,
		Roles:  userService,
		Health: health,

		Treatments: handlers.NewTreatmentHandler(catalogService, availabilityService, bookingService.Dates, logger),
		Bookings:   handlers.NewBookingHandler(bookingService, logger),
		Payments:   handlers.NewPaymentHandler(gateway, logger),
		Users:      handlers.NewUserHandler(userService, logger),
		Doctors:    handlers.NewDoctorHandler(doctorService, logger),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, cfg.Origins())

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}
	stop()

	logger.Sugar().Info("main: server stopped gracefully")
}
