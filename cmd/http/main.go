package main

import (
	"context"
	"hospital-portal-service/internal/app/config"
	"hospital-portal-service/internal/app/delivery/http/middlewares"
	"hospital-portal-service/internal/app/delivery/http/routers"
	"hospital-portal-service/internal/app/drivers/database"
	"hospital-portal-service/internal/app/drivers/logger"
	"hospital-portal-service/internal/app/services/core/health"
	"hospital-portal-service/internal/app/services/core/registrations"
	"hospital-portal-service/internal/app/services/shared/documentstore"
	"hospital-portal-service/internal/app/services/shared/ratelimiter"
	redisrepo "hospital-portal-service/internal/app/services/shared/redis"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Sugar().Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	// Both connections may come back nil; the service still boots and
	// reports the degradation through /test and per-request errors.
	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that were already received to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Sugar().Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Sugar().Errorf("Error while releasing resources: %v", err)
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Submission limiter, only when Redis is up
	var submissionLimiter *ratelimiter.SubmissionLimiter
	if bootstrap.Redis != nil {
		redisRepository := redisrepo.NewRedisRepository(bootstrap.Redis)
		submissionLimiter = ratelimiter.NewSubmissionLimiter(redisRepository, bootstrap.Logger)
	}

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig, submissionLimiter)

	// Document store
	documentStore := documentstore.NewMongoStore(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)

	// Registration
	registrationRepository := registrations.NewRegistrationStoreRepository(documentStore)
	registrationUsecase := registrations.NewRegistrationUsecase(registrationRepository)
	registrationController := registrations.NewRegistrationController(bootstrap.Logger, registrationUsecase, bootstrap.InternalConfig)

	// Health
	healthController := health.NewHealthController(bootstrap.Logger, bootstrap.MongoDB, bootstrap.DriverConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, healthController, registrationController)
}
