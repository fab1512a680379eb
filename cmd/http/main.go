package main

import (
	"context"
	"docpoint-service/internal/app/config"
	"docpoint-service/internal/app/delivery/http/middlewares"
	"docpoint-service/internal/app/delivery/http/routers"
	"docpoint-service/internal/app/drivers/database"
	"docpoint-service/internal/app/drivers/logger"
	"docpoint-service/internal/app/drivers/messaging"
	"docpoint-service/internal/app/drivers/storage"
	"docpoint-service/internal/app/services/core/auth"
	"docpoint-service/internal/app/services/core/devices"
	"docpoint-service/internal/app/services/core/doctors"
	"docpoint-service/internal/app/services/core/notifications"
	"docpoint-service/internal/app/services/core/rating"
	"docpoint-service/internal/app/services/core/users"
	"docpoint-service/internal/app/services/shared/push"
	"docpoint-service/internal/app/services/shared/redis"
	minioStorage "docpoint-service/internal/app/services/shared/storage"
	"log"
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

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()
	requestLogger := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)

	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		RequestLogger:  requestLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests to finish before shutting down")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	zapLogger.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)
	pushQueue, err := push.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.Push.QueueName)
	if err != nil {
		log.Fatalf("Failed to set up push dispatch queue: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, redisRepository, bootstrap.InternalConfig)
	bootstrap.Router.Use(appMiddlewares.RequestLogger(bootstrap.InternalConfig.App, bootstrap.RequestLogger))

	// Doctor
	doctorMongoRepository := doctors.NewDoctorMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	doctorUsecase := doctors.NewDoctorUsecase(doctorMongoRepository, objectStorage, bootstrap.DriverConfig)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Rating
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	ratingUsecase := rating.NewRatingUsecase(bootstrap.Logger, doctorMongoRepository, userMongoRepository)
	ratingController := rating.NewRatingController(bootstrap.Logger, ratingUsecase)

	// Device
	deviceTokenMongoRepository := devices.NewDeviceTokenMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	deviceUsecase := devices.NewDeviceUsecase(deviceTokenMongoRepository)
	deviceController := devices.NewDeviceController(bootstrap.Logger, deviceUsecase)

	// Auth
	adminMongoRepository := auth.NewAdminMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	authUsecase := auth.NewAuthUsecase(adminMongoRepository, redisRepository, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	// Notification
	notificationUsecase := notifications.NewNotificationUsecase(deviceTokenMongoRepository, pushQueue, bootstrap.InternalConfig)
	notificationController := notifications.NewNotificationController(bootstrap.Logger, notificationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		doctorController,
		ratingController,
		deviceController,
		authController,
		notificationController,
	)
}
