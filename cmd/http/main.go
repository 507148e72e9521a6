package main

import (
	"context"
	"mediplant-service/internal/app/config"
	"mediplant-service/internal/app/delivery/http/middlewares"
	"mediplant-service/internal/app/delivery/http/routers"
	"mediplant-service/internal/app/drivers/database"
	"mediplant-service/internal/app/drivers/logger"
	"mediplant-service/internal/app/drivers/messaging"
	driverstorage "mediplant-service/internal/app/drivers/storage"
	"mediplant-service/internal/app/services/core/appointments"
	"mediplant-service/internal/app/services/core/cart"
	"mediplant-service/internal/app/services/core/catalog"
	"mediplant-service/internal/app/services/core/checkout"
	"mediplant-service/internal/app/services/core/registrations"
	recordappointments "mediplant-service/internal/app/services/recordstore/appointments"
	recordpatients "mediplant-service/internal/app/services/recordstore/patients"
	"mediplant-service/internal/app/services/shared/locker"
	"mediplant-service/internal/app/services/shared/notificationqueue"
	paymentgateway "mediplant-service/internal/app/services/shared/payment_gateway"
	"mediplant-service/internal/app/services/shared/ratelimiter"
	"mediplant-service/internal/app/services/shared/redis"
	"mediplant-service/internal/app/services/shared/storage"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logrusLog := logger.NewLogrusLogger(internalConfig)
	zapLog := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrusLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLog,
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
			logrusLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrusLog.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrusLog.Printf("Error while closing connections: %v", err)
	}

	logrusLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, bootstrap.Logger)

	// Messaging
	notificationQueue, err := notificationqueue.NewNotificationQueueService(
		bootstrap.RabbitMQ,
		bootstrap.Logger,
		bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
	)
	if err != nil {
		logrus.Fatalf("Failed to initialize notification queue: %v", err)
	}

	// Object storage
	minioClient := driverstorage.NewMinio(bootstrap.DriverConfig)
	minioStorage := storage.NewMinioStorage(minioClient)

	// Record store clients
	recordStoreTimeout := time.Duration(bootstrap.InternalConfig.RecordStore.TimeoutInSeconds) * time.Second
	patientStoreClient := recordpatients.NewPatientStoreClient(
		bootstrap.InternalConfig.RecordStore.BaseUrl,
		recordStoreTimeout,
		bootstrap.Logger,
	)
	appointmentStoreClient := recordappointments.NewAppointmentStoreClient(
		bootstrap.InternalConfig.RecordStore.BaseUrl,
		recordStoreTimeout,
		bootstrap.Logger,
	)

	// Payment gateway
	gatewayService := paymentgateway.NewGatewayService(bootstrap.InternalConfig, bootstrap.Logger)

	// Middlewares
	middlewareInstance := &middlewares.Middlewares{
		Log:                 bootstrap.Logger,
		InternalConfig:      bootstrap.InternalConfig,
		ResourceLimiter:     resourceLimiter,
		RegistrationLimiter: middlewares.NewRateLimiter(5, time.Second, 5*time.Minute),
	}

	// Catalog
	productRepository := catalog.NewProductMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	doctorRepository := catalog.NewDoctorMongoRepository(bootstrap.MongoClient, bootstrap.DriverConfig.MongoDB.DbName)
	catalogUsecase := catalog.NewCatalogUsecase(productRepository, doctorRepository, minioStorage, bootstrap.InternalConfig, bootstrap.Logger)
	catalogController := catalog.NewCatalogController(bootstrap.Logger, catalogUsecase)

	// Cart
	cartRepository := cart.NewCartRedisRepository(redisRepository, bootstrap.InternalConfig)
	cartUsecase := cart.NewCartUsecase(cartRepository, productRepository, lockService, bootstrap.InternalConfig, bootstrap.Logger)
	cartController := cart.NewCartController(bootstrap.Logger, cartUsecase)

	// Checkout
	checkoutSessionRepository := checkout.NewCheckoutSessionRedisRepository(redisRepository, bootstrap.InternalConfig)
	checkoutUsecase := checkout.NewCheckoutUsecase(checkoutSessionRepository, cartRepository, gatewayService, notificationQueue, bootstrap.InternalConfig, bootstrap.Logger)
	checkoutController := checkout.NewCheckoutController(bootstrap.Logger, checkoutUsecase)

	// Appointments
	appointmentUsecase := appointments.NewAppointmentUsecase(appointmentStoreClient, doctorRepository, bootstrap.Logger)
	appointmentController := appointments.NewAppointmentController(bootstrap.Logger, appointmentUsecase)

	// Registrations
	registrationUsecase := registrations.NewRegistrationUsecase(patientStoreClient, appointmentStoreClient, doctorRepository, notificationQueue, bootstrap.InternalConfig, bootstrap.Logger)
	registrationController := registrations.NewRegistrationController(bootstrap.Logger, registrationUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		catalogController,
		cartController,
		checkoutController,
		appointmentController,
		registrationController,
	)
}
