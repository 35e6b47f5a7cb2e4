package config

import (
	"rental-service/src/internal/delivery/http"
	"rental-service/src/internal/delivery/http/middleware"
	"rental-service/src/internal/delivery/http/route"
	"rental-service/src/internal/delivery/worker"
	"rental-service/src/internal/gateway/messaging"
	"rental-service/src/internal/gateway/midtrans"
	"rental-service/src/internal/repository"
	"rental-service/src/internal/usecase"
	"rental-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "rental-service/src/pkg/kafka/confluent"
	"rental-service/src/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB          mysql.DBInterface
	App         *fiber.App
	Log         log.Log
	Validate    *validator.Validate
	Config      *viper.Viper
	Producer    kafkaPkgConfluent.Producer
	Redis       redis.UniversalClient
	Midtrans    midtrans.Gateway
	AsynqClient *asynq.Client
	Async       *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	bookingRepository := repository.NewBookingRepository(config.DB)
	vehicleRepository := repository.NewVehicleRepository(config.DB)
	userRepository := repository.NewUserRepository(config.DB)
	bookingProducer := messaging.NewBookingProducer(config.Producer, config.Log)

	// setup use cases
	bookingUseCase := usecase.NewBookingUseCase(
		config.Log,
		config.Validate,
		bookingRepository,
		vehicleRepository,
		config.Midtrans,
		bookingProducer,
		config.AsynqClient,
		config.Config,
	)
	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		bookingRepository,
		bookingProducer,
		config.Config,
	)
	vehicleUseCase := usecase.NewVehicleUseCase(
		config.Log,
		config.Validate,
		vehicleRepository,
		config.Redis,
	)
	userUseCase := usecase.NewUserUseCase(
		config.Log,
		config.Validate,
		userRepository,
	)

	// setup controllers
	bookingController := http.NewBookingController(bookingUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)
	vehicleController := http.NewVehicleController(vehicleUseCase, config.Log)
	userController := http.NewUserController(userUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.NewAuth(config.Config, config.Log)

	// setup background worker
	if config.Async != nil {
		bookingWorker := worker.NewBookingWorker(bookingUseCase, config.Log)
		bookingWorker.Register(config.Async)
	}

	routeConfig := route.RouteConfig{
		App:               config.App,
		Log:               config.Log,
		BookingController: bookingController,
		PaymentController: paymentController,
		VehicleController: vehicleController,
		UserController:    userController,
		AuthMiddleware:    authMiddleware,
	}
	routeConfig.Setup()
}
