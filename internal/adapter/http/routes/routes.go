package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "kaenpro_motors/docs" // swag-generated
	"kaenpro_motors/internal/adapter/http/handlers"
	repository2 "kaenpro_motors/internal/adapter/persistence/repository"
	"kaenpro_motors/internal/auth"
	"kaenpro_motors/internal/infrastructure/database"
	"kaenpro_motors/internal/infrastructure/payments"
	"kaenpro_motors/internal/usecase"
	"kaenpro_motors/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(logger)

	if err := router.Run(":" + strconv.Itoa(PORT)); err != nil {
		logger.Fatal("failed to startup the application", zap.Error(err))
	}
}

func getRoutes(logger *zap.Logger) {
	ddb := database.ConnectDynamoDB(logger)

	if err := database.EnsureTables(context.Background(), ddb, logger, repository2.AllTableNames()...); err != nil {
		logger.Fatal("failed to provision tables", zap.Error(err))
	}

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)
	partRepo := repository2.NewPartDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	orderUoW := repository2.NewServiceOrderDynamoUnitOfWork(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"), logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		paymentGateway = mpGateway
	}

	clientUseCase := usecase.NewClientUseCase(clientRepo, vehicleRepo, orderRepo, logger)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo, clientRepo, logger)
	partUseCase := usecase.NewPartUseCase(partRepo, logger)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, clientRepo, vehicleRepo, partRepo, orderUoW, logger)
	billingUseCase := usecase.NewBillingUseCase(orderRepo, paymentGateway, os.Getenv("SHOP_NAME"), logger)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)
	partHandler := handlers.NewPartHandler(partUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	billingHandler := handlers.NewBillingHandler(billingUseCase, orderUseCase, clientUseCase)

	verifier := auth.NewStaticVerifierFromEnv()
	authHandler := handlers.NewAuthHandler(verifier)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas protegidas
	protected := v1.Group("")
	protected.Use(auth.Middleware(verifier))
	addWorkshopRoutes(protected, clientHandler, vehicleHandler, partHandler, orderHandler)
	addBillingRoutes(protected, billingHandler)
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered))
		c.AbortWithStatus(500)
	}))
}
