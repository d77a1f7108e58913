package routes

import (
	"log"
	"os"
	"strconv"

	_ "stitchworks/docs" // This will be auto-generated
	"stitchworks/internal/adapter/http/handlers"
	repository2 "stitchworks/internal/adapter/persistence/repository"
	"stitchworks/internal/events"
	"stitchworks/internal/infrastructure/database"
	"stitchworks/internal/infrastructure/payments"
	"stitchworks/internal/usecase"
	"stitchworks/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	paymentRepo := repository2.NewAdvancePaymentDynamoRepository(ddb)

	bus := events.NewBus()
	hub := events.NewHub(bus)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, clientRepo, bus)
	productUseCase := usecase.NewProductUseCase(productRepo, bus)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo, bus)
	clientUseCase := usecase.NewClientUseCase(clientRepo, bus)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	paymentUseCase := usecase.NewAdvancePaymentUseCase(paymentRepo, orderRepo, paymentGateway)
	reportUseCase := usecase.NewReportUseCase(orderRepo, productRepo, settingsRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, paymentHandler)
	addInventoryRoutes(v1, productHandler, materialHandler)
	addClientRoutes(v1, clientHandler)
	addSettingsRoutes(v1, settingsHandler, reportHandler)
	addEventRoutes(v1, hub)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
