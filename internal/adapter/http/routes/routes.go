package routes

import (
	"log"
	"strconv"

	_ "payments-service/docs" // swag-generated registration
	"payments-service/internal/adapter/http/handlers"
	adaptermessaging "payments-service/internal/adapter/messaging"
	"payments-service/internal/adapter/persistence/repository"
	"payments-service/internal/adapter/qr"
	"payments-service/internal/infrastructure/config"
	"payments-service/internal/infrastructure/database"
	inframessaging "payments-service/internal/infrastructure/messaging"
	"payments-service/internal/infrastructure/payments"
	"payments-service/internal/usecase"

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
	settings := config.Load()

	ddb := database.ConnectDynamoDB()
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, settings.PaymentsTable)

	gateway, err := payments.NewMercadoPagoGateway(settings)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	publisher := adaptermessaging.NewSNSPaymentClosedPublisher(inframessaging.ConnectSNS(), settings)

	findUseCase := usecase.NewFindPaymentByIDUseCase(paymentRepo)
	renderUseCase := usecase.NewRenderQRCodeUseCase(paymentRepo, qr.NewRenderer())
	finalizeUseCase := usecase.NewFinalizePaymentUseCase(paymentRepo, gateway, publisher)

	paymentHandler := handlers.NewPaymentHandler(findUseCase, renderUseCase, finalizeUseCase, settings.MercadoPagoWebhookKey)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
