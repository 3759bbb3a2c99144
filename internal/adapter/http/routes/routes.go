package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "roofpro/docs" // This will be auto-generated
	"roofpro/internal/adapter/http/handlers"
	repository2 "roofpro/internal/adapter/persistence/repository"
	"roofpro/internal/domain/entities"
	"roofpro/internal/domain/pricing"
	"roofpro/internal/infrastructure/database"
	"roofpro/internal/infrastructure/payments"
	"roofpro/internal/usecase"
	"roofpro/internal/usecase/interfaces"

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

	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	paymentRepo := repository2.NewDepositPaymentDynamoRepository(ddb)

	engine := loadPricingEngine(catalogRepo)

	formulaUseCase := usecase.NewFormulaUseCase()
	estimateUseCase := usecase.NewEstimateUseCase(engine, estimateRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, estimateRepo, paymentGateway)

	formulaHandler := handlers.NewFormulaHandler(formulaUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	depositPaymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEstimatingRoutes(v1, formulaHandler, estimateHandler, depositPaymentHandler)
}

// loadPricingEngine snapshots the catalog tables at startup. Line items and
// macros are required; geographic pricing is optional and keyed by the
// PRICING_REGION env var.
func loadPricingEngine(catalogRepo interfaces.ICatalogRepository) *pricing.Engine {
	ctx := context.Background()

	items, err := catalogRepo.ListLineItems(ctx)
	if err != nil {
		log.Fatalf("Failed to load line item catalog: %v", err)
	}
	macros, err := catalogRepo.ListMacros(ctx)
	if err != nil {
		log.Fatalf("Failed to load macro catalog: %v", err)
	}
	log.Printf("[catalog] loaded line_items=%d macros=%d", len(items), len(macros))

	var geo *entities.GeographicPricing
	if region := os.Getenv("PRICING_REGION"); region != "" {
		g, err := catalogRepo.GetGeographicPricing(ctx, region)
		if err != nil {
			log.Fatalf("Failed to load geographic pricing for region %s: %v", region, err)
		}
		if g.Region != "" {
			log.Printf("[catalog] geographic pricing region=%s", g.Region)
			geo = &g
		} else {
			log.Printf("[catalog] no geographic pricing record for region=%s", region)
		}
	}

	return pricing.NewEngine(items, geo, macros)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
