package routes

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/docs" // This will be auto-generated
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/http/handlers"
	repository "github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/persistence/repository"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/adapter/ws"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/config"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/infrastructure/ai"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/infrastructure/database"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/infrastructure/payments"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase"
	"github.com/rmillan960-Caja-Fuerte/Maestro-Ya/internal/usecase/interfaces"
)

// Run will start the server
func Run(cfg config.Config) {
	gin.SetMode(cfg.GinMode)
	router := gin.New()

	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	hub := ws.NewHub()
	go hub.Run()
	router.GET("/ws", func(c *gin.Context) {
		ws.ServeWs(hub, c)
	})

	getRoutes(router, cfg, hub)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to startup the application")
	}
}

func getRoutes(router *gin.Engine, cfg config.Config, hub *ws.Hub) {
	ddb := database.ConnectDynamoDB()

	srRepo := repository.NewServiceRequestDynamoRepository(ddb)
	quotationRepo := repository.NewQuotationDynamoRepository(ddb)
	clientRepo := repository.NewClientDynamoRepository(ddb)
	techRepo := repository.NewTechnicianDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	srUseCase := usecase.NewServiceRequestUseCase(srRepo, quotationRepo, clientRepo, cfg, hub)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo, srRepo, cfg, hub)
	assignmentUseCase := usecase.NewAssignmentUseCase(srRepo, techRepo, cfg, hub)
	clientUseCase := usecase.NewClientUseCase(clientRepo)
	techUseCase := usecase.NewTechnicianUseCase(techRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, quotationRepo, paymentGateway, srUseCase)
	messageUseCase := usecase.NewMessageUseCase(srRepo, clientRepo, ai.NewMessageGenerator(), cfg)

	srHandler := handlers.NewServiceRequestHandler(srUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)
	techHandler := handlers.NewTechnicianHandler(techUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	messageHandler := handlers.NewMessageHandler(messageUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRequestRoutes(v1, srHandler, quotationHandler, assignmentHandler, paymentHandler, messageHandler)
	addRegistryRoutes(v1, clientHandler, techHandler)
}

func setMiddlewares(router *gin.Engine, cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(500)
	}))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	router.Use(cors.New(corsCfg))
}
