package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "peritaje_crm/docs" // swaggo generated spec
	"peritaje_crm/internal/adapter/http/handlers"
	"peritaje_crm/internal/adapter/http/middleware"
	"peritaje_crm/internal/adapter/persistence/repository"
	"peritaje_crm/internal/infrastructure/database"
	"peritaje_crm/internal/infrastructure/payments"
	"peritaje_crm/internal/usecase"
	"peritaje_crm/internal/usecase/interfaces"
	"peritaje_crm/pkg"

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
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, pkg.OK(gin.H{"message": "pong"}))
	})

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.NewDynamoDBClient()

	caseRepo := repository.NewCaseDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	workPlanRepo := repository.NewWorkPlanDynamoRepository(ddb)
	deliverableRepo := repository.NewDeliverableDynamoRepository(ddb)
	hearingRepo := repository.NewHearingDynamoRepository(ddb)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	commissionRepo := repository.NewCommissionDynamoRepository(ddb)
	evaluationRepo := repository.NewEvaluationDynamoRepository(ddb)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	adminConfigRepo := repository.NewAdminConfigDynamoRepository(ddb)
	settingRepo := repository.NewSettingDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		log.Printf("[routes] JWT_SECRET not set; using insecure dev secret")
		jwtSecret = []byte("dev-secret")
	}

	adminUseCase := usecase.NewAdminUseCase(adminConfigRepo, userRepo, jwtSecret)
	caseUseCase := usecase.NewCaseUseCase(caseRepo, userRepo, notificationRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	workPlanUseCase := usecase.NewWorkPlanUseCase(workPlanRepo)
	deliverableUseCase := usecase.NewDeliverableUseCase(deliverableRepo)
	hearingUseCase := usecase.NewHearingUseCase(hearingRepo)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, paymentGateway)
	commissionUseCase := usecase.NewCommissionUseCase(commissionRepo, evaluationRepo)
	evaluationUseCase := usecase.NewEvaluationUseCase(evaluationRepo)
	expertUseCase := usecase.NewExpertUseCase(userRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)
	reportUseCase := usecase.NewReportUseCase(caseRepo, paymentRepo, evaluationRepo)
	settingUseCase := usecase.NewSettingUseCase(settingRepo)

	adminHandler := handlers.NewAdminHandler(adminUseCase)
	caseHandler := handlers.NewCaseHandler(caseUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	workPlanHandler := handlers.NewWorkPlanHandler(workPlanUseCase)
	deliverableHandler := handlers.NewDeliverableHandler(deliverableUseCase)
	hearingHandler := handlers.NewHearingHandler(hearingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	commissionHandler := handlers.NewCommissionHandler(commissionUseCase)
	evaluationHandler := handlers.NewEvaluationHandler(evaluationUseCase)
	expertHandler := handlers.NewExpertHandler(expertUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	settingHandler := handlers.NewSettingHandler(settingUseCase)

	v1 := router.Group("/v1")
	addAuthRoutes(v1, adminHandler)

	secured := v1.Group("")
	secured.Use(middleware.RequireAuth(jwtSecret), middleware.RequirePermission())
	addAdminRoutes(secured, adminHandler)
	addCaseRoutes(secured, caseHandler, quoteHandler, workPlanHandler, deliverableHandler, hearingHandler, paymentHandler, evaluationHandler)
	addWorkflowRoutes(secured, quoteHandler, workPlanHandler, deliverableHandler)
	addOperationRoutes(secured, hearingHandler, paymentHandler, commissionHandler, expertHandler, notificationHandler, reportHandler, settingHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
