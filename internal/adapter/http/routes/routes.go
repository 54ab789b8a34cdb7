package routes

import (
	"log"
	"os"
	"strconv"

	_ "crm_senior/docs" // This will be auto-generated
	"crm_senior/internal/adapter/http/handlers"
	repository2 "crm_senior/internal/adapter/persistence/repository"
	"crm_senior/internal/infrastructure/database"
	"crm_senior/internal/infrastructure/documents"
	"crm_senior/internal/infrastructure/mail"
	"crm_senior/internal/usecase"
	"crm_senior/internal/usecase/interfaces"

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

	clientRepo := repository2.NewClientDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	logRepo := repository2.NewLogEntryDynamoRepository(ddb)
	reminderRepo := repository2.NewReminderDynamoRepository(ddb)
	userRepo := repository2.NewUserDynamoRepository(ddb)

	var sender interfaces.INotificationSender
	resendSender, err := mail.NewResendSender(os.Getenv("RESEND_API_KEY"))
	if err != nil {
		log.Printf("Resend sender not configured: %v", err)
	} else {
		sender = resendSender
	}

	strictTransitions := isEnabled(os.Getenv("STRICT_BUDGET_TRANSITIONS"))

	clientUseCase := usecase.NewClientUseCase(clientRepo, budgetRepo, logRepo, reminderRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, clientRepo, logRepo, userRepo, strictTransitions)
	reminderUseCase := usecase.NewReminderUseCase(reminderRepo, clientRepo, logRepo, userRepo, sender)
	sweepUseCase := usecase.NewReminderSweepUseCase(reminderRepo, clientRepo, userRepo, sender)
	dashboardUseCase := usecase.NewDashboardUseCase(clientRepo, budgetRepo, logRepo)

	clientHandler := handlers.NewClientHandler(clientUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, documents.NewBudgetPDFRenderer())
	reminderHandler := handlers.NewReminderHandler(reminderUseCase)
	sweepHandler := handlers.NewReminderSweepHandler(sweepUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCronRoutes(v1, sweepHandler)
	addCRMRoutes(v1, clientHandler, budgetHandler, reminderHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isEnabled(v string) bool {
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
