package routes

import (
	"crm_senior/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients   = "/clients"
	PathBudgets   = "/budgets"
	PathDashboard = "/dashboard"
)

func addCRMRoutes(
	rg *gin.RouterGroup,
	clientHandler *handlers.ClientHandler,
	budgetHandler *handlers.BudgetHandler,
	reminderHandler *handlers.ReminderHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	clients := rg.Group(PathClients, requireCallerIdentity())
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:client_id", clientHandler.GetClient)
		clients.PATCH("/:client_id/status", clientHandler.UpdateClientStatus)
		clients.DELETE("/:client_id", clientHandler.DeleteClient)

		clients.GET("/:client_id/logs", clientHandler.ListClientLogs)
		clients.POST("/:client_id/logs", reminderHandler.CreateLog)
		clients.POST("/:client_id/reminders", reminderHandler.CreateReminder)
		clients.POST("/:client_id/reminders/test", reminderHandler.SendTestReminder)

		clients.POST("/:client_id/budgets", budgetHandler.CreateBudget)
	}

	budgets := rg.Group(PathBudgets, requireCallerIdentity())
	{
		budgets.GET("", budgetHandler.ListActiveBudgets)
		budgets.GET("/:budget_id", budgetHandler.GetBudget)
		budgets.PATCH("/:budget_id/status", budgetHandler.UpdateBudgetStatus)
		budgets.PATCH("/:budget_id/cancel", budgetHandler.CancelBudget)
		budgets.GET("/:budget_id/pdf", budgetHandler.ExportBudgetPDF)
	}

	rg.GET(PathDashboard, requireCallerIdentity(), dashboardHandler.GetDashboard)
}

func addCronRoutes(rg *gin.RouterGroup, sweepHandler *handlers.ReminderSweepHandler) {
	rg.GET("/cron/reminders", requireCronSecret(), sweepHandler.RunSweep)
}
