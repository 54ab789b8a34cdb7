package main

import (
	_ "crm_senior/docs"
	"crm_senior/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CRM Senior API
// @version         1.0
// @description     CRM core (clients, budgets, reminders) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey UserID
// @in header
// @name X-User-ID
// @description Caller identity injected by the upstream auth layer.

func main() {
	routes.Run()
}
