package main

import (
	_ "mecanica_workflow/docs"
	"mecanica_workflow/internal/adapter/http/routes"
	"mecanica_workflow/internal/logger"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Workflow Service API
// @version         1.0
// @description     Estimate review and work authorization workflow backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Caller identity asserted by the upstream gateway.

func main() {
	logger.Initialize(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	routes.Run()
}
