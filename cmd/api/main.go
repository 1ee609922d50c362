package main

import (
	_ "payments-service/docs"
	"payments-service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payments Service API
// @version         1.0
// @description     QR-code payment service (Mercado Pago dynamic QR orders) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
