package main

import (
	_ "kaenpro_motors/docs"
	"kaenpro_motors/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Kaenpro Motors API
// @version         1.0
// @description     Vehicle repair shop back office (service orders, inventory and collections) backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

// @securityDefinitions.basic BasicAuth

func main() {
	routes.Run()
}
