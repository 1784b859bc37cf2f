package main

import (
	_ "sparklean/docs"
	"sparklean/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Sparklean Estimates API
// @version         1.0
// @description     Estimate request intake, pricing and admin review for a residential cleaning service.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
