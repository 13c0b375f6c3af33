package main

import (
	"fmt"
	"log"
	"os"

	"billing-backend/config"
	"billing-backend/models"
	"billing-backend/routes"
	"billing-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.UserBalance{},
		&models.BillingProfile{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Setting{},
	)
}

func main() {
	// Daily sweep that flips past-due invoices to overdue and sends reminders
	overdue := services.NewOverdueService(config.DB)
	overdue.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
