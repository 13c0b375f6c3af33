package routes

import (
	"os"
	"strings"

	"billing-backend/config"
	"billing-backend/controllers"
	"billing-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	origins := []string{"http://localhost:3000"}
	if env := os.Getenv("PANEL_ORIGINS"); env != "" {
		origins = strings.Split(env, ",")
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Service-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		api.GET("/credits", controllers.GetCredits)
		api.GET("/billing-info", controllers.GetBillingInfo)
		api.PATCH("/billing-info", controllers.UpdateBillingInfo)
		api.GET("/invoices", controllers.GetMyInvoices)
		api.GET("/invoices/:id", controllers.GetMyInvoice)

		admin := api.Group("/admin")
		admin.Use(utils.AdminMiddleware())
		{
			admin.GET("/users", controllers.GetUsers)

			credits := admin.Group("/users/:id/credits")
			{
				credits.POST("/add", controllers.AddUserCredits)
				credits.POST("/remove", controllers.RemoveUserCredits)
				credits.POST("/set", controllers.SetUserCredits)
			}

			admin.GET("/currency/settings", controllers.GetCurrencySettings)
			admin.PATCH("/currency/settings", controllers.UpdateCurrencySettings)
			admin.GET("/settings", controllers.GetSettings)
			admin.PATCH("/settings", controllers.UpdateSettings)

			invoices := admin.Group("/invoices")
			{
				invoices.POST("", controllers.CreateInvoice)
				invoices.GET("/:id", controllers.GetInvoice)
				invoices.PATCH("/:id", controllers.UpdateInvoice)
				invoices.DELETE("/:id", controllers.DeleteInvoice)
				invoices.POST("/:id/items", controllers.AddInvoiceItem)
				invoices.PATCH("/:id/items/:itemId", controllers.UpdateInvoiceItem)
				invoices.DELETE("/:id/items/:itemId", controllers.DeleteInvoiceItem)
			}
		}
	}

	return r
}
