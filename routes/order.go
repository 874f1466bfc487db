package routes

import (
	orderControllers "github.com/amankuamr/swarg-swad/controllers/order"
	"github.com/amankuamr/swarg-swad/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		// websocket endpoint for real-time order updates
		orders.GET("/ws", orderControllers.OrderWebSocketHandler)

		// Spreadsheet export for the back office
		orders.GET("/export", middleware.ValidateAPIKey, orderControllers.ExportOrdersToExcel(db))

		// Orders for one user, or "all"
		orders.GET("/:userId", orderControllers.GetOrdersHandler(db))
	}
}
