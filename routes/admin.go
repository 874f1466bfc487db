package routes

import (
	adminController "github.com/amankuamr/swarg-swad/controllers/admin"
	menuControllers "github.com/amankuamr/swarg-swad/controllers/menu"
	"github.com/amankuamr/swarg-swad/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all write paths behind the API key.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	// Item creation lives on the public /items path but is key-protected
	r.POST("/items", middleware.ValidateAPIKey, menuControllers.CreateItem(db))

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.POST("/seed", adminController.SeedMenu(db))
	}
}
