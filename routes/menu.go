package routes

import (
	menuControllers "github.com/amankuamr/swarg-swad/controllers/menu"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupMenuRoutes(r *gin.Engine, db *gorm.DB) {
	// Categories with their items nested
	r.GET("/categories", menuControllers.GetCategoriesWithItems(db))

	// Full menu, newest first
	r.GET("/items", menuControllers.GetItems(db))

	// Items of one category
	r.GET("/items/:categoryId", menuControllers.GetItemsByCategory(db))
}
