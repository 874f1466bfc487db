package menuControllers

import (
	"net/http"

	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /categories
func GetCategoriesWithItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Items").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
