package menuControllers

import (
	"net/http"
	"strconv"

	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetItems returns the whole menu, newest first, with each item's
// category embedded.
// GET /items
func GetItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Item
		if err := db.Preload("Category").Order("created_at DESC").Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// GetItemsByCategory returns the items of a single category.
// GET /items/:categoryId
func GetItemsByCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryIDParam := c.Param("categoryId")
		categoryID, err := strconv.ParseUint(categoryIDParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		var items []models.Item
		if err := db.Where("category_id = ?", uint(categoryID)).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
