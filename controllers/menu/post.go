package menuControllers

import (
	"net/http"

	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateItemInput struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Image       string  `json:"image"`
	CategoryID  uint    `json:"categoryId" binding:"required"`
}

// CreateItem adds a menu item. The category must already exist; nothing is
// written when it doesn't.
// POST /items
func CreateItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price, and categoryId are required: " + err.Error()})
			return
		}

		var category models.Category
		if err := db.First(&category, input.CategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate category"})
			return
		}

		item := models.Item{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Image:       input.Image,
			CategoryID:  input.CategoryID,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create item"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "item": item})
	}
}
