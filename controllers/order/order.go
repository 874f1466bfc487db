package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetOrdersHandler returns order history, newest first, with the customer
// and line items embedded. The literal user id "all" returns every order.
// GET /orders/:userId
func GetOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDParam := c.Param("userId")
		if userIDParam == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
			return
		}

		query := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Item").
			Order("created_at DESC")

		if userIDParam != "all" {
			userID, err := strconv.ParseUint(userIDParam, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
				return
			}
			query = query.Where("user_id = ?", uint(userID))
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
