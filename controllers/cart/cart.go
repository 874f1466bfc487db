package cartControllers

import (
	"net/http"
	"time"

	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartItemInput struct {
	ItemID   uint `json:"itemId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type RemoveCartItemInput struct {
	ItemID uint `json:"itemId" binding:"required"`
}

// GET /cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		cartItems := []models.CartItem{}
		if err := db.Preload("Item").Where("session_id = ?", sessionID).Find(&cartItems).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cartItems)
	}
}

// AddCartItem merges a quantity into the session's cart line for the item.
// The insert-or-increment runs as one statement against the unique
// (session_id, item_id) index, so two concurrent adds for the same pair
// cannot produce two rows.
// POST /cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var item models.Item
		if err := db.First(&item, input.ItemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate item"})
			return
		}

		line := models.CartItem{
			SessionID: sessionID,
			ItemID:    item.ID,
			Quantity:  input.Quantity,
			AddedAt:   time.Now(),
		}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + excluded.quantity"),
				"added_at": line.AddedAt,
			}),
		}).Create(&line).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// RemoveCartItem deletes the session's cart line for the item. Removing a
// line that does not exist still succeeds.
// DELETE /cart
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		var input RemoveCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := db.Where("session_id = ? AND item_id = ?", sessionID, input.ItemID).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item from cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// ClearCart deletes every cart line for the session at the store level.
// DELETE /cart/clear
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetString("session_id")

		if err := db.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
