package orderControllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

var ErrEmptyCart = errors.New("cart is empty")

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// Checkout turns the session's cart into a persisted Order. User, Order and
// OrderItem creation plus the cart clear run in a single transaction; a
// failure at any step persists nothing. Line prices and the total come from
// the catalog rows read here, never from the client.
func Checkout(db *gorm.DB, sessionID string, req CheckoutRequest) (*models.Order, error) {
	var cartItems []models.CartItem
	if err := db.Preload("Item").Where("session_id = ?", sessionID).Find(&cartItems).Error; err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ErrEmptyCart
	}

	var order models.Order
	err := db.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Address: req.Address,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		var total float64
		var orderItems []models.OrderItem
		for _, line := range cartItems {
			total += line.Item.Price * float64(line.Quantity)
			orderItems = append(orderItems, models.OrderItem{
				ItemID:   line.ItemID,
				Quantity: line.Quantity,
				Price:    line.Item.Price,
			})
		}

		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        user.ID,
			Items:         orderItems,
			TotalAmount:   total,
			PaymentMethod: req.PaymentMethod,
			Status:        models.OrderStatusPending,
			CreatedAt:     time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Clear cart items
		return tx.Where("session_id = ?", sessionID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /checkout
func CheckoutHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		sessionID := c.GetString("session_id")

		order, err := Checkout(db, sessionID, req)
		if err != nil {
			if errors.Is(err, ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			log.Println("❌ Checkout failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process checkout"})
			return
		}

		broadcastNewOrder(*order)

		c.JSON(http.StatusOK, gin.H{
			"orderId":  order.ID,
			"orderRef": order.OrderRef,
			"success":  true,
		})
	}
}
