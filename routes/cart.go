package routes

import (
	cartControllers "github.com/amankuamr/swarg-swad/controllers/cart"
	orderControllers "github.com/amankuamr/swarg-swad/controllers/order"
	"github.com/amankuamr/swarg-swad/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the session-scoped cart endpoints plus
// checkout, which consumes the same session cookie.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.Session)
	{
		cartGroup.GET("", cartControllers.GetCart(db))           // GET /cart
		cartGroup.POST("", cartControllers.AddCartItem(db))      // POST /cart
		cartGroup.DELETE("", cartControllers.RemoveCartItem(db)) // DELETE /cart
		cartGroup.DELETE("/clear", cartControllers.ClearCart(db))
	}

	r.POST("/checkout", middleware.Session, orderControllers.CheckoutHandler(db))
}
