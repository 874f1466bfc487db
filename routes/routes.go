package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the menu, cart,
// order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public menu browsing
	SetupMenuRoutes(r, db)

	// Session-scoped cart + checkout
	SetupCartRoutes(r, db)

	// Order history + live feed
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
