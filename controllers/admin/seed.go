package adminController

import (
	"log"
	"net/http"

	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SeedMenu loads the starter menu. It refuses to run against a store
// that already has categories, so rerunning it is harmless.
// POST /admin/seed
func SeedMenu(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var count int64
		if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to inspect catalog"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu already seeded"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			beverages := models.Category{Name: "Beverages", Description: "Refreshing drinks and beverages", Icon: "Coffee"}
			fastFood := models.Category{Name: "Fast Food", Description: "Quick and delicious fast food", Icon: "Burger"}
			cuisine := models.Category{Name: "Cuisine", Description: "Traditional and international cuisine", Icon: "Utensils"}

			for _, cat := range []*models.Category{&beverages, &fastFood, &cuisine} {
				if err := tx.Create(cat).Error; err != nil {
					return err
				}
			}

			items := []models.Item{
				{Name: "Coffee", Description: "Fresh brewed coffee", Price: 3.50, Image: "/images/beverages/coffee.jpg", CategoryID: beverages.ID},
				{Name: "Tea", Description: "Hot tea varieties", Price: 2.50, Image: "/images/beverages/tea.jpg", CategoryID: beverages.ID},
				{Name: "Soda", Description: "Carbonated soft drinks", Price: 2.00, Image: "/images/beverages/soda.jpg", CategoryID: beverages.ID},
				{Name: "Burger", Description: "Classic cheeseburger", Price: 8.99, Image: "/images/fast-food/burger.jpg", CategoryID: fastFood.ID},
				{Name: "Fries", Description: "Crispy french fries", Price: 4.50, Image: "/images/fast-food/fries.jpg", CategoryID: fastFood.ID},
				{Name: "Pizza", Description: "Margherita pizza", Price: 12.99, Image: "/images/fast-food/pizza.jpg", CategoryID: fastFood.ID},
				{Name: "Pasta", Description: "Creamy Alfredo pasta", Price: 11.99, Image: "/images/cuisine/pasta.jpg", CategoryID: cuisine.ID},
				{Name: "Salad", Description: "Fresh garden salad", Price: 7.99, Image: "/images/cuisine/salad.jpg", CategoryID: cuisine.ID},
				{Name: "Steak", Description: "Grilled ribeye steak", Price: 24.99, Image: "/images/cuisine/steak.jpg", CategoryID: cuisine.ID},
			}
			return tx.Create(&items).Error
		})
		if err != nil {
			log.Println("❌ Failed to seed menu:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to seed menu"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Menu seeded successfully"})
	}
}
