package cartControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amankuamr/swarg-swad/middleware"
	"github.com/amankuamr/swarg-swad/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Item{},
		&models.CartItem{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cartGroup := r.Group("/cart")
	cartGroup.Use(middleware.Session)
	{
		cartGroup.GET("", GetCart(db))
		cartGroup.POST("", AddCartItem(db))
		cartGroup.DELETE("", RemoveCartItem(db))
		cartGroup.DELETE("/clear", ClearCart(db))
	}
	return r
}

func seedItem(t *testing.T, db *gorm.DB, name string, price float64) models.Item {
	t.Helper()
	category := models.Category{Name: "Fast Food " + name, Description: "test"}
	require.NoError(t, db.Create(&category).Error)
	item := models.Item{Name: name, Price: price, CategoryID: category.ID}
	require.NoError(t, db.Create(&item).Error)
	return item
}

func doJSON(r *gin.Engine, method, path string, body interface{}, session string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: session})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartMergesQuantities(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	item := seedItem(t, db, "Burger", 8.99)

	w := doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": item.ID, "quantity": 2}, "sess-merge")
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": item.ID, "quantity": 3}, "sess-merge")
	require.Equal(t, http.StatusOK, w.Code)

	var lines []models.CartItem
	require.NoError(t, db.Where("session_id = ?", "sess-merge").Find(&lines).Error)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddToCartKeepsSessionsSeparate(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	item := seedItem(t, db, "Pizza", 12.99)

	doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": item.ID, "quantity": 1}, "sess-a")
	doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": item.ID, "quantity": 1}, "sess-b")

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestAddToCartRejectsUnknownItem(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": 999, "quantity": 1}, "sess-x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddToCartRejectsNonPositiveQuantity(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	item := seedItem(t, db, "Fries", 4.50)

	for _, quantity := range []int{0, -2} {
		w := doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": item.ID, "quantity": quantity}, "sess-x")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRemoveMissingCartLineSucceeds(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodDelete, "/cart", gin.H{"itemId": 42}, "sess-x")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestRemoveDeletesCartLine(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	item := seedItem(t, db, "Salad", 7.99)

	doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": item.ID, "quantity": 2}, "sess-x")
	w := doJSON(r, http.MethodDelete, "/cart", gin.H{"itemId": item.ID}, "sess-x")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("session_id = ?", "sess-x").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestClearCartHitsStore(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	burger := seedItem(t, db, "Burger", 8.99)
	fries := seedItem(t, db, "Fries", 4.50)

	doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": burger.ID, "quantity": 1}, "sess-x")
	doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": fries.ID, "quantity": 2}, "sess-x")

	w := doJSON(r, http.MethodDelete, "/cart/clear", nil, "sess-x")
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("session_id = ?", "sess-x").Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetCartEmptyForNewSession(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodGet, "/cart", nil, "sess-fresh")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestGetCartJoinsItemDetails(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	item := seedItem(t, db, "Steak", 24.99)

	doJSON(r, http.MethodPost, "/cart", gin.H{"itemId": item.ID, "quantity": 1}, "sess-x")

	w := doJSON(r, http.MethodGet, "/cart", nil, "sess-x")
	require.Equal(t, http.StatusOK, w.Code)

	var lines []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lines))
	require.Len(t, lines, 1)
	assert.Equal(t, "Steak", lines[0].Item.Name)
	assert.Equal(t, 24.99, lines[0].Item.Price)
}

func TestSessionCookieIssuedWhenAbsent(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodGet, "/cart", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, middleware.SessionCookie+"=sess_")
	assert.NotContains(t, setCookie, "default")
}

func TestSessionIdsAreUniquePerVisitor(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	first := doJSON(r, http.MethodGet, "/cart", nil, "").Header().Get("Set-Cookie")
	second := doJSON(r, http.MethodGet, "/cart", nil, "").Header().Get("Set-Cookie")
	require.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
