package inventory

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) (*gorm.DB, *gin.Engine, database.Business) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	business := database.Business{Name: "Test Traders", Email: "owner@test.example"}
	if err := db.Create(&business).Error; err != nil {
		t.Fatalf("failed to seed business: %v", err)
	}
	user := database.User{BusinessID: business.ID, Email: "owner@test.example", Name: "Owner", Role: "owner", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("business_id", business.ID.String())
		c.Set("user_id", user.ID.String())
		c.Set("role", "owner")
		c.Next()
	})

	h := NewHandler(db)
	r.GET("/inventory", h.GetInventory)
	r.GET("/inventory/summary", h.GetSummary)
	r.GET("/inventory/alerts", h.GetAlerts)
	r.PUT("/inventory/:id/stock", h.UpdateStock)

	return db, r, business
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func seedInventory(t *testing.T, db *gorm.DB, business database.Business) []database.Product {
	t.Helper()
	products := []database.Product{
		{BusinessID: business.ID, Name: "Plenty", Price: 10, StockQty: 100, MinStockLevel: 10, IsActive: true},
		{BusinessID: business.ID, Name: "Low", Price: 20, StockQty: 5, MinStockLevel: 10, IsActive: true},
		{BusinessID: business.ID, Name: "Out", Price: 30, StockQty: 0, MinStockLevel: 10, IsActive: true},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return products
}

func TestGetInventoryStatuses(t *testing.T) {
	db, r, business := setupRouter(t)
	seedInventory(t, db, business)

	w := doJSON(t, r, "GET", "/inventory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	items := decode(t, w)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	statuses := map[string]string{}
	for _, it := range items {
		m := it.(map[string]interface{})
		statuses[m["productName"].(string)] = m["status"].(string)
	}
	if statuses["Plenty"] != "ok" || statuses["Low"] != "low" || statuses["Out"] != "out" {
		t.Errorf("statuses = %v", statuses)
	}
}

func TestGetInventoryFilter(t *testing.T) {
	db, r, business := setupRouter(t)
	seedInventory(t, db, business)

	w := doJSON(t, r, "GET", "/inventory?filter=low", nil)
	items := decode(t, w)["data"].(map[string]interface{})["items"].([]interface{})
	if len(items) != 1 {
		t.Fatalf("expected 1 low item, got %d", len(items))
	}
	if name := items[0].(map[string]interface{})["productName"].(string); name != "Low" {
		t.Errorf("filtered item = %v, want Low", name)
	}
}

func TestGetSummaryValuation(t *testing.T) {
	db, r, business := setupRouter(t)
	seedInventory(t, db, business)

	w := doJSON(t, r, "GET", "/inventory/summary", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	summary := decode(t, w)["data"].(map[string]interface{})["summary"].(map[string]interface{})
	// 100*10 + 5*20 + 0*30
	if got := summary["totalStockValue"].(float64); got != 1100 {
		t.Errorf("totalStockValue = %v, want 1100", got)
	}
	if got := summary["totalProducts"].(float64); got != 3 {
		t.Errorf("totalProducts = %v, want 3", got)
	}
	if got := summary["lowStockCount"].(float64); got != 1 {
		t.Errorf("lowStockCount = %v, want 1", got)
	}
	if got := summary["outOfStockCount"].(float64); got != 1 {
		t.Errorf("outOfStockCount = %v, want 1", got)
	}
}

func TestUpdateStockAdjustment(t *testing.T) {
	db, r, business := setupRouter(t)
	products := seedInventory(t, db, business)
	low := products[1]

	w := doJSON(t, r, "PUT", "/inventory/"+low.ID.String()+"/stock", gin.H{"quantity": 20, "note": "restock"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var got database.Product
	db.First(&got, "id = ?", low.ID)
	if got.StockQty != 25 {
		t.Errorf("stock = %d, want 25", got.StockQty)
	}

	w = doJSON(t, r, "PUT", "/inventory/"+low.ID.String()+"/stock", gin.H{"quantity": -5})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	db.First(&got, "id = ?", low.ID)
	if got.StockQty != 20 {
		t.Errorf("stock = %d, want 20", got.StockQty)
	}
}

func TestUpdateStockCannotGoNegative(t *testing.T) {
	db, r, business := setupRouter(t)
	products := seedInventory(t, db, business)
	low := products[1]

	w := doJSON(t, r, "PUT", "/inventory/"+low.ID.String()+"/stock", gin.H{"quantity": -50})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	var got database.Product
	db.First(&got, "id = ?", low.ID)
	if got.StockQty != 5 {
		t.Errorf("stock = %d, want 5 (unchanged)", got.StockQty)
	}
}
