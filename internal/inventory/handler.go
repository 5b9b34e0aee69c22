package inventory

import (
	"net/http"

	"github.com/bizkhata/bizkhata-backend/pkg/activitylog"
	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Handler struct {
	db     *gorm.DB
	logger *activitylog.Logger
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		db:     db,
		logger: activitylog.NewLogger(db),
	}
}

type InventoryItem struct {
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	Category      string    `json:"category"`
	Stock         int       `json:"stock"`
	MinStockLevel int       `json:"minStockLevel"`
	Price         float64   `json:"price"`
	StockValue    float64   `json:"stockValue"`
	Status        string    `json:"status"` // ok, low, out
}

type InventorySummary struct {
	TotalProducts   int     `json:"totalProducts"`
	TotalStockValue float64 `json:"totalStockValue"`
	LowStockCount   int     `json:"lowStockCount"`
	OutOfStockCount int     `json:"outOfStockCount"`
}

func stockStatus(p database.Product) string {
	if p.StockQty <= 0 {
		return "out"
	}
	if p.StockQty <= p.MinStockLevel {
		return "low"
	}
	return "ok"
}

// GetInventory returns stock status for all active products
func (h *Handler) GetInventory(c *gin.Context) {
	businessID := c.GetString("business_id")
	filter := c.Query("filter") // all, low, out

	var products []database.Product
	if err := h.db.Where("business_id = ? AND is_active = ?", businessID, true).
		Order("name ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch inventory"})
		return
	}

	var items []InventoryItem
	for _, p := range products {
		status := stockStatus(p)

		if filter == "low" && status != "low" {
			continue
		}
		if filter == "out" && status != "out" {
			continue
		}

		items = append(items, InventoryItem{
			ProductID:     p.ID,
			ProductName:   p.Name,
			Category:      p.Category,
			Stock:         p.StockQty,
			MinStockLevel: p.MinStockLevel,
			Price:         p.Price,
			StockValue:    float64(p.StockQty) * p.Price,
			Status:        status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": items}})
}

// GetSummary returns inventory summary stats
func (h *Handler) GetSummary(c *gin.Context) {
	businessID := c.GetString("business_id")

	var summary InventorySummary

	var totalProducts int64
	h.db.Model(&database.Product{}).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Count(&totalProducts)
	summary.TotalProducts = int(totalProducts)

	var stockValue struct {
		Total float64
	}
	h.db.Model(&database.Product{}).
		Select("COALESCE(SUM(stock * price), 0) as total").
		Where("business_id = ? AND is_active = ?", businessID, true).
		Scan(&stockValue)
	summary.TotalStockValue = stockValue.Total

	var lowStock int64
	h.db.Model(&database.Product{}).
		Where("business_id = ? AND is_active = ? AND stock > 0 AND stock <= min_stock_level", businessID, true).
		Count(&lowStock)
	summary.LowStockCount = int(lowStock)

	var outOfStock int64
	h.db.Model(&database.Product{}).
		Where("business_id = ? AND is_active = ? AND stock <= 0", businessID, true).
		Count(&outOfStock)
	summary.OutOfStockCount = int(outOfStock)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"summary": summary}})
}

// GetAlerts returns products that need attention
func (h *Handler) GetAlerts(c *gin.Context) {
	businessID := c.GetString("business_id")

	var lowStock []database.Product
	h.db.Where("business_id = ? AND is_active = ? AND stock > 0 AND stock <= min_stock_level", businessID, true).
		Order("stock ASC").
		Limit(10).
		Find(&lowStock)

	var outOfStock []database.Product
	h.db.Where("business_id = ? AND is_active = ? AND stock <= 0", businessID, true).
		Order("name ASC").
		Limit(10).
		Find(&outOfStock)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"lowStock":   lowStock,
			"outOfStock": outOfStock,
		},
	})
}

type UpdateStockRequest struct {
	Quantity int    `json:"quantity" binding:"required"` // signed adjustment
	Note     string `json:"note"`
}

// UpdateStock applies a manual stock adjustment, floored at zero
func (h *Handler) UpdateStock(c *gin.Context) {
	businessID := c.GetString("business_id")
	productID := c.Param("id")

	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var product database.Product
	if err := h.db.Where("id = ? AND business_id = ?", productID, businessID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	newQty := product.StockQty + req.Quantity
	if newQty < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Stock cannot go below zero"})
		return
	}

	oldQty := product.StockQty
	product.StockQty = newQty
	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update stock"})
		return
	}

	h.logger.LogUpdate(c, "product", product.ID,
		map[string]interface{}{"stock": oldQty},
		map[string]interface{}{"stock": newQty, "note": req.Note})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
}
