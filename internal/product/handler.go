package product

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

type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required"`
	Stock         int     `json:"stock"`
	MinStockLevel int     `json:"minStockLevel"`
	HSN           string  `json:"HSN"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
}

// List returns products for the business, with optional search and
// category filters
func (h *Handler) List(c *gin.Context) {
	businessID := c.GetString("business_id")
	search := c.Query("search")
	category := c.Query("category")

	query := h.db.Where("business_id = ?", businessID)
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if c.Query("isActive") != "" {
		query = query.Where("is_active = ?", c.Query("isActive") == "true")
	}

	var products []database.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"products": products}})
}

// Create adds a new product
func (h *Handler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	businessID, _ := uuid.Parse(c.GetString("business_id"))

	minStock := req.MinStockLevel
	if minStock == 0 {
		minStock = 10
	}

	product := database.Product{
		BusinessID:    businessID,
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		Price:         req.Price,
		StockQty:      req.Stock,
		MinStockLevel: minStock,
		HSN:           req.HSN,
		CGST:          req.CGST,
		SGST:          req.SGST,
		IsActive:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	h.logger.LogCreate(c, "product", product.ID, map[string]interface{}{
		"name":  product.Name,
		"price": product.Price,
		"hsn":   product.HSN,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Product created successfully", "data": gin.H{"product": product}})
}

// Get returns a single product
func (h *Handler) Get(c *gin.Context) {
	businessID := c.GetString("business_id")
	productID := c.Param("id")

	var product database.Product
	if err := h.db.Where("id = ? AND business_id = ?", productID, businessID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
}

// Update modifies a product
func (h *Handler) Update(c *gin.Context) {
	businessID := c.GetString("business_id")
	productID := c.Param("id")

	var product database.Product
	if err := h.db.Where("id = ? AND business_id = ?", productID, businessID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	oldValues := map[string]interface{}{
		"name":  product.Name,
		"price": product.Price,
		"stock": product.StockQty,
		"cgst":  product.CGST,
		"sgst":  product.SGST,
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	product.Name = req.Name
	product.Category = req.Category
	product.Description = req.Description
	product.Price = req.Price
	product.StockQty = req.Stock
	if req.MinStockLevel > 0 {
		product.MinStockLevel = req.MinStockLevel
	}
	product.HSN = req.HSN
	product.CGST = req.CGST
	product.SGST = req.SGST

	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	h.logger.LogUpdate(c, "product", product.ID, oldValues, map[string]interface{}{
		"name":  product.Name,
		"price": product.Price,
		"stock": product.StockQty,
		"cgst":  product.CGST,
		"sgst":  product.SGST,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
}

// Delete deactivates a product. Products referenced by transactions are
// never removed.
func (h *Handler) Delete(c *gin.Context) {
	businessID := c.GetString("business_id")
	productID := c.Param("id")

	var product database.Product
	if err := h.db.Where("id = ? AND business_id = ?", productID, businessID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product.IsActive = false
	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to deactivate product"})
		return
	}

	h.logger.LogDelete(c, "product", product.ID, map[string]interface{}{
		"name":  product.Name,
		"price": product.Price,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deactivated"})
}

// ToggleActive toggles a product's isActive flag
func (h *Handler) ToggleActive(c *gin.Context) {
	businessID := c.GetString("business_id")
	productID := c.Param("id")

	var req struct {
		IsActive bool `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var product database.Product
	if err := h.db.Where("id = ? AND business_id = ?", productID, businessID).First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Product not found"})
		return
	}

	product.IsActive = req.IsActive
	if err := h.db.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update product"})
		return
	}

	h.logger.LogToggle(c, "product", product.ID, product.IsActive, product.Name)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"product": product}})
}

// GetCategories returns the distinct categories in use
func (h *Handler) GetCategories(c *gin.Context) {
	businessID := c.GetString("business_id")

	var categories []string
	if err := h.db.Model(&database.Product{}).
		Where("business_id = ? AND category <> ''", businessID).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"categories": categories}})
}

// GetLowStock returns active products at or below their minimum stock level
func (h *Handler) GetLowStock(c *gin.Context) {
	businessID := c.GetString("business_id")

	var products []database.Product
	if err := h.db.Where("business_id = ? AND is_active = ? AND stock <= min_stock_level", businessID, true).
		Order("stock ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"products": products}})
}
