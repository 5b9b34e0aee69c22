package transaction

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/bizkhata/bizkhata-backend/pkg/activitylog"
	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// epsilon absorbs floating-point rounding when comparing paid vs. total
const epsilon = 0.01

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

type TransactionItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	UnitType  string    `json:"unitType"`
	Price     float64   `json:"price"`
}

type CreateTransactionRequest struct {
	Type           string                   `json:"type" binding:"required,oneof=sale purchase"`
	CustomerID     *uuid.UUID               `json:"customerId"`
	VendorID       *uuid.UUID               `json:"vendorId"`
	Products       []TransactionItemRequest `json:"products" binding:"required,min=1,dive"`
	PaymentMethod  string                   `json:"paymentMethod"`
	Notes          string                   `json:"notes"`
	Subtotal       float64                  `json:"subtotal"`
	SGST           float64                  `json:"sgst"`
	CGST           float64                  `json:"cgst"`
	Discount       float64                  `json:"discount"`
	Status         string                   `json:"status"`
	TotalAmount    float64                  `json:"totalAmount"`
	InitialPayment float64                  `json:"initialPayment"`
}

type listFilters struct {
	Type      string `form:"type"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	ContactID string `form:"contactId"`
	Status    string `form:"status"`
	IsPrinted string `form:"isPrinted"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=10"`
}

// parseDate accepts date-only or full ISO-8601 timestamps. End dates are
// extended to the last second of the day so ranges stay inclusive.
func parseDate(value string, endOfDay bool) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		if endOfDay {
			t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
		}
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func (h *Handler) applyDateRange(query *gorm.DB, startDate, endDate string) *gorm.DB {
	if startDate != "" {
		if t, ok := parseDate(startDate, false); ok {
			query = query.Where("date >= ?", t)
		}
	}
	if endDate != "" {
		if t, ok := parseDate(endDate, true); ok {
			query = query.Where("date <= ?", t)
		}
	}
	return query
}

func paginationResponse(page, limit int, total int64) gin.H {
	pages := int(math.Ceil(float64(total) / float64(limit)))
	return gin.H{
		"current": page,
		"pages":   pages,
		"total":   total,
		"limit":   limit,
	}
}

// List returns transactions for the business with filters and pagination
func (h *Handler) List(c *gin.Context) {
	businessID := c.GetString("business_id")

	var filters listFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.Limit < 1 {
		filters.Limit = 10
	}

	query := h.db.Model(&database.Transaction{}).Where("business_id = ?", businessID)

	if filters.Type == "sale" || filters.Type == "purchase" {
		query = query.Where("type = ?", filters.Type)
	}
	query = h.applyDateRange(query, filters.StartDate, filters.EndDate)
	if filters.ContactID != "" {
		query = query.Where("customer_id = ? OR vendor_id = ?", filters.ContactID, filters.ContactID)
	}
	if filters.Status == "pending" || filters.Status == "completed" || filters.Status == "cancelled" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.IsPrinted != "" {
		query = query.Where("is_printed = ?", filters.IsPrinted == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch transactions"})
		return
	}

	var transactions []database.Transaction
	if err := query.
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		Preload("Vendor").
		Preload("Payments").
		Order("date DESC").
		Limit(filters.Limit).
		Offset((filters.Page - 1) * filters.Limit).
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"transactions": transactions,
			"pagination":   paginationResponse(filters.Page, filters.Limit, total),
		},
	})
}

// Get returns a single transaction, populated
func (h *Handler) Get(c *gin.Context) {
	businessID := c.GetString("business_id")
	transactionID := c.Param("id")

	var transaction database.Transaction
	if err := h.db.Where("id = ? AND business_id = ?", transactionID, businessID).
		Preload("Items").
		Preload("Items.Product").
		Preload("Customer").
		Preload("Vendor").
		Preload("Payments").
		First(&transaction).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"transaction": transaction}})
}

// Create records a sale or purchase: it validates the counterparty and
// every line item, adjusts stock, generates the invoice number, folds in
// an optional initial payment and updates the customer balance. All
// writes run inside one database transaction so a failing line item
// leaves nothing behind.
func (h *Handler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	businessIDStr := c.GetString("business_id")
	businessID, _ := uuid.Parse(businessIDStr)

	tx := h.db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}

	// Validate contact based on transaction type
	var contact database.Contact
	if req.Type == "sale" {
		if req.CustomerID == nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Customer ID is required for sales"})
			return
		}
		if err := tx.Where("id = ? AND business_id = ? AND type = ? AND is_active = ?",
			req.CustomerID, businessID, "customer", true).First(&contact).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
			return
		}
	} else {
		if req.VendorID == nil {
			tx.Rollback()
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Vendor ID is required for purchases"})
			return
		}
		if err := tx.Where("id = ? AND business_id = ? AND type = ? AND is_active = ?",
			req.VendorID, businessID, "vendor", true).First(&contact).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Vendor not found"})
			return
		}
	}

	// Process line items in input order
	var items []database.TransactionItem
	var calculatedSubtotal float64

	for _, item := range req.Products {
		var product database.Product
		if err := tx.Where("id = ? AND business_id = ? AND is_active = ?",
			item.ProductID, businessID, true).First(&product).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusNotFound, gin.H{"success": false,
				"message": fmt.Sprintf("Product with ID %s not found", item.ProductID)})
			return
		}

		if req.Type == "sale" {
			// Conditional decrement: the stock check and the update are one
			// statement, so concurrent sales cannot oversell.
			res := tx.Model(&database.Product{}).
				Where("id = ? AND business_id = ? AND stock >= ?", item.ProductID, businessID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update stock"})
				return
			}
			if res.RowsAffected == 0 {
				tx.Rollback()
				c.JSON(http.StatusBadRequest, gin.H{"success": false,
					"message": fmt.Sprintf("Insufficient stock for product %s. Available: %d, Requested: %d",
						product.Name, product.StockQty, item.Quantity)})
				return
			}
		} else {
			if err := tx.Model(&database.Product{}).
				Where("id = ? AND business_id = ?", item.ProductID, businessID).
				Update("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update stock"})
				return
			}
		}

		itemTotal := float64(item.Quantity) * item.Price
		calculatedSubtotal += itemTotal

		unitType := item.UnitType
		if unitType == "" {
			unitType = "single"
		}

		items = append(items, database.TransactionItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			HSN:         product.HSN,
			UnitType:    unitType,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       itemTotal,
		})
	}

	now := time.Now()

	// Invoice number: MMYYYY-NNNNN, sequence counted within the current
	// calendar month for this business
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Second)

	var monthCount int64
	if err := tx.Model(&database.Transaction{}).
		Where("business_id = ? AND date >= ? AND date <= ?", businessID, startOfMonth, endOfMonth).
		Count(&monthCount).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate invoice number"})
		return
	}
	invoiceNumber := fmt.Sprintf("%02d%d-%05d", int(now.Month()), now.Year(), monthCount+1)

	// The caller's totals are trusted; only the subtotal falls back to the
	// computed line-item sum
	subtotal := req.Subtotal
	if subtotal == 0 {
		subtotal = calculatedSubtotal
	}
	finalTotal := req.TotalAmount
	if finalTotal == 0 {
		finalTotal = subtotal + req.SGST + req.CGST - req.Discount
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	paidAmount := req.InitialPayment
	var payments []database.Payment
	if paidAmount > 0 {
		payments = append(payments, database.Payment{
			Amount: paidAmount,
			Method: paymentMethod,
			Note:   "Initial Payment",
			Date:   now,
		})
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}
	// Fully paid transactions are completed regardless of the requested status
	if paidAmount >= finalTotal-epsilon {
		status = "completed"
	}

	transaction := database.Transaction{
		BusinessID:    businessID,
		Type:          req.Type,
		InvoiceNumber: invoiceNumber,
		Items:         items,
		Subtotal:      subtotal,
		SGST:          req.SGST,
		CGST:          req.CGST,
		Discount:      req.Discount,
		TotalAmount:   finalTotal,
		PaidAmount:    paidAmount,
		Payments:      payments,
		Status:        status,
		PaymentMethod: paymentMethod,
		Notes:         req.Notes,
		Date:          now,
	}

	if req.Type == "sale" {
		transaction.CustomerID = req.CustomerID
		transaction.CustomerName = contact.Name
	} else {
		transaction.VendorID = req.VendorID
		transaction.VendorName = contact.Name
	}

	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create transaction"})
		return
	}

	// Unpaid sale remainder goes onto the customer's balance. Purchases
	// never touch the vendor balance; this mirrors how credit is tracked
	// in the books.
	if req.Type == "sale" {
		balanceToAdd := math.Max(0, finalTotal-paidAmount)
		if balanceToAdd > 0 {
			if err := tx.Model(&database.Contact{}).
				Where("id = ?", contact.ID).
				Update("current_balance", gorm.Expr("current_balance + ?", balanceToAdd)).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update contact balance"})
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create transaction"})
		return
	}

	h.logger.LogCreate(c, "transaction", transaction.ID, map[string]interface{}{
		"type":          transaction.Type,
		"invoiceNumber": transaction.InvoiceNumber,
		"totalAmount":   transaction.TotalAmount,
	})

	// Reload with associations
	h.db.Preload("Items").Preload("Items.Product").Preload("Customer").Preload("Vendor").Preload("Payments").
		First(&transaction, transaction.ID)

	message := "Purchase recorded successfully"
	if req.Type == "sale" {
		message = "Sale recorded successfully"
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": message,
		"data":    gin.H{"transaction": transaction},
	})
}

// GetSales returns sale transactions
func (h *Handler) GetSales(c *gin.Context) {
	h.listByType(c, "sale", c.Query("customerId"))
}

// GetPurchases returns purchase transactions
func (h *Handler) GetPurchases(c *gin.Context) {
	h.listByType(c, "purchase", c.Query("vendorId"))
}

func (h *Handler) listByType(c *gin.Context, txType, contactID string) {
	businessID := c.GetString("business_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := h.db.Model(&database.Transaction{}).
		Where("business_id = ? AND type = ?", businessID, txType)
	query = h.applyDateRange(query, c.Query("startDate"), c.Query("endDate"))
	if contactID != "" {
		if txType == "sale" {
			query = query.Where("customer_id = ?", contactID)
		} else {
			query = query.Where("vendor_id = ?", contactID)
		}
	}

	var total int64
	query.Count(&total)

	var transactions []database.Transaction
	if err := query.
		Preload("Items").
		Preload("Customer").
		Preload("Vendor").
		Preload("Payments").
		Order("date DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch transactions"})
		return
	}

	key := txType + "s"
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			key:          transactions,
			"pagination": paginationResponse(page, limit, total),
		},
	})
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending completed cancelled"`
}

// UpdateStatus sets the status field with a business-scope existence check
func (h *Handler) UpdateStatus(c *gin.Context) {
	businessID := c.GetString("business_id")
	transactionID := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	res := h.db.Model(&database.Transaction{}).
		Where("id = ? AND business_id = ?", transactionID, businessID).
		Update("status", req.Status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update transaction"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Transaction not found"})
		return
	}

	var transaction database.Transaction
	h.db.Preload("Items").Preload("Payments").
		Where("id = ? AND business_id = ?", transactionID, businessID).
		First(&transaction)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transaction status updated successfully",
		"data":    gin.H{"transaction": transaction},
	})
}

type UpdatePrintRequest struct {
	IsPrinted *bool `json:"isPrinted"`
}

// UpdatePrint sets the print flag; omitting the body field marks printed
func (h *Handler) UpdatePrint(c *gin.Context) {
	businessID := c.GetString("business_id")
	transactionID := c.Param("id")

	var req UpdatePrintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	isPrinted := true
	if req.IsPrinted != nil {
		isPrinted = *req.IsPrinted
	}

	res := h.db.Model(&database.Transaction{}).
		Where("id = ? AND business_id = ?", transactionID, businessID).
		Update("is_printed", isPrinted)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update transaction"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Transaction not found"})
		return
	}

	var transaction database.Transaction
	h.db.Where("id = ? AND business_id = ?", transactionID, businessID).First(&transaction)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transaction print status updated successfully",
		"data":    gin.H{"transaction": transaction},
	})
}

type typeSummary struct {
	TotalAmount      float64 `json:"totalAmount"`
	TransactionCount int64   `json:"transactionCount"`
	AverageAmount    float64 `json:"averageAmount"`
}

// GetSummary aggregates totals, counts and averages by type over an
// optional date range and derives profit/loss
func (h *Handler) GetSummary(c *gin.Context) {
	businessID := c.GetString("business_id")

	query := h.db.Model(&database.Transaction{}).Where("business_id = ?", businessID)
	query = h.applyDateRange(query, c.Query("startDate"), c.Query("endDate"))

	var rows []struct {
		Type             string
		TotalAmount      float64
		TransactionCount int64
		AverageAmount    float64
	}
	if err := query.
		Select("type, COALESCE(SUM(total_amount), 0) as total_amount, COUNT(*) as transaction_count, COALESCE(AVG(total_amount), 0) as average_amount").
		Group("type").
		Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch summary"})
		return
	}

	summary := gin.H{
		"sales":     typeSummary{},
		"purchases": typeSummary{},
	}
	var salesTotal, purchasesTotal float64
	for _, row := range rows {
		agg := typeSummary{
			TotalAmount:      row.TotalAmount,
			TransactionCount: row.TransactionCount,
			AverageAmount:    row.AverageAmount,
		}
		switch row.Type {
		case "sale":
			summary["sales"] = agg
			salesTotal = row.TotalAmount
		case "purchase":
			summary["purchases"] = agg
			purchasesTotal = row.TotalAmount
		}
	}
	summary["profitLoss"] = salesTotal - purchasesTotal

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"summary": summary}})
}

type AddPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
	Note   string  `json:"note"`
	Date   string  `json:"date"`
}

// AddPayment appends a payment record to a transaction. The amount must
// not exceed the remaining balance (within epsilon). Sale payments lower
// the customer's balance, floored at zero.
func (h *Handler) AddPayment(c *gin.Context) {
	businessID := c.GetString("business_id")
	transactionID := c.Param("id")

	var req AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	tx := h.db.Begin()
	if tx.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}

	var transaction database.Transaction
	if err := tx.Where("id = ? AND business_id = ?", transactionID, businessID).
		First(&transaction).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Transaction not found"})
		return
	}

	if req.Amount <= 0 || math.IsNaN(req.Amount) {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment amount"})
		return
	}

	remainingBalance := transaction.TotalAmount - transaction.PaidAmount
	if req.Amount > remainingBalance+epsilon {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"success": false,
			"message": fmt.Sprintf("Payment amount ₹%.2f exceeds remaining balance ₹%.2f", req.Amount, remainingBalance)})
		return
	}

	method := req.Method
	if method == "" {
		method = "cash"
	}
	paymentDate := time.Now()
	if req.Date != "" {
		if t, ok := parseDate(req.Date, false); ok {
			paymentDate = t
		}
	}

	payment := database.Payment{
		TransactionID: transaction.ID,
		Amount:        req.Amount,
		Method:        method,
		Note:          req.Note,
		Date:          paymentDate,
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
		return
	}

	// Conditional increment: the bound is re-checked in the UPDATE itself so
	// a concurrent payment cannot push paid_amount past the total
	res := tx.Model(&database.Transaction{}).
		Where("id = ? AND paid_amount + ? <= total_amount + ?", transaction.ID, req.Amount, epsilon).
		Update("paid_amount", gorm.Expr("paid_amount + ?", req.Amount))
	if res.Error != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
		return
	}
	if res.RowsAffected == 0 {
		tx.Rollback()
		c.JSON(http.StatusBadRequest, gin.H{"success": false,
			"message": fmt.Sprintf("Payment amount ₹%.2f exceeds remaining balance ₹%.2f", req.Amount, remainingBalance)})
		return
	}

	if err := tx.First(&transaction, "id = ?", transaction.ID).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
		return
	}
	if transaction.Status != "completed" && transaction.PaidAmount >= transaction.TotalAmount-epsilon {
		transaction.Status = "completed"
		if err := tx.Model(&database.Transaction{}).
			Where("id = ?", transaction.ID).
			Update("status", "completed").Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
			return
		}
	}

	// Sale on credit: paying it down releases the customer's balance
	if transaction.Type == "sale" && transaction.CustomerID != nil {
		var contact database.Contact
		if err := tx.First(&contact, "id = ?", transaction.CustomerID).Error; err == nil {
			newBalance := math.Max(0, contact.CurrentBalance-req.Amount)
			if err := tx.Model(&database.Contact{}).
				Where("id = ?", contact.ID).
				Update("current_balance", newBalance).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update contact balance"})
				return
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to record payment"})
		return
	}

	h.logger.LogPayment(c, transaction.ID, req.Amount, method)

	h.db.Preload("Items").Preload("Payments").Preload("Customer").Preload("Vendor").
		First(&transaction, transaction.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Payment added successfully",
		"data":    gin.H{"transaction": transaction},
	})
}
