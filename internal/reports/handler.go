package reports

import (
	"net/http"
	"time"

	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/bizkhata/bizkhata-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	db *gorm.DB
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{db: db}
}

type DateRangeRequest struct {
	StartDate string `form:"startDate"` // Format: 2024-01-01
	EndDate   string `form:"endDate"`
}

// resolveRange defaults to the current month when no dates are provided
func resolveRange(req DateRangeRequest) (time.Time, time.Time) {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Second)

	if req.StartDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			startDate = parsed
		}
	}
	if req.EndDate != "" {
		if parsed, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			endDate = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, 0, parsed.Location())
		}
	}
	return startDate, endDate
}

type DashboardStats struct {
	TodaySales         float64                `json:"todaySales"`
	TodayTransactions  int                    `json:"todayTransactions"`
	WeekSales          float64                `json:"weekSales"`
	WeekTransactions   int                    `json:"weekTransactions"`
	MonthSales         float64                `json:"monthSales"`
	MonthPurchases     float64                `json:"monthPurchases"`
	MonthTransactions  int                    `json:"monthTransactions"`
	PendingReceivable  float64                `json:"pendingReceivable"`
	TotalProducts      int                    `json:"totalProducts"`
	LowStockProducts   int                    `json:"lowStockProducts"`
	TopProducts        []TopProduct           `json:"topProducts"`
	RecentTransactions []database.Transaction `json:"recentTransactions"`
}

type TopProduct struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	TotalQty    int     `json:"totalQty"`
	TotalSales  float64 `json:"totalSales"`
}

// GetDashboard returns the headline numbers for the home screen
func (h *Handler) GetDashboard(c *gin.Context) {
	businessID := c.GetString("business_id")

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := todayStart.AddDate(0, 0, -7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var stats DashboardStats

	var todayResult struct {
		Total float64
		Count int
	}
	h.db.Model(&database.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0) as total, COUNT(*) as count").
		Where("business_id = ? AND type = ? AND date >= ? AND status <> ?", businessID, "sale", todayStart, "cancelled").
		Scan(&todayResult)
	stats.TodaySales = todayResult.Total
	stats.TodayTransactions = todayResult.Count

	var weekResult struct {
		Total float64
		Count int
	}
	h.db.Model(&database.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0) as total, COUNT(*) as count").
		Where("business_id = ? AND type = ? AND date >= ? AND status <> ?", businessID, "sale", weekStart, "cancelled").
		Scan(&weekResult)
	stats.WeekSales = weekResult.Total
	stats.WeekTransactions = weekResult.Count

	var monthResult struct {
		Total float64
		Count int
	}
	h.db.Model(&database.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0) as total, COUNT(*) as count").
		Where("business_id = ? AND type = ? AND date >= ? AND status <> ?", businessID, "sale", monthStart, "cancelled").
		Scan(&monthResult)
	stats.MonthSales = monthResult.Total
	stats.MonthTransactions = monthResult.Count

	var monthPurchases struct {
		Total float64
	}
	h.db.Model(&database.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0) as total").
		Where("business_id = ? AND type = ? AND date >= ? AND status <> ?", businessID, "purchase", monthStart, "cancelled").
		Scan(&monthPurchases)
	stats.MonthPurchases = monthPurchases.Total

	// Outstanding customer credit
	var receivable struct {
		Total float64
	}
	h.db.Model(&database.Contact{}).
		Select("COALESCE(SUM(current_balance), 0) as total").
		Where("business_id = ? AND type = ?", businessID, "customer").
		Scan(&receivable)
	stats.PendingReceivable = receivable.Total

	var totalProducts int64
	h.db.Model(&database.Product{}).
		Where("business_id = ? AND is_active = ?", businessID, true).
		Count(&totalProducts)
	stats.TotalProducts = int(totalProducts)

	var lowStockProducts int64
	h.db.Model(&database.Product{}).
		Where("business_id = ? AND is_active = ? AND stock <= min_stock_level", businessID, true).
		Count(&lowStockProducts)
	stats.LowStockProducts = int(lowStockProducts)

	h.db.Model(&database.TransactionItem{}).
		Select("transaction_items.product_id, transaction_items.product_name, SUM(transaction_items.quantity) as total_qty, SUM(transaction_items.total) as total_sales").
		Joins("JOIN transactions ON transaction_items.transaction_id = transactions.id").
		Where("transactions.business_id = ? AND transactions.type = ? AND transactions.date >= ? AND transactions.status <> ?",
			businessID, "sale", monthStart, "cancelled").
		Group("transaction_items.product_id, transaction_items.product_name").
		Order("total_qty DESC").
		Limit(5).
		Scan(&stats.TopProducts)

	h.db.Where("business_id = ?", businessID).
		Preload("Items").
		Order("date DESC").
		Limit(5).
		Find(&stats.RecentTransactions)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"dashboard": stats}})
}

// GetInventoryReport returns stock levels and valuation
func (h *Handler) GetInventoryReport(c *gin.Context) {
	businessID := c.GetString("business_id")

	var products []database.Product
	if err := h.db.Where("business_id = ? AND is_active = ?", businessID, true).
		Order("category ASC, name ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch inventory report"})
		return
	}

	var totalValue float64
	lowStock := 0
	for _, p := range products {
		totalValue += float64(p.StockQty) * p.Price
		if p.StockQty <= p.MinStockLevel {
			lowStock++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"products":        products,
			"totalStockValue": totalValue,
			"lowStockCount":   lowStock,
		},
	})
}

type TransactionReport struct {
	StartDate         string        `json:"startDate"`
	EndDate           string        `json:"endDate"`
	SalesTotal        float64       `json:"salesTotal"`
	SalesCount        int           `json:"salesCount"`
	PurchasesTotal    float64       `json:"purchasesTotal"`
	PurchasesCount    int           `json:"purchasesCount"`
	ProfitLoss        float64       `json:"profitLoss"`
	TotalTaxCollected float64       `json:"totalTaxCollected"`
	DailyBreakdown    []DailyTotals `json:"dailyBreakdown"`
}

type DailyTotals struct {
	Date      string  `json:"date"`
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
}

// GetTransactionReport returns totals for a date range plus a daily breakdown
func (h *Handler) GetTransactionReport(c *gin.Context) {
	businessID := c.GetString("business_id")

	var req DateRangeRequest
	c.ShouldBindQuery(&req)
	startDate, endDate := resolveRange(req)

	var report TransactionReport
	report.StartDate = startDate.Format("2006-01-02")
	report.EndDate = endDate.Format("2006-01-02")

	var rows []struct {
		Type  string
		Total float64
		Count int64
		Tax   float64
	}
	h.db.Model(&database.Transaction{}).
		Select("type, COALESCE(SUM(total_amount), 0) as total, COUNT(*) as count, COALESCE(SUM(cgst + sgst), 0) as tax").
		Where("business_id = ? AND date >= ? AND date <= ? AND status <> ?", businessID, startDate, endDate, "cancelled").
		Group("type").
		Scan(&rows)

	for _, row := range rows {
		switch row.Type {
		case "sale":
			report.SalesTotal = row.Total
			report.SalesCount = int(row.Count)
			report.TotalTaxCollected += row.Tax
		case "purchase":
			report.PurchasesTotal = row.Total
			report.PurchasesCount = int(row.Count)
		}
	}
	report.ProfitLoss = report.SalesTotal - report.PurchasesTotal

	dailyRows, err := h.db.Model(&database.Transaction{}).
		Select("DATE(date) as day, type, COALESCE(SUM(total_amount), 0) as total").
		Where("business_id = ? AND date >= ? AND date <= ? AND status <> ?", businessID, startDate, endDate, "cancelled").
		Group("DATE(date), type").
		Order("day ASC").
		Rows()
	if err == nil && dailyRows != nil {
		defer dailyRows.Close()
		daily := map[string]*DailyTotals{}
		var order []string
		for dailyRows.Next() {
			var day, txType string
			var total float64
			if err := dailyRows.Scan(&day, &txType, &total); err != nil {
				reportsLog := logger.WithComponent("reports")
				reportsLog.Warn().Err(err).Msg("skipping unreadable daily breakdown row")
				continue
			}
			if _, ok := daily[day]; !ok {
				daily[day] = &DailyTotals{Date: day}
				order = append(order, day)
			}
			if txType == "sale" {
				daily[day].Sales = total
			} else {
				daily[day].Purchases = total
			}
		}
		for _, day := range order {
			report.DailyBreakdown = append(report.DailyBreakdown, *daily[day])
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"report": report}})
}

// GetCustomerReport returns a customer statement
func (h *Handler) GetCustomerReport(c *gin.Context) {
	h.contactReport(c, "customer")
}

// GetVendorReport returns a vendor statement
func (h *Handler) GetVendorReport(c *gin.Context) {
	h.contactReport(c, "vendor")
}

func (h *Handler) contactReport(c *gin.Context, contactType string) {
	businessID := c.GetString("business_id")
	contactID := c.Param("id")

	var contact database.Contact
	if err := h.db.Where("id = ? AND business_id = ? AND type = ?", contactID, businessID, contactType).
		First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact not found"})
		return
	}

	var req DateRangeRequest
	c.ShouldBindQuery(&req)
	startDate, endDate := resolveRange(req)

	column := "customer_id"
	if contactType == "vendor" {
		column = "vendor_id"
	}

	var transactions []database.Transaction
	h.db.Where("business_id = ? AND "+column+" = ? AND date >= ? AND date <= ?", businessID, contactID, startDate, endDate).
		Preload("Items").
		Preload("Payments").
		Order("date DESC").
		Find(&transactions)

	var totals struct {
		Total float64
		Paid  float64
		Count int64
	}
	h.db.Model(&database.Transaction{}).
		Select("COALESCE(SUM(total_amount), 0) as total, COALESCE(SUM(paid_amount), 0) as paid, COUNT(*) as count").
		Where("business_id = ? AND "+column+" = ? AND date >= ? AND date <= ?", businessID, contactID, startDate, endDate).
		Scan(&totals)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"contact":      contact,
			"transactions": transactions,
			"summary": gin.H{
				"totalAmount":      totals.Total,
				"paidAmount":       totals.Paid,
				"outstanding":      totals.Total - totals.Paid,
				"transactionCount": totals.Count,
				"currentBalance":   contact.CurrentBalance,
			},
		},
	})
}
