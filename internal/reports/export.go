package reports

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportTransactions streams the transaction register for a date range as an .xlsx file
func (h *Handler) ExportTransactions(c *gin.Context) {
	businessID := c.GetString("business_id")

	var req DateRangeRequest
	c.ShouldBindQuery(&req)
	startDate, endDate := resolveRange(req)

	txType := c.Query("type")

	query := h.db.Where("business_id = ? AND date >= ? AND date <= ?", businessID, startDate, endDate)
	if txType == "sale" || txType == "purchase" {
		query = query.Where("type = ?", txType)
	}

	var transactions []database.Transaction
	if err := query.Preload("Customer").Preload("Vendor").
		Order("date ASC").
		Find(&transactions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch transactions"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transactions"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Invoice No", "Date", "Type", "Party", "Subtotal", "CGST", "SGST", "Discount", "Total", "Paid", "Status", "Payment Method"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}

	for i, tx := range transactions {
		row := i + 2
		party := ""
		if tx.Customer != nil {
			party = tx.Customer.Name
		} else if tx.Vendor != nil {
			party = tx.Vendor.Name
		}

		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), tx.InvoiceNumber)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), tx.Date.Format("02-01-2006"))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), tx.Type)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), party)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), tx.Subtotal)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), tx.CGST)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), tx.SGST)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), tx.Discount)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), tx.TotalAmount)
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), tx.PaidAmount)
		f.SetCellValue(sheet, fmt.Sprintf("K%d", row), tx.Status)
		f.SetCellValue(sheet, fmt.Sprintf("L%d", row), tx.PaymentMethod)
	}

	// Totals row
	totalRow := len(transactions) + 3
	var grandTotal, grandPaid float64
	for _, tx := range transactions {
		grandTotal += tx.TotalAmount
		grandPaid += tx.PaidAmount
	}
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "TOTAL")
	f.SetCellValue(sheet, fmt.Sprintf("I%d", totalRow), grandTotal)
	f.SetCellValue(sheet, fmt.Sprintf("J%d", totalRow), grandPaid)

	fileName := fmt.Sprintf("transactions_%s_%s.xlsx", startDate.Format("20060102"), endDate.Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate export"})
	}
}

// ExportInventory streams the current stock list as an .xlsx file
func (h *Handler) ExportInventory(c *gin.Context) {
	businessID := c.GetString("business_id")

	var products []database.Product
	if err := h.db.Where("business_id = ? AND is_active = ?", businessID, true).
		Order("category ASC, name ASC").
		Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch products"})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Inventory"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Category", "HSN", "Price", "Stock", "Min Stock", "Stock Value", "CGST %", "SGST %"}
	for i, head := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, head)
	}

	for i, p := range products {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Category)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.HSN)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Price)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), p.StockQty)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), p.MinStockLevel)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), float64(p.StockQty)*p.Price)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), p.CGST)
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), p.SGST)
	}

	fileName := fmt.Sprintf("inventory_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fileName))

	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate export"})
	}
}
