package product

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type ImportHandler struct {
	db *gorm.DB
}

func NewImportHandler(db *gorm.DB) *ImportHandler {
	return &ImportHandler{db: db}
}

type ImportResult struct {
	TotalRows    int      `json:"totalRows"`
	SuccessCount int      `json:"successCount"`
	FailedCount  int      `json:"failedCount"`
	Errors       []string `json:"errors"`
}

type importRow struct {
	Name     string
	Category string
	Price    float64
	Stock    int
	HSN      string
	CGST     float64
	SGST     float64
}

// ImportFile handles Excel/CSV upload for bulk product import. Expected
// columns: Name, Category, Price, Stock, HSN, CGST, SGST (header row
// skipped).
func (h *ImportHandler) ImportFile(c *gin.Context) {
	businessIDStr := c.GetString("business_id")
	businessID, _ := uuid.Parse(businessIDStr)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "No file uploaded"})
		return
	}
	defer file.Close()

	var rows []importRow
	fileName := strings.ToLower(header.Filename)

	if strings.HasSuffix(fileName, ".xlsx") || strings.HasSuffix(fileName, ".xls") {
		rows, err = h.parseExcel(file)
	} else if strings.HasSuffix(fileName, ".csv") {
		rows, err = h.parseCSV(file)
	} else {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unsupported file format. Please upload .xlsx or .csv"})
		return
	}

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": fmt.Sprintf("Failed to parse file: %v", err)})
		return
	}

	result := ImportResult{
		TotalRows: len(rows),
		Errors:    []string{},
	}

	for i, row := range rows {
		if row.Name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: Product name is required", i+2))
			result.FailedCount++
			continue
		}

		// Update existing products by name, create otherwise
		var existing database.Product
		err := h.db.Where("business_id = ? AND name = ?", businessID, row.Name).First(&existing).Error
		if err == nil {
			updates := map[string]interface{}{
				"stock": row.Stock,
			}
			if row.Price > 0 {
				updates["price"] = row.Price
			}
			if row.Category != "" {
				updates["category"] = row.Category
			}
			if row.HSN != "" {
				updates["hsn"] = row.HSN
			}
			if err := h.db.Model(&existing).Updates(updates).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+2, err))
				result.FailedCount++
				continue
			}
		} else {
			product := database.Product{
				BusinessID: businessID,
				Name:       row.Name,
				Category:   row.Category,
				Price:      row.Price,
				StockQty:   row.Stock,
				HSN:        row.HSN,
				CGST:       row.CGST,
				SGST:       row.SGST,
				IsActive:   true,
			}
			if err := h.db.Create(&product).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+2, err))
				result.FailedCount++
				continue
			}
		}

		result.SuccessCount++
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"result": result}})
}

func (h *ImportHandler) parseExcel(file io.Reader) ([]importRow, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}

	var rows []importRow
	for i, cell := range cells {
		if i == 0 {
			continue // header
		}
		rows = append(rows, rowFromColumns(cell))
	}
	return rows, nil
}

func (h *ImportHandler) parseCSV(file io.Reader) ([]importRow, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	var rows []importRow
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++
		if line == 1 {
			continue // header
		}
		rows = append(rows, rowFromColumns(record))
	}
	return rows, nil
}

func rowFromColumns(cols []string) importRow {
	get := func(i int) string {
		if i < len(cols) {
			return strings.TrimSpace(cols[i])
		}
		return ""
	}

	price, _ := strconv.ParseFloat(get(2), 64)
	stock, _ := strconv.Atoi(get(3))
	cgst, _ := strconv.ParseFloat(get(5), 64)
	sgst, _ := strconv.ParseFloat(get(6), 64)

	return importRow{
		Name:     get(0),
		Category: get(1),
		Price:    price,
		Stock:    stock,
		HSN:      get(4),
		CGST:     cgst,
		SGST:     sgst,
	}
}
