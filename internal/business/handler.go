package business

import (
	"net/http"

	"github.com/bizkhata/bizkhata-backend/pkg/activitylog"
	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
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

// GetSettings returns the business profile and invoice letterhead details
func (h *Handler) GetSettings(c *gin.Context) {
	businessID := c.GetString("business_id")

	var business database.Business
	if err := h.db.Where("id = ?", businessID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Business not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"business": business}})
}

type UpdateSettingsRequest struct {
	Name          *string `json:"name"`
	Phone         *string `json:"phone"`
	GSTIN         *string `json:"gstin"`
	AddressLine1  *string `json:"addressLine1"`
	AddressLine2  *string `json:"addressLine2"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	StateCode     *string `json:"stateCode"`
	Zip           *string `json:"zip"`
	BankName      *string `json:"bankName"`
	BankAccount   *string `json:"bankAccount"`
	BankIFSC      *string `json:"bankIfsc"`
	InvoiceFooter *string `json:"invoiceFooter"`
}

// UpdateSettings updates the business profile. Email is fixed at registration.
func (h *Handler) UpdateSettings(c *gin.Context) {
	businessID := c.GetString("business_id")

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	var business database.Business
	if err := h.db.Where("id = ?", businessID).First(&business).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Business not found"})
		return
	}

	if req.Name != nil && *req.Name != "" {
		business.Name = *req.Name
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.GSTIN != nil {
		business.GSTIN = *req.GSTIN
	}
	if req.AddressLine1 != nil {
		business.AddressLine1 = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		business.AddressLine2 = *req.AddressLine2
	}
	if req.City != nil {
		business.City = *req.City
	}
	if req.State != nil {
		business.State = *req.State
	}
	if req.StateCode != nil {
		business.StateCode = *req.StateCode
	}
	if req.Zip != nil {
		business.Zip = *req.Zip
	}
	if req.BankName != nil {
		business.BankName = *req.BankName
	}
	if req.BankAccount != nil {
		business.BankAccount = *req.BankAccount
	}
	if req.BankIFSC != nil {
		business.BankIFSC = *req.BankIFSC
	}
	if req.InvoiceFooter != nil {
		business.InvoiceFooter = *req.InvoiceFooter
	}

	if err := h.db.Save(&business).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save settings"})
		return
	}

	h.logger.LogUpdate(c, "business", business.ID, nil, map[string]interface{}{
		"name":  business.Name,
		"gstin": business.GSTIN,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"business": business,
			"message":  "Settings updated successfully",
		},
	})
}
