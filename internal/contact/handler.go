package contact

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

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type CustomPriceRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Price     float64   `json:"price" binding:"required"`
}

type CreateContactRequest struct {
	Name         string               `json:"name" binding:"required"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	GSTIN        string               `json:"gstin"`
	Type         string               `json:"type" binding:"required,oneof=customer vendor"`
	Address      AddressRequest       `json:"address"`
	CustomPrices []CustomPriceRequest `json:"customPrices"`
}

// UpdateContactRequest omits type: a contact's type never changes once
// transactions reference it.
type UpdateContactRequest struct {
	Name         string               `json:"name" binding:"required"`
	Phone        string               `json:"phone"`
	Email        string               `json:"email"`
	GSTIN        string               `json:"gstin"`
	Address      AddressRequest       `json:"address"`
	CustomPrices []CustomPriceRequest `json:"customPrices"`
}

// List returns contacts for the business, optionally filtered by type
// and search term
func (h *Handler) List(c *gin.Context) {
	businessID := c.GetString("business_id")
	search := c.Query("search")
	contactType := c.Query("type")

	query := h.db.Where("business_id = ?", businessID)
	if contactType == "customer" || contactType == "vendor" {
		query = query.Where("type = ?", contactType)
	}
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var contacts []database.Contact
	if err := query.Preload("CustomPrices").Order("name ASC").Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"contacts": contacts}})
}

// ListCustomers returns active customers
func (h *Handler) ListCustomers(c *gin.Context) {
	h.listByType(c, "customer", "customers")
}

// ListVendors returns active vendors
func (h *Handler) ListVendors(c *gin.Context) {
	h.listByType(c, "vendor", "vendors")
}

func (h *Handler) listByType(c *gin.Context, contactType, key string) {
	businessID := c.GetString("business_id")

	var contacts []database.Contact
	if err := h.db.Where("business_id = ? AND type = ? AND is_active = ?", businessID, contactType, true).
		Preload("CustomPrices").
		Order("name ASC").
		Find(&contacts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{key: contacts}})
}

// Create adds a new customer or vendor
func (h *Handler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	businessID, _ := uuid.Parse(c.GetString("business_id"))

	contact := database.Contact{
		BusinessID: businessID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		GSTIN:      req.GSTIN,
		Type:       req.Type,
		Street:     req.Address.Street,
		City:       req.Address.City,
		State:      req.Address.State,
		Zip:        req.Address.Zip,
		Country:    req.Address.Country,
		IsActive:   true,
	}
	for _, cp := range req.CustomPrices {
		contact.CustomPrices = append(contact.CustomPrices, database.ContactPrice{
			ProductID: cp.ProductID,
			Price:     cp.Price,
		})
	}

	if err := h.db.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create contact"})
		return
	}

	h.logger.LogCreate(c, "contact", contact.ID, map[string]interface{}{
		"name": contact.Name,
		"type": contact.Type,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Contact created successfully", "data": gin.H{"contact": contact}})
}

// Get returns a single contact
func (h *Handler) Get(c *gin.Context) {
	businessID := c.GetString("business_id")
	contactID := c.Param("id")

	var contact database.Contact
	if err := h.db.Where("id = ? AND business_id = ?", contactID, businessID).
		Preload("CustomPrices").
		Preload("CustomPrices.Product").
		First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"contact": contact}})
}

// Update modifies a contact. Balance and type are not editable here:
// the balance moves only through the transaction workflow.
func (h *Handler) Update(c *gin.Context) {
	businessID := c.GetString("business_id")
	contactID := c.Param("id")

	var contact database.Contact
	if err := h.db.Where("id = ? AND business_id = ?", contactID, businessID).First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact not found"})
		return
	}

	oldValues := map[string]interface{}{
		"name":  contact.Name,
		"phone": contact.Phone,
		"email": contact.Email,
		"gstin": contact.GSTIN,
	}

	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	contact.Name = req.Name
	contact.Phone = req.Phone
	contact.Email = req.Email
	contact.GSTIN = req.GSTIN
	contact.Street = req.Address.Street
	contact.City = req.Address.City
	contact.State = req.Address.State
	contact.Zip = req.Address.Zip
	contact.Country = req.Address.Country

	if err := h.db.Save(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update contact"})
		return
	}

	// Replace price overrides wholesale
	if req.CustomPrices != nil {
		h.db.Where("contact_id = ?", contact.ID).Delete(&database.ContactPrice{})
		for _, cp := range req.CustomPrices {
			h.db.Create(&database.ContactPrice{
				ContactID: contact.ID,
				ProductID: cp.ProductID,
				Price:     cp.Price,
			})
		}
	}

	h.logger.LogUpdate(c, "contact", contact.ID, oldValues, map[string]interface{}{
		"name":  contact.Name,
		"phone": contact.Phone,
		"email": contact.Email,
		"gstin": contact.GSTIN,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"contact": contact}})
}

// Delete deactivates a contact. Contacts referenced by transactions are
// never removed.
func (h *Handler) Delete(c *gin.Context) {
	businessID := c.GetString("business_id")
	contactID := c.Param("id")

	var contact database.Contact
	if err := h.db.Where("id = ? AND business_id = ?", contactID, businessID).First(&contact).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Contact not found"})
		return
	}

	contact.IsActive = false
	if err := h.db.Save(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to deactivate contact"})
		return
	}

	h.logger.LogDelete(c, "contact", contact.ID, map[string]interface{}{
		"name": contact.Name,
		"type": contact.Type,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Contact deactivated"})
}
