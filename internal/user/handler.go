package user

import (
	"net/http"

	"github.com/bizkhata/bizkhata-backend/pkg/activitylog"
	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
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

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=manager staff"`
}

type UpdateStaffRequest struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	IsActive *bool  `json:"isActive"`
}

// ListStaff returns all non-owner users for the business
func (h *Handler) ListStaff(c *gin.Context) {
	businessID := c.GetString("business_id")

	var staff []database.User
	if err := h.db.Where("business_id = ? AND role <> 'owner'", businessID).
		Order("created_at DESC").
		Find(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch staff"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"staff": staff}})
}

// CreateStaff adds a staff member to the business
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	businessID := c.GetString("business_id")
	businessUUID, _ := uuid.Parse(businessID)

	var existing database.User
	if h.db.Where("email = ?", req.Email).First(&existing).Error == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already registered"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to hash password"})
		return
	}

	staff := database.User{
		BusinessID:   businessUUID,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Name:         req.Name,
		Role:         req.Role,
		IsActive:     true,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create staff"})
		return
	}

	h.logger.LogCreate(c, "staff", staff.ID, map[string]interface{}{
		"name":  staff.Name,
		"email": staff.Email,
		"role":  staff.Role,
	})

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": gin.H{"staff": staff}})
}

// UpdateStaff modifies staff details. Owner accounts cannot be edited here.
func (h *Handler) UpdateStaff(c *gin.Context) {
	businessID := c.GetString("business_id")
	id := c.Param("id")

	var staff database.User
	if err := h.db.Where("id = ? AND business_id = ?", id, businessID).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Staff not found"})
		return
	}

	if staff.Role == "owner" {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Cannot edit owner account"})
		return
	}

	oldValues := map[string]interface{}{
		"name":     staff.Name,
		"role":     staff.Role,
		"isActive": staff.IsActive,
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if req.Name != "" {
		staff.Name = req.Name
	}
	if req.Role == "manager" || req.Role == "staff" {
		staff.Role = req.Role
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update staff"})
		return
	}

	h.logger.LogUpdate(c, "staff", staff.ID, oldValues, map[string]interface{}{
		"name":     staff.Name,
		"role":     staff.Role,
		"isActive": staff.IsActive,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"staff": staff}})
}

// DeleteStaff deactivates a staff account
func (h *Handler) DeleteStaff(c *gin.Context) {
	businessID := c.GetString("business_id")
	id := c.Param("id")

	var staff database.User
	if err := h.db.Where("id = ? AND business_id = ?", id, businessID).First(&staff).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Staff not found"})
		return
	}

	if staff.Role == "owner" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Cannot delete owner account"})
		return
	}

	staff.IsActive = false
	if err := h.db.Save(&staff).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to deactivate staff"})
		return
	}

	h.logger.LogDelete(c, "staff", staff.ID, map[string]interface{}{
		"name":  staff.Name,
		"email": staff.Email,
		"role":  staff.Role,
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"message": "Staff deactivated"}})
}

// GetActivityLogs returns the most recent audit entries for the business
func (h *Handler) GetActivityLogs(c *gin.Context) {
	businessID := c.GetString("business_id")

	var logs []database.ActivityLog
	if err := h.db.Preload("User").
		Where("business_id = ?", businessID).
		Order("created_at DESC").
		Limit(100).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch activity logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"logs": logs}})
}
