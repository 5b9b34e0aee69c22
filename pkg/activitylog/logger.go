package activitylog

import (
	"encoding/json"

	"github.com/bizkhata/bizkhata-backend/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Logger handles activity logging for audit trail
type Logger struct {
	db *gorm.DB
}

// NewLogger creates a new activity logger
func NewLogger(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

// LogActivity creates an activity log entry
func (l *Logger) LogActivity(c *gin.Context, action, entityType string, entityID *uuid.UUID, details interface{}) error {
	businessID, _ := uuid.Parse(c.GetString("business_id"))
	userID, _ := uuid.Parse(c.GetString("user_id"))

	detailsJSON := ""
	if details != nil {
		if jsonBytes, err := json.Marshal(details); err == nil {
			detailsJSON = string(jsonBytes)
		}
	}

	entry := database.ActivityLog{
		BusinessID: businessID,
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    detailsJSON,
		IPAddress:  c.ClientIP(),
	}

	return l.db.Create(&entry).Error
}

// LogCreate logs a create action
func (l *Logger) LogCreate(c *gin.Context, entityType string, entityID uuid.UUID, newData interface{}) error {
	return l.LogActivity(c, "create", entityType, &entityID, map[string]interface{}{
		"new": newData,
	})
}

// LogUpdate logs an update action with old and new values
func (l *Logger) LogUpdate(c *gin.Context, entityType string, entityID uuid.UUID, oldData, newData interface{}) error {
	return l.LogActivity(c, "update", entityType, &entityID, map[string]interface{}{
		"old": oldData,
		"new": newData,
	})
}

// LogDelete logs a delete/deactivate action
func (l *Logger) LogDelete(c *gin.Context, entityType string, entityID uuid.UUID, oldData interface{}) error {
	return l.LogActivity(c, "delete", entityType, &entityID, map[string]interface{}{
		"deleted": oldData,
	})
}

// LogToggle logs a toggle active/inactive action
func (l *Logger) LogToggle(c *gin.Context, entityType string, entityID uuid.UUID, isActive bool, name string) error {
	status := "deactivated"
	if isActive {
		status = "activated"
	}
	return l.LogActivity(c, "toggle", entityType, &entityID, map[string]interface{}{
		"name":      name,
		"is_active": isActive,
		"status":    status,
	})
}

// LogPayment logs a payment recorded against a transaction
func (l *Logger) LogPayment(c *gin.Context, transactionID uuid.UUID, amount float64, method string) error {
	return l.LogActivity(c, "payment", "transaction", &transactionID, map[string]interface{}{
		"amount": amount,
		"method": method,
	})
}
