package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model for all entities
type BaseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate assigns a UUID so the models work on any SQL driver
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Business represents a registered business (tenant). Its GST details are
// what invoice-rendering clients print on the letterhead.
type Business struct {
	BaseModel
	Name          string `gorm:"not null" json:"name"`
	Email         string `gorm:"uniqueIndex" json:"email"`
	Phone         string `json:"phone"`
	GSTIN         string `json:"gstin"`
	AddressLine1  string `json:"addressLine1"`
	AddressLine2  string `json:"addressLine2"`
	City          string `json:"city"`
	State         string `json:"state"`
	StateCode     string `json:"stateCode"` // GST state code, e.g. "27"
	Zip           string `json:"zip"`
	BankName      string `json:"bankName"`
	BankAccount   string `json:"bankAccount"`
	BankIFSC      string `json:"bankIfsc"`
	InvoiceFooter string `json:"invoiceFooter"`
}

// User represents a system user
type User struct {
	BaseModel
	BusinessID   uuid.UUID `gorm:"type:uuid;not null" json:"businessId"`
	Business     Business  `gorm:"foreignKey:BusinessID" json:"-"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	GoogleID     string    `gorm:"index" json:"-"`
	PasswordHash string    `json:"-"` // Optional for OAuth users
	Name         string    `gorm:"not null" json:"name"`
	Role         string    `gorm:"default:'staff'" json:"role"` // owner, manager, staff
	IsActive     bool      `gorm:"default:true" json:"isActive"`
}

// Product represents a sellable or purchasable item. Products are never
// deleted, only deactivated, so old transactions keep a valid reference.
type Product struct {
	BaseModel
	BusinessID    uuid.UUID `gorm:"type:uuid;not null;index" json:"businessId"`
	Business      Business  `gorm:"foreignKey:BusinessID" json:"-"`
	Name          string    `gorm:"not null" json:"name"`
	Category      string    `json:"category"`
	Description   string    `json:"description"`
	Price         float64   `gorm:"not null" json:"price"`
	StockQty      int       `gorm:"column:stock;default:0" json:"stock"`
	MinStockLevel int       `gorm:"default:10" json:"minStockLevel"`
	HSN           string    `json:"HSN"`
	CGST          float64   `gorm:"default:0" json:"cgst"` // percentage
	SGST          float64   `gorm:"default:0" json:"sgst"` // percentage
	IsActive      bool      `gorm:"default:true" json:"isActive"`
}

// Contact represents a customer or a vendor. Type is fixed at creation:
// sales reference customers, purchases reference vendors.
type Contact struct {
	BaseModel
	BusinessID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"businessId"`
	Business       Business       `gorm:"foreignKey:BusinessID" json:"-"`
	Name           string         `gorm:"not null" json:"name"`
	Phone          string         `json:"phone"`
	Email          string         `json:"email"`
	GSTIN          string         `json:"gstin"`
	Type           string         `gorm:"not null" json:"type"` // customer, vendor
	Street         string         `json:"street"`
	City           string         `json:"city"`
	State          string         `json:"state"`
	Zip            string         `json:"zip"`
	Country        string         `json:"country"`
	CurrentBalance float64        `gorm:"default:0" json:"currentBalance"`
	IsActive       bool           `gorm:"default:true" json:"isActive"`
	CustomPrices   []ContactPrice `gorm:"foreignKey:ContactID" json:"customPrices,omitempty"`
}

// ContactPrice is a per-product price override for a contact
type ContactPrice struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ContactID uuid.UUID `gorm:"type:uuid;not null;index" json:"contactId"`
	ProductID uuid.UUID `gorm:"type:uuid;not null" json:"productId"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Price     float64   `gorm:"not null" json:"price"`
}

func (p *ContactPrice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Transaction represents a sale or a purchase. Line items and the tax
// breakdown are fixed at creation; only status, the print flag and the
// payment ledger change afterwards.
type Transaction struct {
	BaseModel
	BusinessID    uuid.UUID         `gorm:"type:uuid;not null;index:idx_business_invoice,unique" json:"businessId"`
	Business      Business          `gorm:"foreignKey:BusinessID" json:"-"`
	Type          string            `gorm:"not null" json:"type"` // sale, purchase
	InvoiceNumber string            `gorm:"not null;index:idx_business_invoice,unique" json:"invoiceNumber"`
	CustomerID    *uuid.UUID        `gorm:"type:uuid" json:"customerId"`
	Customer      *Contact          `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	CustomerName  string            `json:"customerName,omitempty"`
	VendorID      *uuid.UUID        `gorm:"type:uuid" json:"vendorId"`
	Vendor        *Contact          `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	VendorName    string            `json:"vendorName,omitempty"`
	Items         []TransactionItem `gorm:"foreignKey:TransactionID" json:"products"`
	Subtotal      float64           `gorm:"not null" json:"subtotal"`
	CGST          float64           `gorm:"default:0" json:"cgst"`
	SGST          float64           `gorm:"default:0" json:"sgst"`
	Discount      float64           `gorm:"default:0" json:"discount"`
	TotalAmount   float64           `gorm:"not null" json:"totalAmount"`
	PaidAmount    float64           `gorm:"default:0" json:"paidAmount"`
	Payments      []Payment         `gorm:"foreignKey:TransactionID" json:"payments"`
	Status        string            `gorm:"default:'pending'" json:"status"` // pending, completed, cancelled
	PaymentMethod string            `gorm:"default:'cash'" json:"paymentMethod"`
	IsPrinted     bool              `gorm:"default:false" json:"isPrinted"`
	Notes         string            `json:"notes"`
	Date          time.Time         `gorm:"index" json:"date"`
}

// TransactionItem is one product line within a transaction. Name and HSN
// are snapshots taken at creation so later product edits don't rewrite
// old invoices.
type TransactionItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transactionId"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null" json:"productId"`
	Product       Product   `gorm:"foreignKey:ProductID" json:"product"`
	ProductName   string    `gorm:"not null" json:"productName"`
	HSN           string    `json:"HSN"`
	UnitType      string    `gorm:"default:'single'" json:"unitType"` // single, case
	Quantity      int       `gorm:"not null" json:"quantity"`
	Price         float64   `gorm:"not null" json:"price"`
	Total         float64   `gorm:"not null" json:"total"`
}

func (i *TransactionItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// Payment is one entry in a transaction's payment ledger
type Payment struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index" json:"transactionId"`
	Amount        float64   `gorm:"not null" json:"amount"`
	Method        string    `gorm:"default:'cash'" json:"method"`
	Note          string    `json:"note"`
	Date          time.Time `json:"date"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ActivityLog tracks staff actions for audit trail
type ActivityLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index" json:"businessId"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null" json:"userId"`
	User       User       `gorm:"foreignKey:UserID" json:"user"`
	Action     string     `gorm:"not null" json:"action"` // create, update, delete, toggle, payment
	EntityType string     `json:"entityType"`             // transaction, product, contact, etc.
	EntityID   *uuid.UUID `gorm:"type:uuid" json:"entityId"`
	Details    string     `gorm:"type:text" json:"details"` // JSON details
	IPAddress  string     `json:"ipAddress"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (l *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Migrate runs database migrations
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Business{},
		&User{},
		&Product{},
		&Contact{},
		&ContactPrice{},
		&Transaction{},
		&TransactionItem{},
		&Payment{},
		&ActivityLog{},
	)
}
