package models

import "time"

// Request types accepted on the contact form.
const (
	RequestTypeQuote   = "quote"
	RequestTypeService = "service"
	RequestTypeParts   = "parts"
	RequestTypeGeneral = "general"
)

var RequestTypes = []string{RequestTypeQuote, RequestTypeService, RequestTypeParts, RequestTypeGeneral}

// Inquiry is a contact form submission (a lead). Written once, never retried.
type Inquiry struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Email       string         `gorm:"index" json:"email"`
	Phone       string         `json:"phone"`
	Company     string         `json:"company"`
	Subject     string         `json:"subject"`
	Location    string         `json:"location"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	RequestType string         `gorm:"not null;default:'general'" json:"request_type"`
	ProductID   *string        `gorm:"size:36;index" json:"product_id,omitempty"`
	Product     *Product       `gorm:"foreignKey:ProductID" json:"-"`
	Metadata    map[string]any `gorm:"serializer:json" json:"metadata,omitempty"`
	Status      string         `gorm:"not null;default:'new'" json:"status"` // new, read, replied
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
