package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Product statuses. Only active products are ever served to the public site.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

type Product struct {
	ID                string         `gorm:"primaryKey;size:36" json:"id"`
	Name              string         `gorm:"not null" json:"name"`
	Brand             string         `gorm:"not null;index" json:"brand"`
	Model             string         `json:"model"`
	Category          string         `gorm:"not null;index" json:"category"`
	PartNumber        string         `gorm:"index" json:"part_number"`
	ShortDescription  string         `json:"short_description"`
	FullDescription   string         `gorm:"type:text" json:"full_description"`
	Specifications    map[string]any `gorm:"serializer:json" json:"specifications"`
	Price             *float64       `json:"price"`
	Currency          string         `gorm:"not null;default:'KES'" json:"currency"`
	StockQuantity     int            `gorm:"not null;default:0" json:"stock_quantity"`
	LeadTimeDays      *int           `json:"lead_time_days"`
	MinOrderQuantity  int            `gorm:"not null;default:1" json:"min_order_quantity"`
	PrimaryImageURL   string         `json:"primary_image_url"`
	AdditionalImages  []string       `gorm:"serializer:json" json:"additional_images"`
	Tags              []string       `gorm:"serializer:json" json:"tags"`
	CompatibleEngines []string       `gorm:"serializer:json" json:"compatible_engines"`
	Status            string         `gorm:"not null;default:'active';index" json:"status"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = ProductStatusActive
	}
	return nil
}

// InStock reports stock on hand.
func (p *Product) InStock() bool { return p.StockQuantity > 0 }
