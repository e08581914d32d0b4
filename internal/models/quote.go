package models

import "time"

// Quote / price estimate models. A quote always belongs to exactly one
// inquiry and is only created when the submission carried cart items.
type Quote struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Number      string      `gorm:"size:20;not null;uniqueIndex" json:"number"`
	InquiryID   uint        `gorm:"not null;index" json:"inquiry_id"`
	Inquiry     Inquiry     `gorm:"foreignKey:InquiryID" json:"-"`
	Items       []QuoteItem `gorm:"foreignKey:QuoteID" json:"items"`
	TotalAmount float64     `gorm:"not null" json:"total_amount"`
	Currency    string      `gorm:"not null;default:'KES'" json:"currency"`
	Status      string      `gorm:"not null;default:'pending'" json:"status"` // pending, sent, accepted, rejected
	ValidUntil  time.Time   `gorm:"not null" json:"valid_until"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// QuoteItem snapshots product display fields at the moment the product was
// added to the cart; later price edits on the catalog row do not touch it.
type QuoteItem struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	QuoteID    uint     `gorm:"not null;index" json:"quote_id"`
	ProductID  string   `gorm:"size:36;not null" json:"product_id"`
	Name       string   `gorm:"not null" json:"name"`
	Brand      string   `json:"brand"`
	PartNumber string   `json:"part_number"`
	Price      *float64 `json:"price"`
	Currency   string   `json:"currency"`
	ImageURL   string   `json:"image_url"`
	Quantity   int      `gorm:"not null" json:"quantity"`
}
