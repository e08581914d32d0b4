package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/internal/models"
)

// ErrDuplicateQuoteNumber signals a unique-constraint hit on the quote
// number; the caller regenerates and retries.
var ErrDuplicateQuoteNumber = errors.New("quote number already exists")

// Leads is the write-side data access for inquiries and quotes.
type Leads struct {
	DB *gorm.DB
}

func NewLeads(conn *gorm.DB) *Leads { return &Leads{DB: conn} }

func (s *Leads) CreateInquiry(inq *models.Inquiry) error {
	if err := s.DB.Create(inq).Error; err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

func (s *Leads) CreateQuote(q *models.Quote) error {
	if err := s.DB.Create(q).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return ErrDuplicateQuoteNumber
		}
		return fmt.Errorf("create quote: %w", err)
	}
	return nil
}

// Inquiries lists recent inquiries for the admin surface, newest first.
func (s *Leads) Inquiries(limit int) ([]models.Inquiry, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []models.Inquiry
	if err := s.DB.Order("created_at desc").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return out, nil
}

// Quotes lists recent quotes with their line items, newest first.
func (s *Leads) Quotes(limit int) ([]models.Quote, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var out []models.Quote
	if err := s.DB.Preload("Items").Order("created_at desc").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	return out, nil
}
