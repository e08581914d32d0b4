package leads

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wingseng/parts-catalog/internal/cart"
	"github.com/wingseng/parts-catalog/internal/models"
	"github.com/wingseng/parts-catalog/internal/store"
	"github.com/wingseng/parts-catalog/validation"
)

const (
	quoteValidityDays  = 30
	quoteNumberRetries = 3
)

// Submission carries the contact form fields before validation.
type Submission struct {
	Name        string
	Email       string
	Phone       string
	Company     string
	Subject     string
	Location    string
	Message     string
	RequestType string
	ProductID   *string
	Metadata    map[string]any
}

// Result reports what a submission produced. QuoteErr is set when the
// inquiry was written but the derived quote was not; the inquiry is kept
// (accepted inconsistency, no rollback).
type Result struct {
	Inquiry  *models.Inquiry
	Quote    *models.Quote
	QuoteErr error
}

// Service packages cart + contact fields into persisted inquiry and quote
// records.
type Service struct {
	store   *store.Leads
	now     func() time.Time
	randInt func(n int) int
}

func NewService(st *store.Leads) *Service {
	return &Service{store: st, now: time.Now, randInt: rand.Intn}
}

// Validate checks the locally-enforced invariants: a name, at least one
// contact channel, a message, and a known request type. No network call is
// made while violations exist.
func (s *Service) Validate(sub Submission) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", sub.Name, v)
	validation.Required("message", sub.Message, v)
	validation.ContactChannel(sub.Email, sub.Phone, v)
	validation.Email("email", sub.Email, v)
	if sub.RequestType != "" {
		validation.OneOf("request_type", sub.RequestType, models.RequestTypes, v)
	}
	return v
}

// Submit writes the inquiry and, when the cart is non-empty, a derived quote
// linked to it. Validation failures abort before any write. A quote-number
// collision is retried with a fresh number a few times; persistent failure
// is reported through Result.QuoteErr while the inquiry stands.
func (s *Service) Submit(sub Submission, items []cart.LineItem) (*Result, error) {
	if v := s.Validate(sub); !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}
	requestType := sub.RequestType
	if requestType == "" {
		requestType = models.RequestTypeGeneral
	}
	inq := &models.Inquiry{
		Name:        sub.Name,
		Email:       sub.Email,
		Phone:       sub.Phone,
		Company:     sub.Company,
		Subject:     sub.Subject,
		Location:    sub.Location,
		Message:     sub.Message,
		RequestType: requestType,
		ProductID:   sub.ProductID,
		Metadata:    sub.Metadata,
	}
	if err := s.store.CreateInquiry(inq); err != nil {
		return nil, err
	}
	res := &Result{Inquiry: inq}
	if len(items) == 0 {
		return res, nil
	}
	quote, err := s.createQuote(inq, items)
	if err != nil {
		res.QuoteErr = err
		return res, nil
	}
	res.Quote = quote
	return res, nil
}

func (s *Service) createQuote(inq *models.Inquiry, items []cart.LineItem) (*models.Quote, error) {
	quoteItems := make([]models.QuoteItem, 0, len(items))
	currency := "KES"
	for _, it := range items {
		if it.Currency != "" {
			currency = it.Currency
		}
		quoteItems = append(quoteItems, models.QuoteItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Brand:      it.Brand,
			PartNumber: it.PartNumber,
			Price:      it.Price,
			Currency:   it.Currency,
			ImageURL:   it.ImageURL,
			Quantity:   it.Quantity,
		})
	}
	now := s.now()
	var lastErr error
	for i := 0; i < quoteNumberRetries; i++ {
		q := &models.Quote{
			Number:      s.quoteNumber(now),
			InquiryID:   inq.ID,
			Items:       quoteItems,
			TotalAmount: total(items).InexactFloat64(),
			Currency:    currency,
			Status:      "pending",
			ValidUntil:  now.AddDate(0, 0, quoteValidityDays),
		}
		err := s.store.CreateQuote(q)
		if err == nil {
			return q, nil
		}
		lastErr = err
		if err != store.ErrDuplicateQuoteNumber {
			return nil, err
		}
	}
	return nil, lastErr
}

// quoteNumber formats Q-{yyyymmdd}-{0000-9999}. Uniqueness is enforced by
// the store's unique index; callers retry on conflict.
func (s *Service) quoteNumber(now time.Time) string {
	return fmt.Sprintf("Q-%s-%04d", now.Format("20060102"), s.randInt(10000))
}

// total sums price x quantity, counting missing prices as zero.
func total(items []cart.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		if it.Price == nil {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(*it.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

// ValidationError carries field-level violations back to the handler so it
// can render them without a network write having happened.
type ValidationError struct {
	Violations validation.Violations
}

func (e *ValidationError) Error() string { return "validation failed" }
