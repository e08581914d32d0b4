package leads

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/internal/cart"
	"github.com/wingseng/parts-catalog/internal/models"
	"github.com/wingseng/parts-catalog/internal/store"
)

func setupLeadsTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := conn.AutoMigrate(&models.Product{}, &models.Inquiry{}, &models.Quote{}, &models.QuoteItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func fp(v float64) *float64 { return &v }

func testItems() []cart.LineItem {
	return []cart.LineItem{
		{ProductID: "p1", Name: "Oil Filter", Brand: "Lister Petter", PartNumber: "LP-201", Price: fp(1000), Currency: "KES", Quantity: 1},
		{ProductID: "p2", Name: "Fuel Pump", Brand: "Perkins", PartNumber: "PK-88", Price: fp(5000), Currency: "KES", Quantity: 3},
	}
}

func TestValidateRejectsMissingFields(t *testing.T) {
	svc := NewService(store.NewLeads(setupLeadsTestDB(t)))
	v := svc.Validate(Submission{})
	for _, field := range []string{"name", "message", "contact"} {
		if _, ok := v[field]; !ok {
			t.Fatalf("expected violation for %s, got %v", field, v)
		}
	}
	v = svc.Validate(Submission{Name: "Jane", Message: "hello", Phone: "+254700000000", RequestType: "spam"})
	if v["request_type"] != "invalid_value" {
		t.Fatalf("expected request_type violation, got %v", v)
	}
}

func TestSubmitWithoutCartCreatesInquiryOnly(t *testing.T) {
	conn := setupLeadsTestDB(t)
	svc := NewService(store.NewLeads(conn))
	res, err := svc.Submit(Submission{Name: "Jane", Email: "jane@example.com", Message: "Need servicing", RequestType: "service"}, nil)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Inquiry == nil || res.Inquiry.ID == 0 {
		t.Fatalf("inquiry not persisted: %+v", res)
	}
	if res.Quote != nil {
		t.Fatalf("no quote expected for empty cart")
	}
	var count int64
	conn.Model(&models.Quote{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected zero quotes, got %d", count)
	}
}

func TestSubmitValidationFailureWritesNothing(t *testing.T) {
	conn := setupLeadsTestDB(t)
	svc := NewService(store.NewLeads(conn))
	_, err := svc.Submit(Submission{Name: "Jane"}, testItems())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	var count int64
	conn.Model(&models.Inquiry{}).Count(&count)
	if count != 0 {
		t.Fatalf("validation failure must not write, got %d inquiries", count)
	}
}

func TestSubmitWithCartDerivesQuote(t *testing.T) {
	conn := setupLeadsTestDB(t)
	svc := NewService(store.NewLeads(conn))
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	svc.randInt = func(int) int { return 42 }

	res, err := svc.Submit(Submission{Name: "Jane", Phone: "+254700000000", Message: "Quote please", RequestType: "quote"}, testItems())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.QuoteErr != nil {
		t.Fatalf("quote err: %v", res.QuoteErr)
	}
	q := res.Quote
	if q == nil {
		t.Fatalf("expected a derived quote")
	}
	if q.Number != "Q-20260315-0042" {
		t.Fatalf("unexpected quote number %s", q.Number)
	}
	if q.TotalAmount != 16000 {
		t.Fatalf("expected total 16000, got %v", q.TotalAmount)
	}
	if q.InquiryID != res.Inquiry.ID {
		t.Fatalf("quote not linked to inquiry")
	}
	if !q.ValidUntil.Equal(time.Date(2026, 4, 14, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected validity window: %v", q.ValidUntil)
	}
	if len(q.Items) != 2 || q.Items[0].Name != "Oil Filter" {
		t.Fatalf("line items not snapshotted: %+v", q.Items)
	}
}

func TestQuoteNumberCollisionRetries(t *testing.T) {
	conn := setupLeadsTestDB(t)
	svc := NewService(store.NewLeads(conn))
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }
	seq := []int{7, 7, 8} // first retry collides again, second succeeds
	svc.randInt = func(int) int {
		n := seq[0]
		if len(seq) > 1 {
			seq = seq[1:]
		}
		return n
	}

	// Occupy Q-20260315-0007 with a pre-existing quote.
	first := models.Inquiry{Name: "X", Phone: "1", Message: "m", RequestType: "quote"}
	if err := conn.Create(&first).Error; err != nil {
		t.Fatalf("seed inquiry: %v", err)
	}
	if err := conn.Create(&models.Quote{Number: "Q-20260315-0007", InquiryID: first.ID, Status: "pending", Currency: "KES", ValidUntil: time.Now()}).Error; err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	res, err := svc.Submit(Submission{Name: "Jane", Phone: "+254700000000", Message: "Quote", RequestType: "quote"}, testItems())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.QuoteErr != nil {
		t.Fatalf("expected retry to succeed, got %v", res.QuoteErr)
	}
	if res.Quote.Number != "Q-20260315-0008" {
		t.Fatalf("expected retried number 0008, got %s", res.Quote.Number)
	}
}

func TestQuoteNumberFormat(t *testing.T) {
	svc := NewService(store.NewLeads(setupLeadsTestDB(t)))
	svc.randInt = func(int) int { return 3 }
	n := svc.quoteNumber(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	if n != "Q-20260102-0003" {
		t.Fatalf("unexpected number %s", n)
	}
	if !strings.HasPrefix(n, "Q-") {
		t.Fatalf("missing prefix: %s", n)
	}
}
