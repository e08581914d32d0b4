package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/wingseng/parts-catalog/internal/cart"
	"github.com/wingseng/parts-catalog/internal/models"
	"github.com/wingseng/parts-catalog/internal/store"
	"gorm.io/gorm"
)

type cartPayload struct {
	Items []cart.LineItem `json:"items"`
	Total string          `json:"total"`
}

func postForm(t *testing.T, h http.HandlerFunc, path string, form url.Values, cookies []*http.Cookie) (*httptest.ResponseRecorder, cartPayload) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h(w, req)
	var payload cartPayload
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return w, payload
}

func seedOneProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	p := models.Product{Name: "Oil Filter", Brand: "Lister Petter", Category: "filters", PartNumber: "LP-201", Price: price(1500), StockQuantity: 5}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return p
}

func TestCartAddMergesDuplicates(t *testing.T) {
	db := setupTestDB(t)
	p := seedOneProduct(t, db)
	h := NewCartHandler(cart.NewStore(), store.NewCatalog(db))

	form := url.Values{"product_id": {p.ID}}
	w, payload := postForm(t, h.Add, "/cart/items", form, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	if len(payload.Items) != 1 || payload.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart: %+v", payload)
	}
	cookies := w.Result().Cookies()

	_, payload = postForm(t, h.Add, "/cart/items", form, cookies)
	if len(payload.Items) != 1 || payload.Items[0].Quantity != 2 {
		t.Fatalf("repeat add should merge, got %+v", payload)
	}
}

func TestCartAddWithQuantity(t *testing.T) {
	db := setupTestDB(t)
	p := seedOneProduct(t, db)
	h := NewCartHandler(cart.NewStore(), store.NewCatalog(db))

	form := url.Values{"product_id": {p.ID}, "quantity": {"4"}}
	_, payload := postForm(t, h.Add, "/cart/items", form, nil)
	if len(payload.Items) != 1 || payload.Items[0].Quantity != 4 {
		t.Fatalf("expected quantity 4, got %+v", payload)
	}
	if payload.Total != "6000.00" {
		t.Fatalf("expected total 6000.00, got %s", payload.Total)
	}
}

func TestCartUpdateAndRemove(t *testing.T) {
	db := setupTestDB(t)
	p := seedOneProduct(t, db)
	h := NewCartHandler(cart.NewStore(), store.NewCatalog(db))

	w, _ := postForm(t, h.Add, "/cart/items", url.Values{"product_id": {p.ID}}, nil)
	cookies := w.Result().Cookies()

	_, payload := postForm(t, h.Update, "/cart/items/update", url.Values{"product_id": {p.ID}, "quantity": {"7"}}, cookies)
	if payload.Items[0].Quantity != 7 {
		t.Fatalf("expected quantity 7, got %+v", payload)
	}

	_, payload = postForm(t, h.Update, "/cart/items/update", url.Values{"product_id": {p.ID}, "quantity": {"0"}}, cookies)
	if len(payload.Items) != 0 {
		t.Fatalf("quantity 0 should remove, got %+v", payload)
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	db := setupTestDB(t)
	p := seedOneProduct(t, db)
	h := NewCartHandler(cart.NewStore(), store.NewCatalog(db))

	w, _ := postForm(t, h.Add, "/cart/items", url.Values{"product_id": {p.ID}}, nil)
	first := w.Result().Cookies()

	// A request with no cookie gets a fresh, empty cart.
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	h.View(rec, req)
	var fresh cartPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &fresh); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(fresh.Items) != 0 {
		t.Fatalf("new session should start empty, got %+v", fresh)
	}

	// The original session still has its item.
	req2 := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req2.Header.Set("Accept", "application/json")
	for _, c := range first {
		req2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	h.View(rec2, req2)
	var kept cartPayload
	if err := json.Unmarshal(rec2.Body.Bytes(), &kept); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(kept.Items) != 1 {
		t.Fatalf("original session lost its cart: %+v", kept)
	}
}

func TestCartClear(t *testing.T) {
	db := setupTestDB(t)
	p := seedOneProduct(t, db)
	h := NewCartHandler(cart.NewStore(), store.NewCatalog(db))

	w, _ := postForm(t, h.Add, "/cart/items", url.Values{"product_id": {p.ID}}, nil)
	cookies := w.Result().Cookies()

	_, payload := postForm(t, h.Clear, "/cart/clear", url.Values{}, cookies)
	if len(payload.Items) != 0 {
		t.Fatalf("clear left items behind: %+v", payload)
	}
}

func TestCartAddUnknownProduct(t *testing.T) {
	db := setupTestDB(t)
	h := NewCartHandler(cart.NewStore(), store.NewCatalog(db))

	w, _ := postForm(t, h.Add, "/cart/items", url.Values{"product_id": {"nope"}}, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
