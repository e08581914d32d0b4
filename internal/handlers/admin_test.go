package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/internal/models"
)

func seedAdmin(t *testing.T, db *gorm.DB) models.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	admin := models.AdminUser{Email: "admin@example.com", PasswordHash: string(hash), Name: "Admin"}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("seed admin: %v", err)
	}
	return admin
}

func TestAdminLogin(t *testing.T) {
	db := setupTestDB(t)
	seedAdmin(t, db)
	h := NewAdminHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"email":"admin@example.com","password":"secret"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.Login(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	var session bool
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin_session" && c.Value != "" {
			session = true
		}
	}
	if !session {
		t.Fatalf("no session cookie set")
	}

	bad := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(`{"email":"admin@example.com","password":"wrong"}`))
	bad.Header.Set("Content-Type", "application/json")
	wbad := httptest.NewRecorder()
	h.Login(wbad, bad)
	if wbad.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", wbad.Code)
	}
}

func TestAdminUpsertProduct(t *testing.T) {
	db := setupTestDB(t)
	h := NewAdminHandler(db)

	body := `{"name":"Starter Motor","brand":"Lister Petter","category":"electrical","part_number":"LP-900","price":12500,"stock_quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.UpsertProduct(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}
	var created models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == "" || created.MinOrderQuantity != 1 || created.Currency != "KES" {
		t.Fatalf("defaults not applied: %+v", created)
	}

	// Update through the same endpoint.
	update := `{"id":"` + created.ID + `","name":"Starter Motor 12V","brand":"Lister Petter","category":"electrical","stock_quantity":5}`
	req2 := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(update))
	req2.Header.Set("Content-Type", "application/json")
	w2 := httptest.NewRecorder()
	h.UpsertProduct(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w2.Code, w2.Body.String())
	}
	var stored models.Product
	if err := db.First(&stored, "id = ?", created.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Name != "Starter Motor 12V" || stored.StockQuantity != 5 {
		t.Fatalf("update not applied: %+v", stored)
	}
}

func TestAdminUpsertValidation(t *testing.T) {
	db := setupTestDB(t)
	h := NewAdminHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/admin/products", strings.NewReader(`{"name":"X"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.UpsertProduct(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestAdminDeactivateProduct(t *testing.T) {
	db := setupTestDB(t)
	p := seedOneProduct(t, db)
	h := NewAdminHandler(db)

	req := httptest.NewRequest(http.MethodPost, "/admin/products/deactivate?id="+p.ID, nil)
	w := httptest.NewRecorder()
	h.DeactivateProduct(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var stored models.Product
	if err := db.First(&stored, "id = ?", p.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if stored.Status != models.ProductStatusInactive {
		t.Fatalf("expected inactive, got %s", stored.Status)
	}
}

func TestAdminInquiriesList(t *testing.T) {
	db := setupTestDB(t)
	h := NewAdminHandler(db)
	if err := db.Create(&models.Inquiry{Name: "Jane", Phone: "1", Message: "hello", RequestType: "general"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/inquiries", nil)
	w := httptest.NewRecorder()
	h.Inquiries(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var payload struct {
		Items []models.Inquiry `json:"items"`
		Total int              `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Total != 1 || payload.Items[0].Name != "Jane" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
