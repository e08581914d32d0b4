package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wingseng/parts-catalog/internal/store"
)

func TestHomeRendersLanding(t *testing.T) {
	db := setupTestDB(t)
	seedProducts(t, db)
	h := NewSiteHandler(store.NewCatalog(db), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html")
	w := httptest.NewRecorder()
	h.Home(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Wings Engineering") {
		t.Fatalf("landing page missing brand text")
	}
}

func TestHomeUnknownPathIs404(t *testing.T) {
	db := setupTestDB(t)
	h := NewSiteHandler(store.NewCatalog(db), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	h.Home(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}

func TestContentJSON(t *testing.T) {
	db := setupTestDB(t)
	h := NewSiteHandler(store.NewCatalog(db), testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/content", nil)
	w := httptest.NewRecorder()
	h.Content(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var payload struct {
		Services []struct {
			Name   string `json:"name"`
			NameSW string `json:"name_sw"`
		} `json:"services"`
		Partners []struct {
			Name string `json:"name"`
		} `json:"partners"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Services) == 0 || payload.Services[0].NameSW == "" {
		t.Fatalf("services missing bilingual names: %+v", payload.Services)
	}
	if len(payload.Partners) == 0 {
		t.Fatalf("partners missing")
	}
}
