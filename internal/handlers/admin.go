package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/auth"
	"github.com/wingseng/parts-catalog/httpx"
	"github.com/wingseng/parts-catalog/internal/models"
	"github.com/wingseng/parts-catalog/internal/store"
	"github.com/wingseng/parts-catalog/validation"
)

// AdminHandler covers the back-office: catalog writes and lead review. All
// routes except Login sit behind auth.RequireAdmin.
type AdminHandler struct {
	DB    *gorm.DB
	Leads *store.Leads
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db, Leads: store.NewLeads(db)}
}

// Login checks credentials and sets the signed session cookie.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		in.Email = r.FormValue("email")
		in.Password = r.FormValue("password")
	}
	if in.Email == "" || in.Password == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_credentials", nil)
		return
	}
	var admin models.AdminUser
	if err := h.DB.Where("email = ?", in.Email).First(&admin).Error; err != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)) != nil {
		httpx.JSONError(w, http.StatusUnauthorized, "invalid_credentials", nil)
		return
	}
	auth.CreateSession(w, admin.ID)
	httpx.JSON(w, http.StatusOK, map[string]any{"id": admin.ID, "email": admin.Email, "name": admin.Name})
}

// Logout clears the session cookie.
func (h *AdminHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	auth.ClearSession(w)
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type productInput struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	Brand             string         `json:"brand"`
	Model             string         `json:"model"`
	Category          string         `json:"category"`
	PartNumber        string         `json:"part_number"`
	ShortDescription  string         `json:"short_description"`
	FullDescription   string         `json:"full_description"`
	Specifications    map[string]any `json:"specifications"`
	Price             *float64       `json:"price"`
	Currency          string         `json:"currency"`
	StockQuantity     int            `json:"stock_quantity"`
	LeadTimeDays      *int           `json:"lead_time_days"`
	MinOrderQuantity  int            `json:"min_order_quantity"`
	PrimaryImageURL   string         `json:"primary_image_url"`
	AdditionalImages  []string       `json:"additional_images"`
	Tags              []string       `json:"tags"`
	CompatibleEngines []string       `json:"compatible_engines"`
}

func (in productInput) validate() validation.Violations {
	v := validation.Violations{}
	validation.Required("name", in.Name, v)
	validation.Required("brand", in.Brand, v)
	validation.Required("category", in.Category, v)
	if in.Price != nil && *in.Price < 0 {
		v["price"] = "must_be_non_negative"
	}
	if in.StockQuantity < 0 {
		v["stock_quantity"] = "must_be_non_negative"
	}
	return v
}

// UpsertProduct creates a product, or updates it when an id is supplied.
func (h *AdminHandler) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}
	if v := in.validate(); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	minOrder := in.MinOrderQuantity
	if minOrder < 1 {
		minOrder = 1
	}
	currency := in.Currency
	if currency == "" {
		currency = "KES"
	}
	p := models.Product{
		ID:                in.ID,
		Name:              in.Name,
		Brand:             in.Brand,
		Model:             in.Model,
		Category:          in.Category,
		PartNumber:        in.PartNumber,
		ShortDescription:  in.ShortDescription,
		FullDescription:   in.FullDescription,
		Specifications:    in.Specifications,
		Price:             in.Price,
		Currency:          currency,
		StockQuantity:     in.StockQuantity,
		LeadTimeDays:      in.LeadTimeDays,
		MinOrderQuantity:  minOrder,
		PrimaryImageURL:   in.PrimaryImageURL,
		AdditionalImages:  in.AdditionalImages,
		Tags:              in.Tags,
		CompatibleEngines: in.CompatibleEngines,
	}
	if in.ID == "" {
		if err := h.DB.Create(&p).Error; err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "create_failed", nil)
			return
		}
		httpx.JSON(w, http.StatusCreated, p)
		return
	}
	var existing models.Product
	if err := h.DB.First(&existing, "id = ?", in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "fetch_failed", nil)
		return
	}
	p.Status = existing.Status
	p.CreatedAt = existing.CreatedAt
	if err := h.DB.Model(&existing).Select("*").Omit("created_at").Updates(p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "update_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, p)
}

// DeactivateProduct hides a product from the public site without deleting its
// row; past quotes keep referring to it.
func (h *AdminHandler) DeactivateProduct(w http.ResponseWriter, r *http.Request) {
	id := r.FormValue("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	res := h.DB.Model(&models.Product{}).Where("id = ?", id).Update("status", models.ProductStatusInactive)
	if res.Error != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "update_failed", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"status": "inactive"})
}

func limitParam(r *http.Request) int {
	n, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return n
}

// Inquiries lists recent leads, newest first.
func (h *AdminHandler) Inquiries(w http.ResponseWriter, r *http.Request) {
	out, err := h.Leads.Inquiries(limitParam(r))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": out, "total": len(out)})
}

// Quotes lists recent quotes with their line items.
func (h *AdminHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	out, err := h.Leads.Quotes(limitParam(r))
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "list_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": out, "total": len(out)})
}
