package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/wingseng/parts-catalog/httpx"
	"github.com/wingseng/parts-catalog/i18n"
	"github.com/wingseng/parts-catalog/internal/cart"
	"github.com/wingseng/parts-catalog/internal/config"
	"github.com/wingseng/parts-catalog/internal/leads"
	"github.com/wingseng/parts-catalog/internal/middleware"
	"github.com/wingseng/parts-catalog/internal/models"
	"github.com/wingseng/parts-catalog/view"
)

// ContactHandler serves the contact form and turns submissions into inquiry
// and quote records.
type ContactHandler struct {
	Leads *leads.Service
	Carts *cart.Store
	Cfg   config.Config
}

func NewContactHandler(svc *leads.Service, carts *cart.Store, cfg config.Config) *ContactHandler {
	return &ContactHandler{Leads: svc, Carts: carts, Cfg: cfg}
}

func (h *ContactHandler) formData(w http.ResponseWriter, r *http.Request, sub leads.Submission, violations map[string]string) map[string]any {
	sid := sessionID(w, r)
	items := h.Carts.Snapshot(sid)
	var total string
	if len(items) > 0 {
		h.Carts.Do(sid, func(c *cart.Cart) { total = c.Total().StringFixed(2) })
	}
	return baseData(w, r, h.Cfg, map[string]any{
		"Title":        "Contact",
		"Form":         sub,
		"Errors":       violations,
		"Cart":         items,
		"CartTotal":    total,
		"RequestTypes": models.RequestTypes,
	})
}

// Show renders the contact form with the current quote list.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, r, "contact.html", h.formData(w, r, leads.Submission{}, nil)); err != nil {
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}

func submissionFromRequest(r *http.Request) (leads.Submission, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var in struct {
			Name        string  `json:"name"`
			Email       string  `json:"email"`
			Phone       string  `json:"phone"`
			Company     string  `json:"company"`
			Subject     string  `json:"subject"`
			Location    string  `json:"location"`
			Message     string  `json:"message"`
			RequestType string  `json:"request_type"`
			ProductID   *string `json:"product_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			return leads.Submission{}, err
		}
		return leads.Submission{
			Name: in.Name, Email: in.Email, Phone: in.Phone, Company: in.Company,
			Subject: in.Subject, Location: in.Location, Message: in.Message,
			RequestType: in.RequestType, ProductID: in.ProductID,
		}, nil
	}
	if err := r.ParseForm(); err != nil {
		return leads.Submission{}, err
	}
	sub := leads.Submission{
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Phone:       r.FormValue("phone"),
		Company:     r.FormValue("company"),
		Subject:     r.FormValue("subject"),
		Location:    r.FormValue("location"),
		Message:     r.FormValue("message"),
		RequestType: r.FormValue("request_type"),
	}
	if pid := r.FormValue("product_id"); pid != "" {
		sub.ProductID = &pid
	}
	return sub, nil
}

// Submit persists the inquiry and, when the quote list is non-empty, derives
// a quote from it. A failed quote write does not undo the inquiry.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	sub, err := submissionFromRequest(r)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_request", nil)
		return
	}
	sid := sessionID(w, r)
	items := h.Carts.Snapshot(sid)

	res, err := h.Leads.Submit(sub, items)
	if err != nil {
		var verr *leads.ValidationError
		if errors.As(err, &verr) {
			if wantsHTML(r) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusBadRequest)
				if rerr := view.Render(w, r, "contact.html", h.formData(w, r, sub, verr.Violations)); rerr != nil {
					http.Error(w, "template render error", http.StatusInternalServerError)
				}
				return
			}
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", verr.Violations)
			return
		}
		if wantsHTML(r) {
			middleware.Flash(w, r, i18n.ErrSubmitFailed)
			http.Redirect(w, r, "/contact", http.StatusSeeOther)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "submit_failed", nil)
		return
	}

	// The submission went through; the quote list has served its purpose.
	h.Carts.Drop(sid)

	if wantsHTML(r) {
		if res.Quote != nil {
			middleware.Flash(w, r, i18n.QuoteCreated)
		} else {
			middleware.Flash(w, r, i18n.ContactSuccess)
		}
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}
	body := map[string]any{"inquiry_id": res.Inquiry.ID}
	if res.Quote != nil {
		body["quote_number"] = res.Quote.Number
		body["quote_total"] = res.Quote.TotalAmount
		body["valid_until"] = res.Quote.ValidUntil
	}
	if res.QuoteErr != nil {
		// Inquiry stands; the quote did not. Callers see the partial outcome.
		body["quote_error"] = "quote_not_created"
	}
	httpx.JSON(w, http.StatusCreated, body)
}
