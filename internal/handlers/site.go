package handlers

import (
	"net/http"
	"strings"

	"github.com/wingseng/parts-catalog/httpx"
	"github.com/wingseng/parts-catalog/internal/config"
	"github.com/wingseng/parts-catalog/internal/content"
	"github.com/wingseng/parts-catalog/internal/links"
	"github.com/wingseng/parts-catalog/internal/middleware"
	"github.com/wingseng/parts-catalog/internal/store"
	"github.com/wingseng/parts-catalog/view"
)

// SiteHandler serves the landing page and shared static content.
type SiteHandler struct {
	Catalog *store.Catalog
	Cfg     config.Config
}

func NewSiteHandler(catalog *store.Catalog, cfg config.Config) *SiteHandler {
	return &SiteHandler{Catalog: catalog, Cfg: cfg}
}

// baseData injects the values layout.html always expects: outbound contact
// links, the resolved language and any pending flash message.
func baseData(w http.ResponseWriter, r *http.Request, cfg config.Config, data map[string]any) map[string]any {
	if data == nil {
		data = map[string]any{}
	}
	data["Lang"] = middleware.LangFrom(r)
	data["WhatsAppLink"] = links.WhatsApp(cfg.WhatsAppNumber, "Hi, I'd like to make an inquiry.")
	data["TelLink"] = links.Tel(cfg.ContactPhone)
	data["MailtoLink"] = links.Mailto(cfg.ContactEmail)
	data["Flash"] = middleware.PopFlash(w, r)
	return data
}

func wantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") || accept == ""
}

// Content serves the static site content as JSON for API consumers.
func (h *SiteHandler) Content(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]any{
		"services":     content.Services,
		"portfolio":    content.Portfolio,
		"testimonials": content.Testimonials,
		"partners":     content.Partners,
	})
}

// Home renders the landing page: hero, services, featured products,
// portfolio, testimonials and partners.
func (h *SiteHandler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	featured, err := h.Catalog.Fetch(store.FetchOptions{Limit: 4})
	if err != nil {
		// The landing page still renders without the featured strip.
		featured = nil
	}
	data := baseData(w, r, h.Cfg, map[string]any{
		"Services":     content.Services,
		"Featured":     featured,
		"Portfolio":    content.Portfolio,
		"Testimonials": content.Testimonials,
		"Partners":     content.Partners,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, r, "index.html", data); err != nil {
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}
