package handlers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/httpx"
	"github.com/wingseng/parts-catalog/i18n"
	"github.com/wingseng/parts-catalog/internal/catalog"
	"github.com/wingseng/parts-catalog/internal/config"
	"github.com/wingseng/parts-catalog/internal/links"
	"github.com/wingseng/parts-catalog/internal/middleware"
	"github.com/wingseng/parts-catalog/internal/store"
	"github.com/wingseng/parts-catalog/view"
)

// fetchCap bounds how many active rows one catalog view pulls before
// in-memory filtering.
const fetchCap = 200

type ProductHandler struct {
	Catalog *store.Catalog
	Cfg     config.Config
}

func NewProductHandler(catalog *store.Catalog, cfg config.Config) *ProductHandler {
	return &ProductHandler{Catalog: catalog, Cfg: cfg}
}

func parseCriteria(q url.Values, prefix string) catalog.Criteria {
	c := catalog.Criteria{
		Search:   q.Get(prefix + "q"),
		Category: q.Get(prefix + "category"),
		Brand:    q.Get(prefix + "brand"),
		Stock:    catalog.StockFilter(q.Get(prefix + "stock")),
		Sort:     catalog.Sort(q.Get(prefix + "sort")),
		PageSize: catalog.DefaultPageSize,
	}
	if c.Stock == "" {
		c.Stock = catalog.StockAll
	}
	if c.Sort == "" {
		c.Sort = catalog.SortRelevance
	}
	if prefix == "" {
		if n, err := strconv.Atoi(q.Get("page")); err == nil {
			c.Page = n
		}
	}
	return c
}

// pageURL rebuilds the catalog URL for page n, carrying the current criteria
// as both the live and the previous values so paging alone never resets.
func pageURL(c catalog.Criteria, n int) string {
	v := url.Values{}
	set := func(key, val string) {
		if val != "" {
			v.Set(key, val)
			v.Set("prev_"+key, val)
		}
	}
	set("q", c.Search)
	set("category", c.Category)
	set("brand", c.Brand)
	set("stock", string(c.Stock))
	set("sort", string(c.Sort))
	v.Set("page", strconv.Itoa(n))
	return "/products?" + v.Encode()
}

// List serves the catalog: filter, sort and paginate. Changing any criterion
// other than the page snaps back to page one; the previous criteria travel in
// prev_* parameters so the comparison happens server side.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := parseCriteria(q, "")
	if q.Has("prev_q") || q.Has("prev_category") || q.Has("prev_brand") || q.Has("prev_stock") || q.Has("prev_sort") {
		prev := parseCriteria(q, "prev_")
		criteria = catalog.ResetPage(prev, criteria)
	}

	candidates, err := h.Catalog.Fetch(store.FetchOptions{Limit: fetchCap})
	if err != nil {
		h.listError(w, r, criteria)
		return
	}
	matched := catalog.Apply(candidates, criteria)
	items, page, totalPages := catalog.Paginate(matched, criteria.Page, criteria.PageSize)

	if !wantsHTML(r) {
		httpx.JSON(w, http.StatusOK, httpx.Page{
			Items:      items,
			Total:      len(matched),
			Page:       page,
			PageSize:   criteria.PageSize,
			TotalPages: totalPages,
		})
		return
	}

	categories, _ := h.Catalog.Categories()
	brands, _ := h.Catalog.Brands()
	data := baseData(w, r, h.Cfg, map[string]any{
		"Title":      "Products",
		"Products":   items,
		"Criteria":   criteria,
		"Stock":      string(criteria.Stock),
		"Sort":       string(criteria.Sort),
		"Page":       page,
		"TotalPages": totalPages,
		"Total":      len(matched),
		"Categories": categories,
		"Brands":     brands,
		"PrevURL":    pageURL(criteria, page-1),
		"NextURL":    pageURL(criteria, page+1),
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.Render(w, r, "products.html", data); err != nil {
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}

// listError distinguishes "could not search" from "no matches": the former is
// an error state, never an empty catalog page.
func (h *ProductHandler) listError(w http.ResponseWriter, r *http.Request, criteria catalog.Criteria) {
	if !wantsHTML(r) {
		httpx.JSONError(w, http.StatusInternalServerError, "search_failed", nil)
		return
	}
	data := baseData(w, r, h.Cfg, map[string]any{
		"Title":      "Products",
		"Criteria":   criteria,
		"Stock":      string(criteria.Stock),
		"Sort":       string(criteria.Sort),
		"Page":       1,
		"TotalPages": 0,
		"Error":      i18n.T(middleware.LangFrom(r), i18n.ErrSearchFailed),
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if err := view.Render(w, r, "products.html", data); err != nil {
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}

// Show serves one product with its outbound quote links.
func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_id", nil)
		return
	}
	p, err := h.Catalog.ByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "fetch_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"product":       p,
		"whatsapp_link": links.WhatsApp(h.Cfg.WhatsAppNumber, links.ProductQuoteMessage(*p)),
		"tel_link":      links.Tel(h.Cfg.ContactPhone),
	})
}

// Compatibility answers the engine finder: which parts fit a given engine
// model. A store failure is an error response, not an empty result.
func (h *ProductHandler) Compatibility(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	engine := q.Get("engine")
	candidates, err := h.Catalog.Fetch(store.FetchOptions{
		Category: q.Get("category"),
		Limit:    fetchCap,
	})
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "search_failed", nil)
		return
	}
	matched := catalog.FilterCompatible(candidates, engine)
	resp := map[string]any{"items": matched, "total": len(matched)}
	if len(matched) == 0 && engine != "" {
		resp["sourcing_link"] = links.WhatsApp(h.Cfg.WhatsAppNumber, links.SourcingMessage(engine))
	}
	httpx.JSON(w, http.StatusOK, resp)
}
