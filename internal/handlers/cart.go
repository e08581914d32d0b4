package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/httpx"
	"github.com/wingseng/parts-catalog/internal/cart"
	"github.com/wingseng/parts-catalog/internal/store"
)

const cartCookieName = "cart_session"

// CartHandler manages the per-session quote list. Carts never touch the
// database; they are folded into an inquiry on submission.
type CartHandler struct {
	Carts   *cart.Store
	Catalog *store.Catalog
}

func NewCartHandler(carts *cart.Store, catalog *store.Catalog) *CartHandler {
	return &CartHandler{Carts: carts, Catalog: catalog}
}

// sessionID returns the cart session id, minting a cookie on first use.
func sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cartCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400 * 30,
	})
	return id
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, sid string) {
	if wantsHTML(r) {
		target := r.Header.Get("Referer")
		if target == "" {
			target = "/products"
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	h.writeCart(w, sid)
}

func (h *CartHandler) writeCart(w http.ResponseWriter, sid string) {
	var items []cart.LineItem
	var total string
	h.Carts.Do(sid, func(c *cart.Cart) {
		items = c.Items()
		total = c.Total().StringFixed(2)
	})
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

// Add puts a product in the cart. A repeat add of the same product merges
// into the existing line item instead of duplicating it.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	if productID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_product_id", nil)
		return
	}
	qty := 1
	if n, err := strconv.Atoi(r.FormValue("quantity")); err == nil && n > 0 {
		qty = n
	}
	p, err := h.Catalog.ByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpx.JSONError(w, http.StatusNotFound, "product_not_found", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "fetch_failed", nil)
		return
	}
	sid := sessionID(w, r)
	h.Carts.Do(sid, func(c *cart.Cart) {
		c.Add(*p)
		if qty > 1 {
			for _, it := range c.Items() {
				if it.ProductID == p.ID {
					c.UpdateQuantity(p.ID, it.Quantity+qty-1)
					break
				}
			}
		}
	})
	h.respond(w, r, sid)
}

// Update sets the absolute quantity for a line item; zero removes it.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	if productID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_product_id", nil)
		return
	}
	qty, err := strconv.Atoi(r.FormValue("quantity"))
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_quantity", nil)
		return
	}
	sid := sessionID(w, r)
	h.Carts.Do(sid, func(c *cart.Cart) { c.UpdateQuantity(productID, qty) })
	h.respond(w, r, sid)
}

// Remove drops a line item.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	if productID == "" {
		httpx.JSONError(w, http.StatusBadRequest, "missing_product_id", nil)
		return
	}
	sid := sessionID(w, r)
	h.Carts.Do(sid, func(c *cart.Cart) { c.Remove(productID) })
	h.respond(w, r, sid)
}

// View returns the cart contents as JSON.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, sessionID(w, r))
}

// Clear empties the session's cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sid := sessionID(w, r)
	h.Carts.Drop(sid)
	h.respond(w, r, sid)
}
