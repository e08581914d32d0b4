package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/wingseng/parts-catalog/auth"
	"github.com/wingseng/parts-catalog/httpx"
	"github.com/wingseng/parts-catalog/internal/cart"
	"github.com/wingseng/parts-catalog/internal/config"
	"github.com/wingseng/parts-catalog/internal/handlers"
	"github.com/wingseng/parts-catalog/internal/leads"
	"github.com/wingseng/parts-catalog/internal/middleware"
	"github.com/wingseng/parts-catalog/internal/models"
	"github.com/wingseng/parts-catalog/internal/store"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	// RequireAdmin double-checks that the session still maps to a live
	// admin account.
	auth.SetAdminVerifier(func(_ context.Context, id uint) bool {
		var count int64
		if err := db.Model(&models.AdminUser{}).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	catalogStore := store.NewCatalog(db)
	leadsStore := store.NewLeads(db)
	carts := cart.NewStore()
	leadsSvc := leads.NewService(leadsStore)

	site := handlers.NewSiteHandler(catalogStore, cfg)
	products := handlers.NewProductHandler(catalogStore, cfg)
	cartH := handlers.NewCartHandler(carts, catalogStore)
	contact := handlers.NewContactHandler(leadsSvc, carts, cfg)
	admin := handlers.NewAdminHandler(db)

	// --- Health endpoints ---
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Public site ---
	mux.HandleFunc("/", site.Home)
	mux.HandleFunc("/products", onlyMethod(http.MethodGet, products.List))
	mux.HandleFunc("/products/view", onlyMethod(http.MethodGet, products.Show))
	mux.HandleFunc("/api/compatibility", onlyMethod(http.MethodGet, products.Compatibility))
	mux.HandleFunc("/api/content", onlyMethod(http.MethodGet, site.Content))

	// --- Quote cart ---
	mux.HandleFunc("/cart", onlyMethod(http.MethodGet, cartH.View))
	mux.HandleFunc("/cart/items", onlyMethod(http.MethodPost, cartH.Add))
	mux.HandleFunc("/cart/items/update", onlyMethod(http.MethodPost, cartH.Update))
	mux.HandleFunc("/cart/items/delete", onlyMethod(http.MethodPost, cartH.Remove))
	mux.HandleFunc("/cart/clear", onlyMethod(http.MethodPost, cartH.Clear))

	// --- Contact / lead submission ---
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			contact.Show(w, r)
		case http.MethodPost:
			contact.Submit(w, r)
		default:
			w.Header().Set("Allow", "GET,POST")
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		}
	})

	// --- Admin ---
	mux.HandleFunc("/admin/login", onlyMethod(http.MethodPost, admin.Login))
	mux.Handle("/admin/logout", protect(http.HandlerFunc(admin.Logout)))
	mux.Handle("/admin/products", protect(onlyMethod(http.MethodPost, admin.UpsertProduct)))
	mux.Handle("/admin/products/deactivate", protect(onlyMethod(http.MethodPost, admin.DeactivateProduct)))
	mux.Handle("/admin/inquiries", protect(onlyMethod(http.MethodGet, admin.Inquiries)))
	mux.Handle("/admin/quotes", protect(onlyMethod(http.MethodGet, admin.Quotes)))

	// Static assets
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return middleware.Prefs(withRecover(withLogging(mux)))
}

func onlyMethod(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
			return
		}
		h(w, r)
	}
}

func protect(h http.Handler) http.Handler {
	return auth.Middleware(auth.RequireAdmin(h))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
