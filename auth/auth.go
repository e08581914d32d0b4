package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Signed-cookie sessions for the admin catalog surface. The public site never
// authenticates; only /admin routes pass through RequireAdmin.

type ctxKey string

const (
	sessionCookieName = "admin_session"
	adminIDCtxKey     = ctxKey("adminID")
)

// AdminVerifier validates that a session still refers to an existing admin
// account. Set during bootstrap via SetAdminVerifier; nil skips the check.
type AdminVerifier func(ctx context.Context, id uint) bool

var verifier AdminVerifier

func SetAdminVerifier(v AdminVerifier) { verifier = v }

// Secret returns SESSION_SECRET or a default dev value.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "devsessionsecret"
}

func sign(payload string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession sets a signed cookie carrying the admin id.
func CreateSession(w http.ResponseWriter, adminID uint) {
	idStr := strconv.FormatUint(uint64(adminID), 10)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    idStr + "." + sign(idStr),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession validates the cookie signature and returns the admin id.
func ParseSession(r *http.Request) (uint, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return 0, false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return 0, false
	}
	idStr, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(sign(idStr))) {
		return 0, false
	}
	id64, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id64), true
}

// WithAdminID stores the admin id in context.
func WithAdminID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, adminIDCtxKey, id)
}

// AdminIDFromContext extracts the admin id.
func AdminIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(adminIDCtxKey).(uint)
	return id, ok
}

// Middleware attaches the admin id to the request context if a valid session
// cookie is present.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := ParseSession(r); ok {
			r = r.WithContext(WithAdminID(r.Context(), id))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects unauthenticated requests with 401 JSON.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := AdminIDFromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		if verifier != nil && !verifier(r.Context(), id) {
			// Session refers to a deleted account: clear and reject.
			ClearSession(w)
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
}
