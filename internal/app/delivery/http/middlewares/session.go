package middlewares

import (
	"context"
	"mediplant-service/internal/pkg/constvars"
	"net/http"
	"strings"
)

// CartSession lifts the X-Cart-Session header into the request context. The
// header is the browsing session's identity; handlers that need it reject
// requests where it is absent.
func (m *Middlewares) CartSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := strings.TrimSpace(r.Header.Get(constvars.HeaderXCartSession))
		if sessionID != "" {
			ctx := context.WithValue(r.Context(), constvars.CONTEXT_CART_SESSION_KEY, sessionID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
