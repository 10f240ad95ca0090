package middleware

import (
	"context"
	"net/http"
	"strings"

	"vetstock/internal/platform/httpx"
	"vetstock/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// AuthContext:
// - Lee la cookie de sesión y, si el verifier la acepta, setea claims en el contexto.
// - Cookie ausente, vencida o inválida => la request sigue sin claims.
// - No corta: RequireAuth y los handlers deciden 401/403.
func AuthContext(verifier auth.SessionVerifier, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if verifier == nil {
				next.ServeHTTP(w, r)
				return
			}

			c, err := r.Cookie(cookieName)
			if err != nil || strings.TrimSpace(c.Value) == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := verifier.Verify(r.Context(), c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// RequireAuth corta con 401 si no hay usuario en el contexto.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetClaims(r.Context()); !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	if !ok || c.UserID == 0 {
		return auth.Claims{}, false
	}
	return c, true
}
