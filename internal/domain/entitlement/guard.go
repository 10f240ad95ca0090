package entitlement

import (
	"context"
	"net/http"
	"time"

	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
)

// AccountLookup evita importar users desde acá.
type AccountLookup interface {
	AccountOf(ctx context.Context, userID int64) (Account, error)
}

// Guard corta con 402 a los usuarios sin suscripción ni trial vigente.
type Guard struct {
	accounts AccountLookup
	now      func() time.Time
}

func NewGuard(accounts AccountLookup) *Guard {
	return &Guard{accounts: accounts, now: time.Now}
}

// WithClock reemplaza el reloj del guard.
func (g *Guard) WithClock(now func() time.Time) *Guard {
	g.now = now
	return g
}

// RequireActive exige sesión (401) y cuenta habilitada (402), también para admins.
func (g *Guard) RequireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		acct, err := g.accounts.AccountOf(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "Não autenticado")
			return
		}
		if !IsSubscriptionActive(acct, g.now()) {
			httpx.WriteError(w, http.StatusPaymentRequired, "Seu período de teste expirou. Assine para continuar usando o sistema.")
			return
		}

		next.ServeHTTP(w, r)
	})
}
