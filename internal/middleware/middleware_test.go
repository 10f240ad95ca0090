package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetstock/internal/platform/logger"
	"vetstock/internal/ports/auth"
)

type fakeVerifier map[string]auth.Claims

func (f fakeVerifier) Verify(_ context.Context, sid string) (auth.Claims, error) {
	c, ok := f[sid]
	if !ok {
		return auth.Claims{}, errors.New("unknown session")
	}
	return c, nil
}

func whoAmI() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, ok := GetClaims(r.Context())
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("X-User", c.Email)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthContext_SetsClaimsFromCookie(t *testing.T) {
	v := fakeVerifier{"sid-1": {UserID: 1, Email: "a@x.com", Role: auth.RoleUser}}
	h := AuthContext(v, "vetstock.sid")(whoAmI())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "vetstock.sid", Value: "sid-1"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "a@x.com", rec.Header().Get("X-User"))
}

func TestAuthContext_InvalidCookiePassesThroughAnonymous(t *testing.T) {
	h := AuthContext(fakeVerifier{}, "vetstock.sid")(whoAmI())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "vetstock.sid", Value: "expired"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequireAuth(t *testing.T) {
	h := RequireAuth(whoAmI())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Não autenticado"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithClaims(req.Context(), auth.Claims{UserID: 3, Email: "b@x.com"}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecover_Returns500JSON(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Erro interno do servidor"}`, rec.Body.String())
}

type captureObserver struct {
	route  string
	status int
}

func (c *captureObserver) ObserveHTTP(_, route string, status int, _ time.Duration) {
	c.route, c.status = route, status
}

func TestRequestLogger_ObservesStatus(t *testing.T) {
	obs := &captureObserver{}
	h := RequestLogger(logger.Nop(), obs)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusTeapot, obs.status)
	assert.Equal(t, "/x", obs.route)
}

func TestRateLimiter_BlocksAfterBurst(t *testing.T) {
	rl := NewRateLimiter(2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = ip + ":4321"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, call("10.0.0.1").Code)

	blocked := call("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.NotEmpty(t, blocked.Header().Get("Retry-After"))

	// otra IP tiene su propio bucket
	assert.Equal(t, http.StatusOK, call("10.0.0.2").Code)

	// 30s después se repone un token (2/min)
	now = now.Add(30 * time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1").Code)
}

func TestRateLimiter_KeysOnSocketAddress(t *testing.T) {
	rl := NewRateLimiter(1)
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(forwarded string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/register", nil)
		req.RemoteAddr = "10.0.0.9:5555"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, call("203.0.113.2"))
}

func TestRateLimiter_DisabledIsPassThrough(t *testing.T) {
	rl := NewRateLimiter(0)
	for i := 0; i < 100; i++ {
		rec := httptest.NewRecorder()
		rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}
