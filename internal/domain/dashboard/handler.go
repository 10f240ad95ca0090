package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/dashboard/stats", statsHandler(svc))
}

// statsHandler godoc
// @Summary Estatísticas do painel
// @Description Produtos, alertas de estoque (abaixo + acima), animais e vacinas vencendo nos próximos 30 dias.
// @Tags dashboard
// @Produce json
// @Success 200 {object} Stats
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 402 {object} httpx.ErrorResponse
// @Router /api/dashboard/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		st, err := svc.Stats(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, st)
	}
}
