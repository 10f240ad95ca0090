package alerts

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
)

// RegisterRoutes monta /api/alerts. El router ya exige sesión y entitlement.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/api/alerts", listAlertsHandler(svc))
	r.Put("/api/alerts/{alertID}/resolve", resolveAlertHandler(svc))
}

type alertResponse struct {
	ID        int64     `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
	UserID    int64     `json:"userId"`
	ItemID    *int64    `json:"itemId"`
	Resolved  bool      `json:"resolved"`
}

// listAlertsHandler godoc
// @Summary Listar alertas
// @Description Alertas do usuário da sessão, mais recentes primeiro (resolvidas incluídas).
// @Tags alerts
// @Produce json
// @Success 200 {array} alertResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 402 {object} httpx.ErrorResponse
// @Router /api/alerts [get]
func listAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}

		out := make([]alertResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAlertResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// resolveAlertHandler godoc
// @Summary Resolver alerta
// @Description Marca a alerta como resolvida (não apaga). Idempotente. Dono ou admin.
// @Tags alerts
// @Produce json
// @Param alertID path int true "ID da alerta"
// @Success 200 {object} alertResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 403 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/alerts/{alertID}/resolve [put]
func resolveAlertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		id, ok := httpx.PathID(r, "alertID")
		if !ok {
			httpx.WriteError(w, http.StatusBadRequest, "ID inválido")
			return
		}

		current, err := svc.GetByID(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !claims.CanAccess(current.UserID) {
			httpx.WriteError(w, http.StatusForbidden, "Permissão negada")
			return
		}

		resolved, err := svc.Resolve(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toAlertResponse(resolved))
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "ID inválido")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Alerta não encontrado")
	default:
		httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
	}
}

func toAlertResponse(a Alert) alertResponse {
	return alertResponse{
		ID:        a.ID,
		Type:      a.Type,
		Message:   a.Message,
		CreatedAt: a.CreatedAt,
		UserID:    a.UserID,
		ItemID:    a.ItemID,
		Resolved:  a.Resolved,
	}
}
