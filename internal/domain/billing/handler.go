package billing

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"vetstock/internal/middleware"
	"vetstock/internal/platform/httpx"
)

const maxWebhookBytes = 64 << 10

// RegisterRoutes monta las rutas de pago. Solo se llama con el procesador configurado.
// La suscripción exige sesión pero no entitlement: es la salida de un trial vencido.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.With(middleware.RequireAuth).Post("/api/get-or-create-subscription", getOrCreateSubscriptionHandler(svc))
	r.Post("/api/webhook/stripe", webhookHandler(svc))
}

type webhookResponse struct {
	Received bool `json:"received"`
}

// getOrCreateSubscriptionHandler godoc
// @Summary Obter ou criar assinatura
// @Description Devolve a assinatura do usuário ou cria cliente + assinatura com pagamento pendente.
// @Tags billing
// @Produce json
// @Success 200 {object} SubscriptionResult
// @Failure 400 {object} httpx.ErrorResponse "erro do processador de pagamento"
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/get-or-create-subscription [post]
func getOrCreateSubscriptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		res, err := svc.GetOrCreateSubscription(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrProvider) {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, res)
	}
}

// webhookHandler godoc
// @Summary Webhook do processador de pagamento
// @Description Verifica a assinatura (header Stripe-Signature) e aplica customer.subscription.deleted.
// @Tags billing
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Assinatura do evento"
// @Success 200 {object} webhookResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /api/webhook/stripe [post]
func webhookHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBytes))
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "Webhook Error: "+err.Error())
			return
		}

		if err := svc.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
			if errors.Is(err, ErrInvalidWebhook) {
				httpx.WriteError(w, http.StatusBadRequest, "Webhook Error: "+err.Error())
				return
			}
			httpx.WriteError(w, http.StatusInternalServerError, "Erro interno do servidor")
			return
		}
		httpx.WriteJSON(w, http.StatusOK, webhookResponse{Received: true})
	}
}
