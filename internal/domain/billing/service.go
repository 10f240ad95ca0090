// Package billing conecta la cuenta del usuario con la suscripción del procesador de pagos.
package billing

import (
	"context"
	"errors"
	"fmt"

	"vetstock/internal/domain/users"
	"vetstock/internal/platform/logger"
	billingport "vetstock/internal/ports/billing"
)

var (
	ErrProvider       = errors.New("billing provider error")
	ErrInvalidWebhook = errors.New("invalid webhook")
)

// UserBilling es lo que billing necesita del módulo de usuarios.
type UserBilling interface {
	GetByID(ctx context.Context, id int64) (users.User, error)
	AttachBilling(ctx context.Context, id int64, customerID, subscriptionID string) (users.User, error)
	ClearSubscription(ctx context.Context, subscriptionID string) (bool, error)
}

type Service struct {
	provider billingport.Provider
	users    UserBilling
	priceID  string
	log      logger.Logger
}

func NewService(provider billingport.Provider, users UserBilling, priceID string, log logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		provider: provider,
		users:    users,
		priceID:  priceID,
		log:      log.With(map[string]any{"component": "billing"}),
	}
}

type SubscriptionResult struct {
	SubscriptionID string `json:"subscriptionId"`
	ClientSecret   string `json:"clientSecret,omitempty"`
}

// GetOrCreateSubscription devuelve la suscripción del usuario o crea cliente + suscripción
// (pago pendiente) y guarda ambos ids en el usuario.
func (s *Service) GetOrCreateSubscription(ctx context.Context, userID int64) (SubscriptionResult, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return SubscriptionResult{}, err
	}

	if u.StripeSubscriptionID != nil && *u.StripeSubscriptionID != "" {
		sub, err := s.provider.GetSubscription(ctx, *u.StripeSubscriptionID)
		if err != nil {
			return SubscriptionResult{}, fmt.Errorf("%w: %w", ErrProvider, err)
		}
		return SubscriptionResult{SubscriptionID: sub.ID, ClientSecret: sub.ClientSecret}, nil
	}

	customerID, err := s.provider.CreateCustomer(ctx, u.Email, u.Name)
	if err != nil {
		return SubscriptionResult{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	sub, err := s.provider.CreateSubscription(ctx, customerID, s.priceID)
	if err != nil {
		return SubscriptionResult{}, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	if _, err := s.users.AttachBilling(ctx, u.ID, customerID, sub.ID); err != nil {
		return SubscriptionResult{}, err
	}

	s.log.Info("subscription created", map[string]any{
		"user_id":         u.ID,
		"customer_id":     customerID,
		"subscription_id": sub.ID,
	})
	return SubscriptionResult{SubscriptionID: sub.ID, ClientSecret: sub.ClientSecret}, nil
}

// HandleWebhook verifica el evento y aplica el cambio de estado.
// Solo customer.subscription.deleted modifica datos.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	ev, err := s.provider.ParseWebhook(payload, signature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWebhook, err)
	}

	switch ev.Type {
	case billingport.EventSubscriptionDeleted:
		cleared, err := s.users.ClearSubscription(ctx, ev.SubscriptionID)
		if err != nil {
			return err
		}
		s.log.Info("subscription deleted", map[string]any{
			"event_id":        ev.ID,
			"subscription_id": ev.SubscriptionID,
			"user_found":      cleared,
		})
	case billingport.EventSubscriptionUpdated:
		s.log.Debug("subscription updated", map[string]any{"event_id": ev.ID, "subscription_id": ev.SubscriptionID})
	default:
		s.log.Debug("webhook ignored", map[string]any{"event_id": ev.ID, "type": ev.Type})
	}
	return nil
}
