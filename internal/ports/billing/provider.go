package billing

import (
	"context"
	"errors"
)

var (
	ErrWebhookNotConfigured = errors.New("webhook secret not configured")
	ErrInvalidSignature     = errors.New("invalid webhook signature")
)

const (
	EventSubscriptionUpdated = "customer.subscription.updated"
	EventSubscriptionDeleted = "customer.subscription.deleted"
)

// Subscription es la vista mínima que necesita el dominio.
type Subscription struct {
	ID           string
	CustomerID   string
	Status       string
	ClientSecret string
}

// Event es un webhook ya verificado.
type Event struct {
	ID             string
	Type           string
	SubscriptionID string
}

// Provider abstrae al procesador de pagos (Stripe en prod, fake en tests).
type Provider interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreateSubscription(ctx context.Context, customerID, priceID string) (Subscription, error)
	GetSubscription(ctx context.Context, subscriptionID string) (Subscription, error)
	ParseWebhook(payload []byte, signature string) (Event, error)
}
