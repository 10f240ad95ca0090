// Package stripe implementa el Provider de billing sobre stripe-go.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"

	"vetstock/internal/platform/httpclient"
	"vetstock/internal/ports/billing"
)

type Options struct {
	SecretKey     string
	WebhookSecret string
	// Timeout de las llamadas a la API. 0 => httpclient.DefaultTimeout.
	Timeout time.Duration
	// Backends opcional (tests contra stripe-mock).
	Backends *stripego.Backends
}

type Client struct {
	api           *client.API
	webhookSecret string
}

var _ billing.Provider = (*Client)(nil)

func New(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.SecretKey) == "" {
		return nil, errors.New("stripe: secret key required")
	}
	backends := opts.Backends
	if backends == nil {
		backends = stripego.NewBackends(httpclient.New(httpclient.Options{Timeout: opts.Timeout}))
	}
	api := &client.API{}
	api.Init(opts.SecretKey, backends)
	return &Client{api: api, webhookSecret: opts.WebhookSecret}, nil
}

func (c *Client) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	params := &stripego.CustomerParams{
		Email: stripego.String(email),
		Name:  stripego.String(name),
	}
	params.Context = ctx

	cus, err := c.api.Customers.New(params)
	if err != nil {
		return "", err
	}
	return cus.ID, nil
}

// CreateSubscription crea la suscripción con pago pendiente y expande el payment intent
// para devolver el client secret.
func (c *Client) CreateSubscription(ctx context.Context, customerID, priceID string) (billing.Subscription, error) {
	params := &stripego.SubscriptionParams{
		Customer: stripego.String(customerID),
		Items: []*stripego.SubscriptionItemsParams{
			{Price: stripego.String(priceID)},
		},
		PaymentBehavior: stripego.String("default_incomplete"),
	}
	params.Context = ctx
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.New(params)
	if err != nil {
		return billing.Subscription{}, err
	}
	return toSubscription(sub), nil
}

func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (billing.Subscription, error) {
	params := &stripego.SubscriptionParams{}
	params.Context = ctx
	params.AddExpand("latest_invoice.payment_intent")

	sub, err := c.api.Subscriptions.Get(subscriptionID, params)
	if err != nil {
		return billing.Subscription{}, err
	}
	return toSubscription(sub), nil
}

// ParseWebhook verifica la firma (header Stripe-Signature) y extrae el id de la suscripción.
func (c *Client) ParseWebhook(payload []byte, signature string) (billing.Event, error) {
	if strings.TrimSpace(c.webhookSecret) == "" {
		return billing.Event{}, billing.ErrWebhookNotConfigured
	}

	ev, err := webhook.ConstructEventWithOptions(payload, signature, c.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return billing.Event{}, fmt.Errorf("%w: %w", billing.ErrInvalidSignature, err)
	}

	out := billing.Event{ID: ev.ID, Type: string(ev.Type)}
	if strings.HasPrefix(out.Type, "customer.subscription.") && ev.Data != nil {
		var sub stripego.Subscription
		if err := json.Unmarshal(ev.Data.Raw, &sub); err != nil {
			return billing.Event{}, fmt.Errorf("decode subscription: %w", err)
		}
		out.SubscriptionID = sub.ID
	}
	return out, nil
}

func toSubscription(sub *stripego.Subscription) billing.Subscription {
	out := billing.Subscription{
		ID:     sub.ID,
		Status: string(sub.Status),
	}
	if sub.Customer != nil {
		out.CustomerID = sub.Customer.ID
	}
	if sub.LatestInvoice != nil && sub.LatestInvoice.PaymentIntent != nil {
		out.ClientSecret = sub.LatestInvoice.PaymentIntent.ClientSecret
	}
	return out
}
