package stripepay

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"
)

// Client клиент для работы со Stripe
type Client struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
	log           Logger
}

// NewClient создает новый экземпляр клиента Stripe
func NewClient(secretKey, webhookSecret, successURL, cancelURL string, log Logger) *Client {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &Client{
		api:           api,
		webhookSecret: webhookSecret,
		successURL:    successURL,
		cancelURL:     cancelURL,
		log:           log,
	}
}

// CreateCheckoutSession создает Stripe Checkout сессию с фиксированной ценой
// пакета и метаданными бронирования. Возвращает ID сессии и redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, req SessionRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(req.ProductName),
						Description: stripe.String(req.Description),
					},
					UnitAmount: stripe.Int64(req.AmountCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		c.log.Error("Stripe: failed to create checkout session: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrSessionCreate, err)
	}

	if session.URL == "" {
		c.log.Error("Stripe: session id=%s created without redirect url", session.ID)
		return nil, ErrNoSessionURL
	}

	c.log.Info("Stripe: checkout session created id=%s amount=%d", session.ID, req.AmountCents)
	return &CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

// CreatePaymentIntent создает payment intent для embedded оплаты на сайте
// Альтернатива checkout-сессии: клиент подтверждает оплату по client secret
func (c *Client) CreatePaymentIntent(ctx context.Context, req SessionRequest) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountCents),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	intent, err := c.api.PaymentIntents.New(params)
	if err != nil {
		c.log.Error("Stripe: failed to create payment intent: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentIntentCreate, err)
	}

	c.log.Info("Stripe: payment intent created id=%s amount=%d", intent.ID, req.AmountCents)
	return &PaymentIntent{ID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

// ParseWebhookEvent проверяет подпись webhook события и извлекает сигнал
// подтверждения. События, не относящиеся к checkout-сессиям, возвращаются
// как ConfirmationIgnored.
func (c *Client) ParseWebhookEvent(payload []byte, signature string) (*ConfirmationEvent, error) {
	event, err := webhook.ConstructEvent(payload, signature, c.webhookSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: signature verification failed: %v", ErrInvalidWebhook, err)
	}

	switch event.Type {
	case "checkout.session.completed", "checkout.session.expired", "checkout.session.async_payment_failed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return nil, fmt.Errorf("%w: failed to decode session payload: %v", ErrInvalidWebhook, err)
		}

		confirmType := ConfirmationCompleted
		switch event.Type {
		case "checkout.session.expired":
			confirmType = ConfirmationExpired
		case "checkout.session.async_payment_failed":
			confirmType = ConfirmationFailed
		}
		return &ConfirmationEvent{Type: confirmType, SessionID: session.ID}, nil

	default:
		c.log.Info("Stripe: ignoring webhook event type=%s", event.Type)
		return &ConfirmationEvent{Type: ConfirmationIgnored}, nil
	}
}
