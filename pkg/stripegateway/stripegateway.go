package stripegateway

import (
	"fmt"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// StatusSucceeded is the gateway status of a settled payment intent.
const StatusSucceeded = string(stripe.PaymentIntentStatusSucceeded)

// Intent is the slice of a gateway payment intent the services care about.
type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

// Gateway wraps the Stripe payment-intent API. Amounts are always in the
// smallest currency unit (cents).
type Gateway struct{}

// New configures the Stripe client with the account's secret key.
func New(secretKey string) *Gateway {
	stripe.Key = secretKey
	return &Gateway{}
}

// CreateIntent creates a payment intent for the given amount and currency and
// returns the gateway identifiers, including the client secret the frontend
// needs to confirm the charge.
func (g *Gateway) CreateIntent(amountMinorUnits int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinorUnits),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}

// RetrieveIntent fetches the current state of a payment intent by id.
func (g *Gateway) RetrieveIntent(id string) (*Intent, error) {
	pi, err := paymentintent.Get(id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent %s: %w", id, err)
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}
