package payment

import (
	"context"
	"net/http"

	"e-learning-server/biz/infrastructure/config"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/util/log"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type StripeGateway struct {
	api *client.API
}

func NewStripeGateway(c *config.Config) *StripeGateway {
	if c.Stripe.SecretKey == "" {
		log.Error("NewStripeGateway secret key is empty, checkout requests will be rejected by stripe")
	}
	httpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	return newStripeGateway(c.Stripe.SecretKey, stripe.NewBackends(httpClient))
}

func newStripeGateway(key string, backends *stripe.Backends) *StripeGateway {
	return &StripeGateway{
		api: client.New(key, backends),
	}
}

func (g *StripeGateway) CreateCheckoutSession(ctx context.Context, amount int64, currency string) (*Session, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{consts.CardPaymentMethod}),
	}
	params.Context = ctx

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &Session{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}
