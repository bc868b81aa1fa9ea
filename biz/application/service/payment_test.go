package service

import (
	"context"
	"errors"
	"testing"

	"e-learning-server/biz/application/dto/show"
	"e-learning-server/biz/infrastructure/config"
	"e-learning-server/biz/infrastructure/consts"
	"e-learning-server/biz/infrastructure/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	amount   int64
	currency string
	calls    int
	err      error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, amount int64, currency string) (*payment.Session, error) {
	g.calls++
	g.amount = amount
	g.currency = currency
	if g.err != nil {
		return nil, g.err
	}
	return &payment.Session{ID: "pi_1", ClientSecret: "pi_1_secret_xyz"}, nil
}

func newPaymentService(gw payment.Gateway) *PaymentService {
	c := &config.Config{}
	c.Stripe.Currency = "usd"
	return &PaymentService{Config: c, Gateway: gw}
}

func TestPaymentService_CreateCheckoutSession(t *testing.T) {
	gw := &fakeGateway{}
	svc := newPaymentService(gw)

	resp, err := svc.CreateCheckoutSession(context.Background(), &show.CreateCheckoutSessionReq{Price: 20.0})
	require.NoError(t, err)
	assert.Equal(t, int64(2000), gw.amount)
	assert.Equal(t, "usd", gw.currency)
	assert.Equal(t, "pi_1_secret_xyz", resp.ClientSecret)
}

func TestPaymentService_CreateCheckoutSessionInvalidPrice(t *testing.T) {
	gw := &fakeGateway{}
	svc := newPaymentService(gw)

	_, err := svc.CreateCheckoutSession(context.Background(), &show.CreateCheckoutSessionReq{Price: "free"})
	assert.ErrorIs(t, err, consts.ErrInvalidPrice)
	assert.Zero(t, gw.calls)
}

func TestPaymentService_CreateCheckoutSessionGatewayError(t *testing.T) {
	gw := &fakeGateway{err: errors.New("card_declined")}
	svc := newPaymentService(gw)

	resp, err := svc.CreateCheckoutSession(context.Background(), &show.CreateCheckoutSessionReq{Price: 5})
	assert.EqualError(t, err, "card_declined")
	assert.Nil(t, resp)
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		in   any
		want int64
		err  bool
	}{
		{in: 20, want: 2000},
		{in: 20.0, want: 2000},
		{in: "20", want: 2000},
		{in: 19.99, want: 1999},
		{in: "0.5", want: 50},
		{in: nil, err: true},
		{in: "abc", err: true},
	}
	for _, tc := range cases {
		got, err := ToMinorUnits(tc.in)
		if tc.err {
			assert.Error(t, err, "input %v", tc.in)
			continue
		}
		require.NoError(t, err, "input %v", tc.in)
		assert.Equal(t, tc.want, got, "input %v", tc.in)
	}
}
