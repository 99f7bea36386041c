// Package payment adapts the Braintree SDK to the domain PaymentGateway interface.
package payment

import (
	"context"

	braintree "github.com/braintree-go/braintree-go"

	"interviewlog/config"
	"interviewlog/internal/domain/service"
	"interviewlog/internal/errors"
)

// braintreeGateway is a thin wrapper over the Braintree client. It performs a
// single sale per charge; no retry logic is layered on top.
type braintreeGateway struct {
	client *braintree.Braintree
}

// NewBraintreeGateway is the constructor for braintreeGateway.
func NewBraintreeGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.Braintree == nil {
		return nil, errors.New("braintree configuration missing")
	}

	env := braintree.Sandbox
	if cfg.Braintree.Environment == "production" {
		env = braintree.Production
	}

	client := braintree.New(
		env,
		cfg.Braintree.MerchantID,
		cfg.Braintree.PublicKey,
		cfg.Braintree.PrivateKey,
	)

	return &braintreeGateway{client: client}, nil
}

// GenerateClientToken creates a client token for the hosted payment form.
func (g *braintreeGateway) GenerateClientToken(ctx context.Context) (string, error) {
	token, err := g.client.ClientToken().Generate(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate braintree client token")
	}

	return token, nil
}

// Charge submits a sale for the given amount using a payment method nonce.
func (g *braintreeGateway) Charge(ctx context.Context, amountCents int64, nonce string) (*service.ChargeResult, error) {
	tx, err := g.client.Transaction().Create(ctx, &braintree.TransactionRequest{
		Type:               "sale",
		Amount:             braintree.NewDecimal(amountCents, 2),
		PaymentMethodNonce: nonce,
		Options: &braintree.TransactionOptions{
			SubmitForSettlement: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrChargeDeclined, err.Error())
	}

	return &service.ChargeResult{TransactionID: tx.Id}, nil
}
