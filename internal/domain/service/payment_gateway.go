package service

import (
	"context"
	"errors"
)

// ErrChargeDeclined is returned when the gateway processes the request but
// declines the transaction.
var ErrChargeDeclined = errors.New("charge declined by gateway")

// ChargeResult is the outcome of a successful charge.
type ChargeResult struct {
	TransactionID string
}

// PaymentGateway is the boundary to the external payment processor.
// Only the interface contract is in scope; no retry logic is layered on top.
type PaymentGateway interface {
	// GenerateClientToken creates a client token for the hosted payment form.
	GenerateClientToken(ctx context.Context) (string, error)

	// Charge submits a sale for the given amount (in cents) using a payment
	// method nonce from the client. Returns ErrChargeDeclined when the
	// gateway rejects the sale.
	Charge(ctx context.Context, amountCents int64, nonce string) (*ChargeResult, error)
}
