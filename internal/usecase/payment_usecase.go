package usecase

import (
	"context"

	"github.com/google/uuid"

	"interviewlog/internal/domain/entity"
)

// ClientTokenOutput carries the gateway client token for the hosted payment form.
type ClientTokenOutput struct {
	ClientToken string
}

// ChargeOutput is the result of a successful premium purchase.
type ChargeOutput struct {
	TransactionID string
	Tier          entity.Tier
}

// PaymentUsecase defines the interface for the premium-tier payment bridge.
type PaymentUsecase interface {
	// ClientToken obtains a client token for rendering the payment form.
	ClientToken(ctx context.Context) (*ClientTokenOutput, error)

	// Charge submits the premium purchase with a payment method nonce and, on
	// success, upgrades the user's tier. A declined charge leaves the user
	// untouched.
	Charge(ctx context.Context, userID uuid.UUID, nonce string) (*ChargeOutput, error)
}
