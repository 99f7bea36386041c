package entity

// Tier is the account level of a user.
type Tier string

const (
	// TierFree is the default tier for every new account.
	TierFree Tier = "free"

	// TierPremium is granted after a successful payment through the gateway.
	TierPremium Tier = "premium"
)
