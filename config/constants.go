package config

// Application constants
const (
	// Business rules
	MaxInterestRatePercent = 100
	MaxLoanDurationSeconds = 30 * 365 * 24 * 60 * 60 // 30 years

	// Token chaincode wiring for withdrawal payout
	TokenChaincodeName    = "token"
	TokenTransferFunction = "Transfer"
	TokenChaincodeChannel = "" // empty means same channel as the pool
)
