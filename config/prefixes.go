package config

// State key prefixes for consistent key generation
const (
	// Ledger domain prefixes
	BalancePrefix = "BAL"

	// Loan domain prefixes
	LoanPrefix   = "LOAN"
	LoanCountKey = "LOAN_COUNT"

	// Aggregate keys
	PoolTotalsKey = "POOL_TOTALS"

	// Composite key object types
	BorrowerLoanIndex = "BORROWER_LOAN"
	HistoryIndex      = "HISTORY"

	// Shared prefixes
	HistoryPrefix = "HIST"
)
