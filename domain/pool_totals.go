package domain

// PoolTotals tracks the cumulative flows through the pool. Together with the
// per-account records it makes the conservation law checkable: the sum of
// all tracked balances equals deposited - withdrawn - repaid.
type PoolTotals struct {
	TotalDeposited uint64 `json:"totalDeposited"`
	TotalWithdrawn uint64 `json:"totalWithdrawn"`
	TotalRepaid    uint64 `json:"totalRepaid"`
	LastUpdated    string `json:"lastUpdated"`
}
