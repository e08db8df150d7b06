package domain

// Request payloads for pool operations. The caller identity is an explicit
// field on every mutating request; the pool never authenticates identities,
// it only compares them.

// DepositRequest credits the caller's tracked balance
type DepositRequest struct {
	CallerID string `json:"callerID"`
	Amount   int64  `json:"amount"`
}

// WithdrawRequest debits the caller's tracked balance and pays out through
// the token chaincode
type WithdrawRequest struct {
	CallerID string `json:"callerID"`
	Amount   int64  `json:"amount"`
}

// LoanRequest records a new open loan for the caller
type LoanRequest struct {
	CallerID        string `json:"callerID"`
	Principal       int64  `json:"principal"`
	InterestRate    int64  `json:"interestRate"` // integer percent
	DurationSeconds int64  `json:"durationSeconds"`
}

// RepayRequest settles the loan at the given index
type RepayRequest struct {
	CallerID  string `json:"callerID"`
	LoanIndex uint64 `json:"loanIndex"`
}
