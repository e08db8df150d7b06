package config

// Event names emitted by the pool chaincode
const (
	EventDeposited     = "Deposited"
	EventWithdrawn     = "Withdrawn"
	EventLoanRequested = "LoanRequested"
	EventLoanRepaid    = "LoanRepaid"
)
