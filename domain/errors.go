package domain

import "errors"

// Error kinds surfaced by pool operations. Every failure carries exactly one
// of these; callers match with errors.Is. A failed operation leaves no state
// mutation behind.
var (
	// ErrInvalidAmount is returned when a credit, debit, deposit or
	// withdrawal amount is not strictly positive.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidLoanTerms is returned when a loan request carries a
	// non-positive principal, rate or duration, or terms outside the
	// configured limits.
	ErrInvalidLoanTerms = errors.New("invalid loan terms")

	// ErrInsufficientBalance is returned when a debit exceeds the account's
	// tracked balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrUnauthorized is returned when the caller is not the loan's borrower.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyRepaid is returned on a second settlement attempt for the
	// same loan. Repayment is deliberately not idempotent.
	ErrAlreadyRepaid = errors.New("loan already repaid")

	// ErrLoanNotFound is returned for an index outside the loan book's
	// current bounds.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrOverflow is returned when a balance or repayment computation would
	// exceed the representable range.
	ErrOverflow = errors.New("amount overflow")

	// ErrTransferFailed is returned when the external token transfer reports
	// failure; the prior ledger debit is rolled back before this surfaces.
	ErrTransferFailed = errors.New("transfer failed")

	// ErrReentrantCall is returned when an operation re-enters the pool while
	// the transfer latch is held.
	ErrReentrantCall = errors.New("reentrant call")
)
