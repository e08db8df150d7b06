package domain

import (
	"fmt"
	"math"
)

// LoanStatus represents the lifecycle state of a loan
type LoanStatus string

const (
	LoanStatusOpen   LoanStatus = "Open"
	LoanStatusRepaid LoanStatus = "Repaid"
)

// Loan is a single record in the loan book. Loans are addressed by their
// position in the book; an index once assigned never refers to a different
// loan. After settlement the record is immutable.
type Loan struct {
	LoanIndex       uint64 `json:"loanIndex"`
	Borrower        string `json:"borrower"`
	Principal       uint64 `json:"principal"`
	InterestRate    uint64 `json:"interestRate"` // integer percent
	DurationSeconds int64  `json:"durationSeconds"`
	CreatedAt       int64  `json:"createdAt"` // unix seconds
	Maturity        int64  `json:"maturity"`  // createdAt + duration; advisory, never enforced
	Repaid          bool   `json:"repaid"`
}

// Status derives the lifecycle state from the repaid flag.
func (l *Loan) Status() LoanStatus {
	if l.Repaid {
		return LoanStatusRepaid
	}
	return LoanStatusOpen
}

// RepaymentTotal computes principal + principal*rate/100 with integer floor
// division. Fails with ErrOverflow if the computation would wrap.
func (l *Loan) RepaymentTotal() (uint64, error) {
	if l.InterestRate > 0 && l.Principal > math.MaxUint64/l.InterestRate {
		return 0, fmt.Errorf("interest on loan %d: %w", l.LoanIndex, ErrOverflow)
	}
	interest := l.Principal * l.InterestRate / 100
	if l.Principal > math.MaxUint64-interest {
		return 0, fmt.Errorf("repayment total on loan %d: %w", l.LoanIndex, ErrOverflow)
	}
	return l.Principal + interest, nil
}
