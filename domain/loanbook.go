package domain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/config"
	"github.com/peer-lending-platform/pool-chaincode/utils"
)

// LoanBook owns the authoritative, append-only record of loans. Loans are
// stored under their positional index; the next index lives under a counter
// key so that indices stay stable and strictly increasing from zero.
type LoanBook struct{}

// NewLoanBook creates a new loan book component
func NewLoanBook() *LoanBook {
	return &LoanBook{}
}

// LoanKey builds the state key for the loan at the given index
func LoanKey(index uint64) string {
	return fmt.Sprintf("%s_%d", config.LoanPrefix, index)
}

// Count returns the number of loans ever appended.
func (b *LoanBook) Count(stub shim.ChaincodeStubInterface) (uint64, error) {
	data, err := stub.GetState(config.LoanCountKey)
	if err != nil {
		return 0, fmt.Errorf("failed to get loan count: %v", err)
	}
	if data == nil {
		return 0, nil
	}

	count, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse loan count %q: %v", string(data), err)
	}
	return count, nil
}

// Append validates the loan terms, records a new open loan and returns its
// stable index. Zero-interest loans are rejected along with non-positive
// principal or duration (ErrInvalidLoanTerms). Maturity is recorded as
// now + duration but never enforced as a deadline.
func (b *LoanBook) Append(stub shim.ChaincodeStubInterface, borrower string, principal, rate uint64, durationSeconds int64, now time.Time) (uint64, error) {
	if borrower == "" {
		return 0, fmt.Errorf("empty borrower: %w", ErrInvalidLoanTerms)
	}
	if principal == 0 {
		return 0, fmt.Errorf("zero principal: %w", ErrInvalidLoanTerms)
	}
	if rate == 0 || rate > config.MaxInterestRatePercent {
		return 0, fmt.Errorf("interest rate %d out of range: %w", rate, ErrInvalidLoanTerms)
	}
	if durationSeconds <= 0 || durationSeconds > config.MaxLoanDurationSeconds {
		return 0, fmt.Errorf("duration %d out of range: %w", durationSeconds, ErrInvalidLoanTerms)
	}

	index, err := b.Count(stub)
	if err != nil {
		return 0, err
	}

	loan := &Loan{
		LoanIndex:       index,
		Borrower:        borrower,
		Principal:       principal,
		InterestRate:    rate,
		DurationSeconds: durationSeconds,
		CreatedAt:       now.Unix(),
		Maturity:        now.Unix() + durationSeconds,
		Repaid:          false,
	}

	if err := b.store(stub, loan); err != nil {
		return 0, err
	}

	// Index by borrower for ByBorrower queries. The index attribute is
	// zero-padded so lexicographic range scans return loans in index order.
	indexKey, err := stub.CreateCompositeKey(config.BorrowerLoanIndex, []string{borrower, fmt.Sprintf("%020d", index)})
	if err != nil {
		return 0, fmt.Errorf("failed to create borrower index key: %v", err)
	}
	if err := stub.PutState(indexKey, []byte(strconv.FormatUint(index, 10))); err != nil {
		return 0, fmt.Errorf("failed to put borrower index: %v", err)
	}

	if err := stub.PutState(config.LoanCountKey, []byte(strconv.FormatUint(index+1, 10))); err != nil {
		return 0, fmt.Errorf("failed to put loan count: %v", err)
	}

	return index, nil
}

// Get retrieves the loan at the given index, failing with ErrLoanNotFound
// outside the book's current bounds.
func (b *LoanBook) Get(stub shim.ChaincodeStubInterface, index uint64) (*Loan, error) {
	data, err := stub.GetState(LoanKey(index))
	if err != nil {
		return nil, fmt.Errorf("failed to get loan %d: %v", index, err)
	}
	if data == nil {
		return nil, fmt.Errorf("loan index %d: %w", index, ErrLoanNotFound)
	}

	var loan Loan
	if err := utils.UnmarshalJSON(data, &loan); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan %d: %v", index, err)
	}
	return &loan, nil
}

// MarkRepaid flips the repaid flag of the loan at the given index. A second
// call for the same index fails with ErrAlreadyRepaid; settlement is
// intentionally not idempotent.
func (b *LoanBook) MarkRepaid(stub shim.ChaincodeStubInterface, index uint64) (*Loan, error) {
	loan, err := b.Get(stub, index)
	if err != nil {
		return nil, err
	}
	if loan.Repaid {
		return nil, fmt.Errorf("loan index %d: %w", index, ErrAlreadyRepaid)
	}

	loan.Repaid = true
	if err := b.store(stub, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// ByBorrower returns all loans recorded for one borrower, in index order.
func (b *LoanBook) ByBorrower(stub shim.ChaincodeStubInterface, borrower string) ([]*Loan, error) {
	iterator, err := stub.GetStateByPartialCompositeKey(config.BorrowerLoanIndex, []string{borrower})
	if err != nil {
		return nil, fmt.Errorf("failed to get loans for borrower %s: %v", borrower, err)
	}
	defer iterator.Close()

	var loans []*Loan
	for iterator.HasNext() {
		response, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate borrower loans: %v", err)
		}

		index, err := strconv.ParseUint(string(response.Value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse borrower index entry %q: %v", string(response.Value), err)
		}

		loan, err := b.Get(stub, index)
		if err != nil {
			return nil, err
		}
		loans = append(loans, loan)
	}

	return loans, nil
}

func (b *LoanBook) store(stub shim.ChaincodeStubInterface, loan *Loan) error {
	data, err := utils.MarshalJSON(loan)
	if err != nil {
		return fmt.Errorf("failed to marshal loan %d: %v", loan.LoanIndex, err)
	}
	if err := stub.PutState(LoanKey(loan.LoanIndex), data); err != nil {
		return fmt.Errorf("failed to put loan %d: %v", loan.LoanIndex, err)
	}
	return nil
}
