package handlers

import (
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/domain"
	"github.com/peer-lending-platform/pool-chaincode/services"
	"github.com/peer-lending-platform/pool-chaincode/utils"
)

// LoanHandler handles loan requests, settlements and loan queries
type LoanHandler struct {
	ledger      *domain.Ledger
	loanBook    *domain.LoanBook
	persistence *services.PersistenceService
	events      *services.EventService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler() *LoanHandler {
	return &LoanHandler{
		ledger:      domain.NewLedger(),
		loanBook:    domain.NewLoanBook(),
		persistence: services.NewPersistenceService(),
		events:      services.NewEventService(),
	}
}

// RequestLoan records a new open loan for the caller and returns it.
// Recording a loan moves no pool funds: the principal is neither credited to
// the borrower nor earmarked against lender balances. Disbursement is a
// separate concern outside this chaincode.
func (h *LoanHandler) RequestLoan(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.LoanRequest
	if err := utils.UnmarshalJSON([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse loan request: %v", err)
	}
	if req.CallerID == "" {
		return nil, fmt.Errorf("caller identity is required")
	}
	if req.Principal <= 0 || req.InterestRate <= 0 || req.DurationSeconds <= 0 {
		return nil, fmt.Errorf("principal %d, rate %d, duration %d: %w",
			req.Principal, req.InterestRate, req.DurationSeconds, domain.ErrInvalidLoanTerms)
	}

	index, err := h.loanBook.Append(stub, req.CallerID,
		uint64(req.Principal), uint64(req.InterestRate), req.DurationSeconds, utils.TxTime(stub))
	if err != nil {
		return nil, err
	}

	loan, err := h.loanBook.Get(stub, index)
	if err != nil {
		return nil, err
	}

	loanJSON, _ := utils.MarshalJSONString(loan)
	if err := recordHistory(stub, h.persistence, domain.LoanKey(index), "Loan", "CREATE", "loan",
		"", loanJSON, req.CallerID); err != nil {
		return nil, fmt.Errorf("failed to record history: %v", err)
	}

	if err := h.events.EmitLoanRequested(stub, loan); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(loan)
}

// RepayLoan settles the loan at the requested index. Only the recorded
// borrower may settle, exactly once; the repayment total (principal plus
// floor interest) is debited from the borrower's own tracked balance, not
// from an accompanying incoming transfer. Any failed check leaves all state
// untouched.
func (h *LoanHandler) RepayLoan(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.RepayRequest
	if err := utils.UnmarshalJSON([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse repay request: %v", err)
	}
	if req.CallerID == "" {
		return nil, fmt.Errorf("caller identity is required")
	}

	if err := acquireTransferLatch("repay"); err != nil {
		return nil, err
	}
	defer releaseTransferLatch()

	loan, err := h.loanBook.Get(stub, req.LoanIndex)
	if err != nil {
		return nil, err
	}
	if req.CallerID != loan.Borrower {
		return nil, fmt.Errorf("caller %s is not the borrower of loan %d: %w",
			req.CallerID, req.LoanIndex, domain.ErrUnauthorized)
	}
	if loan.Repaid {
		return nil, fmt.Errorf("loan index %d: %w", req.LoanIndex, domain.ErrAlreadyRepaid)
	}

	total, err := loan.RepaymentTotal()
	if err != nil {
		return nil, err
	}

	newBalance, err := h.ledger.Debit(stub, req.CallerID, total)
	if err != nil {
		return nil, err
	}

	loan, err = h.loanBook.MarkRepaid(stub, req.LoanIndex)
	if err != nil {
		return nil, err
	}

	if err := addPoolTotals(stub, h.persistence, 0, 0, total); err != nil {
		return nil, err
	}

	if err := recordHistory(stub, h.persistence, domain.LoanKey(req.LoanIndex), "Loan", "REPAY", "status",
		string(domain.LoanStatusOpen), string(domain.LoanStatusRepaid), req.CallerID); err != nil {
		return nil, fmt.Errorf("failed to record history: %v", err)
	}
	if err := recordHistory(stub, h.persistence, req.CallerID, "AccountBalance", "REPAY", "balance",
		strconv.FormatUint(newBalance+total, 10), strconv.FormatUint(newBalance, 10), req.CallerID); err != nil {
		return nil, fmt.Errorf("failed to record history: %v", err)
	}

	if err := h.events.EmitLoanRepaid(stub, loan, total); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(loan)
}

// GetLoan retrieves the loan at the given index
func (h *LoanHandler) GetLoan(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	index, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid loan index %q: %v", args[0], err)
	}

	loan, err := h.loanBook.Get(stub, index)
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(loan)
}

// GetLoanCount returns the number of loans ever recorded
func (h *LoanHandler) GetLoanCount(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 0, got %d", len(args))
	}

	count, err := h.loanBook.Count(stub)
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(map[string]uint64{"loanCount": count})
}

// GetLoansByBorrower returns all loans recorded for one borrower
func (h *LoanHandler) GetLoansByBorrower(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	borrower := args[0]
	if borrower == "" {
		return nil, fmt.Errorf("borrower identity is required")
	}

	loans, err := h.loanBook.ByBorrower(stub, borrower)
	if err != nil {
		return nil, err
	}
	if loans == nil {
		loans = []*domain.Loan{}
	}

	return utils.MarshalJSON(loans)
}

// GetLoanHistory returns the recorded mutations of one loan
func (h *LoanHandler) GetLoanHistory(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	index, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid loan index %q: %v", args[0], err)
	}

	history, err := getEntityHistory(stub, domain.LoanKey(index))
	if err != nil {
		return nil, fmt.Errorf("failed to get loan history: %v", err)
	}

	return utils.MarshalJSON(history)
}
