package handlers

import (
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/domain"
	"github.com/peer-lending-platform/pool-chaincode/interfaces"
	"github.com/peer-lending-platform/pool-chaincode/services"
	"github.com/peer-lending-platform/pool-chaincode/utils"
)

// PoolHandler handles deposits, withdrawals and balance queries
type PoolHandler struct {
	ledger      *domain.Ledger
	persistence *services.PersistenceService
	events      *services.EventService
	transferrer interfaces.FundsTransferrer
}

// NewPoolHandler creates a new pool handler with the given transfer backend
func NewPoolHandler(transferrer interfaces.FundsTransferrer) *PoolHandler {
	return &PoolHandler{
		ledger:      domain.NewLedger(),
		persistence: services.NewPersistenceService(),
		events:      services.NewEventService(),
		transferrer: transferrer,
	}
}

// Deposit credits the caller's tracked balance. The value entering the pool
// is validated by the environment as part of admitting the transaction; the
// handler's responsibility is solely the bookkeeping credit.
func (h *PoolHandler) Deposit(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.DepositRequest
	if err := utils.UnmarshalJSON([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse deposit request: %v", err)
	}
	if req.CallerID == "" {
		return nil, fmt.Errorf("caller identity is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("deposit of %d: %w", req.Amount, domain.ErrInvalidAmount)
	}

	amount := uint64(req.Amount)
	newBalance, err := h.ledger.Credit(stub, req.CallerID, amount)
	if err != nil {
		return nil, err
	}

	if err := addPoolTotals(stub, h.persistence, amount, 0, 0); err != nil {
		return nil, err
	}

	if err := recordHistory(stub, h.persistence, req.CallerID, "AccountBalance", "DEPOSIT", "balance",
		strconv.FormatUint(newBalance-amount, 10), strconv.FormatUint(newBalance, 10), req.CallerID); err != nil {
		return nil, fmt.Errorf("failed to record history: %v", err)
	}

	if err := h.events.EmitDeposited(stub, req.CallerID, amount, newBalance); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(&domain.AccountBalance{
		AccountID:   req.CallerID,
		Balance:     newBalance,
		LastUpdated: utils.FormatTime(utils.TxTime(stub)),
	})
}

// Withdraw debits the caller's tracked balance and pays the amount out
// through the token chaincode. The debit is committed to the write set
// before the external call so a nested invocation cannot observe a stale
// balance; if the transfer fails, a compensating credit restores the exact
// pre-call balance before the failure surfaces.
func (h *PoolHandler) Withdraw(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	var req domain.WithdrawRequest
	if err := utils.UnmarshalJSON([]byte(args[0]), &req); err != nil {
		return nil, fmt.Errorf("failed to parse withdraw request: %v", err)
	}
	if req.CallerID == "" {
		return nil, fmt.Errorf("caller identity is required")
	}
	if req.Amount <= 0 {
		return nil, fmt.Errorf("withdrawal of %d: %w", req.Amount, domain.ErrInvalidAmount)
	}

	if err := acquireTransferLatch("withdraw"); err != nil {
		return nil, err
	}
	defer releaseTransferLatch()

	amount := uint64(req.Amount)
	newBalance, err := h.ledger.Debit(stub, req.CallerID, amount)
	if err != nil {
		return nil, err
	}

	if err := h.transferrer.Transfer(stub, req.CallerID, amount); err != nil {
		if _, cerr := h.ledger.Credit(stub, req.CallerID, amount); cerr != nil {
			return nil, fmt.Errorf("failed to restore balance after transfer failure: %v", cerr)
		}
		return nil, fmt.Errorf("withdrawal of %d for %s: %w: %v", amount, req.CallerID, domain.ErrTransferFailed, err)
	}

	if err := addPoolTotals(stub, h.persistence, 0, amount, 0); err != nil {
		return nil, err
	}

	if err := recordHistory(stub, h.persistence, req.CallerID, "AccountBalance", "WITHDRAW", "balance",
		strconv.FormatUint(newBalance+amount, 10), strconv.FormatUint(newBalance, 10), req.CallerID); err != nil {
		return nil, fmt.Errorf("failed to record history: %v", err)
	}

	if err := h.events.EmitWithdrawn(stub, req.CallerID, amount, newBalance); err != nil {
		return nil, err
	}

	return utils.MarshalJSON(&domain.AccountBalance{
		AccountID:   req.CallerID,
		Balance:     newBalance,
		LastUpdated: utils.FormatTime(utils.TxTime(stub)),
	})
}

// GetBalance returns the tracked balance for an account, zero for accounts
// never credited.
func (h *PoolHandler) GetBalance(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	accountID := args[0]
	if accountID == "" {
		return nil, fmt.Errorf("account identity is required")
	}

	balance, err := h.ledger.BalanceOf(stub, accountID)
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(&domain.AccountBalance{
		AccountID: accountID,
		Balance:   balance,
	})
}

// GetPoolTotals returns the cumulative deposited, withdrawn and repaid flows.
func (h *PoolHandler) GetPoolTotals(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 0, got %d", len(args))
	}

	totals, err := loadPoolTotals(stub, h.persistence)
	if err != nil {
		return nil, err
	}

	return utils.MarshalJSON(totals)
}

// GetAccountHistory returns the recorded mutations of one account
func (h *PoolHandler) GetAccountHistory(stub shim.ChaincodeStubInterface, args []string) ([]byte, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("incorrect number of arguments. Expected 1, got %d", len(args))
	}

	history, err := getEntityHistory(stub, args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get account history: %v", err)
	}

	return utils.MarshalJSON(history)
}
