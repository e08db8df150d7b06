package domain

import (
	"fmt"
	"math"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/config"
	"github.com/peer-lending-platform/pool-chaincode/utils"
)

// AccountBalance is the persisted per-identity balance record
type AccountBalance struct {
	AccountID   string `json:"accountID"`
	Balance     uint64 `json:"balance"`
	LastUpdated string `json:"lastUpdated"`
}

// Ledger holds and mutates per-identity balances in Fabric state. Identities
// never seen before hold a zero balance; balances are never destroyed. All
// mutation is routed through the pool handlers.
type Ledger struct{}

// NewLedger creates a new ledger component
func NewLedger() *Ledger {
	return &Ledger{}
}

// BalanceKey builds the state key for an account's balance record
func BalanceKey(accountID string) string {
	return fmt.Sprintf("%s_%s", config.BalancePrefix, accountID)
}

// BalanceOf returns the tracked balance for an identity, zero if never credited.
func (l *Ledger) BalanceOf(stub shim.ChaincodeStubInterface, accountID string) (uint64, error) {
	record, err := l.load(stub, accountID)
	if err != nil {
		return 0, err
	}
	return record.Balance, nil
}

// Credit adds amount to the identity's balance. Fails with ErrInvalidAmount
// for a zero amount and ErrOverflow if the addition would wrap.
func (l *Ledger) Credit(stub shim.ChaincodeStubInterface, accountID string, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, fmt.Errorf("credit of %s: %w", accountID, ErrInvalidAmount)
	}

	record, err := l.load(stub, accountID)
	if err != nil {
		return 0, err
	}

	if record.Balance > math.MaxUint64-amount {
		return 0, fmt.Errorf("credit of %d to %s: %w", amount, accountID, ErrOverflow)
	}

	record.Balance += amount
	if err := l.store(stub, record); err != nil {
		return 0, err
	}
	return record.Balance, nil
}

// Debit subtracts amount from the identity's balance. Fails with
// ErrInvalidAmount for a zero amount and ErrInsufficientBalance if the
// amount exceeds the current balance.
func (l *Ledger) Debit(stub shim.ChaincodeStubInterface, accountID string, amount uint64) (uint64, error) {
	if amount == 0 {
		return 0, fmt.Errorf("debit of %s: %w", accountID, ErrInvalidAmount)
	}

	record, err := l.load(stub, accountID)
	if err != nil {
		return 0, err
	}

	if amount > record.Balance {
		return 0, fmt.Errorf("debit of %d from %s with balance %d: %w",
			amount, accountID, record.Balance, ErrInsufficientBalance)
	}

	record.Balance -= amount
	if err := l.store(stub, record); err != nil {
		return 0, err
	}
	return record.Balance, nil
}

func (l *Ledger) load(stub shim.ChaincodeStubInterface, accountID string) (*AccountBalance, error) {
	data, err := stub.GetState(BalanceKey(accountID))
	if err != nil {
		return nil, fmt.Errorf("failed to get balance for %s: %v", accountID, err)
	}
	if data == nil {
		return &AccountBalance{AccountID: accountID}, nil
	}

	var record AccountBalance
	if err := utils.UnmarshalJSON(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal balance for %s: %v", accountID, err)
	}
	return &record, nil
}

func (l *Ledger) store(stub shim.ChaincodeStubInterface, record *AccountBalance) error {
	record.LastUpdated = utils.FormatTime(utils.TxTime(stub))
	data, err := utils.MarshalJSON(record)
	if err != nil {
		return fmt.Errorf("failed to marshal balance for %s: %v", record.AccountID, err)
	}
	if err := stub.PutState(BalanceKey(record.AccountID), data); err != nil {
		return fmt.Errorf("failed to put balance for %s: %v", record.AccountID, err)
	}
	return nil
}
