package handlers

import (
	"encoding/json"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/require"

	"github.com/peer-lending-platform/pool-chaincode/domain"
	"github.com/peer-lending-platform/pool-chaincode/interfaces"
)

// mockTransferrer stands in for the token chaincode so tests can inject
// transfer outcomes and nested invocations
type mockTransferrer struct {
	failWith   error
	calls      int
	onTransfer func(stub shim.ChaincodeStubInterface, destination string, amount uint64) error
}

func (m *mockTransferrer) Transfer(stub shim.ChaincodeStubInterface, destination string, amount uint64) error {
	m.calls++
	if m.onTransfer != nil {
		return m.onTransfer(stub, destination, amount)
	}
	return m.failWith
}

func newTestStub() *shimtest.MockStub {
	stub := shimtest.NewMockStub("pool", nil)
	stub.MockTransactionStart("txid")
	return stub
}

func marshalRequest(t *testing.T, req interface{}) []string {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)
	return []string{string(data)}
}

func depositFor(t *testing.T, h *PoolHandler, stub shim.ChaincodeStubInterface, caller string, amount int64) {
	t.Helper()
	_, err := h.Deposit(stub, marshalRequest(t, domain.DepositRequest{CallerID: caller, Amount: amount}))
	require.NoError(t, err)
}

func balanceOf(t *testing.T, stub shim.ChaincodeStubInterface, accountID string) uint64 {
	t.Helper()
	balance, err := domain.NewLedger().BalanceOf(stub, accountID)
	require.NoError(t, err)
	return balance
}

// drainEvents empties the stub's event channel so tests can assert exactly
// which events an operation emitted, including none at all.
func drainEvents(t *testing.T, stub *shimtest.MockStub) []*peer.ChaincodeEvent {
	t.Helper()
	var events []*peer.ChaincodeEvent
	for {
		select {
		case event := <-stub.ChaincodeEventsChannel:
			events = append(events, event)
		default:
			return events
		}
	}
}

func decodeEventPayload(t *testing.T, event *peer.ChaincodeEvent) interfaces.EventPayload {
	t.Helper()
	var payload interfaces.EventPayload
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	return payload
}
