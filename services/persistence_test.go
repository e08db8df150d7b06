package services

import (
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRecord struct {
	ID     string `json:"id"`
	Amount uint64 `json:"amount"`
}

func TestPersistenceService_PutAndGet(t *testing.T) {
	ps := NewPersistenceService()
	stub := shimtest.NewMockStub("test", nil)

	stub.MockTransactionStart("tx1")
	defer stub.MockTransactionEnd("tx1")

	original := sampleRecord{ID: "acct-A", Amount: 100}
	require.NoError(t, ps.Put(stub, "KEY_1", &original))

	var loaded sampleRecord
	require.NoError(t, ps.Get(stub, "KEY_1", &loaded))
	assert.Equal(t, original, loaded)
}

func TestPersistenceService_GetMissingKey(t *testing.T) {
	ps := NewPersistenceService()
	stub := shimtest.NewMockStub("test", nil)

	stub.MockTransactionStart("tx1")
	defer stub.MockTransactionEnd("tx1")

	var loaded sampleRecord
	err := ps.Get(stub, "NO_SUCH_KEY", &loaded)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data found")
}

func TestPersistenceService_Exists(t *testing.T) {
	ps := NewPersistenceService()
	stub := shimtest.NewMockStub("test", nil)

	stub.MockTransactionStart("tx1")
	defer stub.MockTransactionEnd("tx1")

	exists, err := ps.Exists(stub, "KEY_1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, ps.Put(stub, "KEY_1", &sampleRecord{ID: "acct-A"}))

	exists, err = ps.Exists(stub, "KEY_1")
	require.NoError(t, err)
	assert.True(t, exists)
}
