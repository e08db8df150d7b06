package services

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/utils"
)

// PersistenceService provides JSON persistence over Fabric state
type PersistenceService struct{}

// NewPersistenceService creates a new persistence service
func NewPersistenceService() *PersistenceService {
	return &PersistenceService{}
}

// Get retrieves and unmarshals data from the ledger
func (ps *PersistenceService) Get(stub shim.ChaincodeStubInterface, key string, result interface{}) error {
	data, err := stub.GetState(key)
	if err != nil {
		return fmt.Errorf("failed to get state for key %s: %v", key, err)
	}
	if data == nil {
		return fmt.Errorf("no data found for key %s", key)
	}

	if err := utils.UnmarshalJSON(data, result); err != nil {
		return fmt.Errorf("failed to unmarshal data for key %s: %v", key, err)
	}

	return nil
}

// Put marshals and stores data to the ledger
func (ps *PersistenceService) Put(stub shim.ChaincodeStubInterface, key string, value interface{}) error {
	data, err := utils.MarshalJSON(value)
	if err != nil {
		return fmt.Errorf("failed to marshal data for key %s: %v", key, err)
	}

	if err := stub.PutState(key, data); err != nil {
		return fmt.Errorf("failed to put state for key %s: %v", key, err)
	}

	return nil
}

// Exists checks if a key exists in the ledger
func (ps *PersistenceService) Exists(stub shim.ChaincodeStubInterface, key string) (bool, error) {
	data, err := stub.GetState(key)
	if err != nil {
		return false, fmt.Errorf("failed to check existence for key %s: %v", key, err)
	}
	return data != nil, nil
}
