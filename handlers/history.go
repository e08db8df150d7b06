package handlers

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/config"
	"github.com/peer-lending-platform/pool-chaincode/services"
	"github.com/peer-lending-platform/pool-chaincode/utils"
)

// HistoryEntry records one state mutation for audit queries
type HistoryEntry struct {
	HistoryID     string `json:"historyID"`
	EntityID      string `json:"entityID"`
	EntityType    string `json:"entityType"`
	Timestamp     string `json:"timestamp"`
	ChangeType    string `json:"changeType"`
	FieldName     string `json:"fieldName"`
	PreviousValue string `json:"previousValue"`
	NewValue      string `json:"newValue"`
	ActorID       string `json:"actorID"`
	TransactionID string `json:"transactionID"`
}

func recordHistory(stub shim.ChaincodeStubInterface, ps *services.PersistenceService, entityID, entityType, changeType, fieldName, previousValue, newValue, actorID string) error {
	historyID := utils.GenerateID(config.HistoryPrefix)

	entry := HistoryEntry{
		HistoryID:     historyID,
		EntityID:      entityID,
		EntityType:    entityType,
		Timestamp:     utils.FormatTime(utils.TxTime(stub)),
		ChangeType:    changeType,
		FieldName:     fieldName,
		PreviousValue: previousValue,
		NewValue:      newValue,
		ActorID:       actorID,
		TransactionID: stub.GetTxID(),
	}

	compositeKey, err := stub.CreateCompositeKey(config.HistoryIndex, []string{entityID, historyID})
	if err != nil {
		return fmt.Errorf("failed to create history key: %v", err)
	}

	return ps.Put(stub, compositeKey, entry)
}

func getEntityHistory(stub shim.ChaincodeStubInterface, entityID string) ([]HistoryEntry, error) {
	iterator, err := stub.GetStateByPartialCompositeKey(config.HistoryIndex, []string{entityID})
	if err != nil {
		return nil, fmt.Errorf("failed to get history iterator: %v", err)
	}
	defer iterator.Close()

	history := []HistoryEntry{}
	for iterator.HasNext() {
		response, err := iterator.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate history: %v", err)
		}

		var entry HistoryEntry
		if err := utils.UnmarshalJSON(response.Value, &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %v", err)
		}

		history = append(history, entry)
	}

	return history, nil
}
