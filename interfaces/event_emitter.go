package interfaces

import "github.com/hyperledger/fabric-chaincode-go/shim"

// EventPayload represents the structure of an event payload
type EventPayload struct {
	EventType  string            `json:"eventType"`
	EntityID   string            `json:"entityID"`
	EntityType string            `json:"entityType"`
	ActorID    string            `json:"actorID"`
	Timestamp  string            `json:"timestamp"`
	Data       interface{}       `json:"data"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// EventEmitter defines the interface for emitting chaincode events
type EventEmitter interface {
	// Emit a single event
	EmitEvent(stub shim.ChaincodeStubInterface, eventName string, payload EventPayload) error

	// Create standardized event payload, timestamped from the transaction
	CreateEventPayload(stub shim.ChaincodeStubInterface, eventType, entityID, entityType, actorID string, data interface{}) EventPayload

	// Create standardized event payload with metadata
	CreateEventPayloadWithMetadata(stub shim.ChaincodeStubInterface, eventType, entityID, entityType, actorID string, data interface{}, metadata map[string]string) EventPayload
}
