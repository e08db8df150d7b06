package services

import (
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/config"
	"github.com/peer-lending-platform/pool-chaincode/domain"
	"github.com/peer-lending-platform/pool-chaincode/interfaces"
	"github.com/peer-lending-platform/pool-chaincode/utils"
)

// BaseEventService provides common event emission functionality
type BaseEventService struct{}

// NewBaseEventService creates a new base event service
func NewBaseEventService() *BaseEventService {
	return &BaseEventService{}
}

// EmitEvent emits a standardized event
func (es *BaseEventService) EmitEvent(stub shim.ChaincodeStubInterface, eventName string, payload interfaces.EventPayload) error {
	payloadBytes, err := utils.MarshalJSON(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %v", err)
	}

	if err := stub.SetEvent(eventName, payloadBytes); err != nil {
		return fmt.Errorf("failed to emit event %s: %v", eventName, err)
	}

	return nil
}

// CreateEventPayload creates a standardized event payload
func (es *BaseEventService) CreateEventPayload(stub shim.ChaincodeStubInterface, eventType, entityID, entityType, actorID string, data interface{}) interfaces.EventPayload {
	return es.CreateEventPayloadWithMetadata(stub, eventType, entityID, entityType, actorID, data, make(map[string]string))
}

// CreateEventPayloadWithMetadata creates a standardized event payload with
// metadata. The payload timestamp comes from the transaction so that every
// endorser produces an identical event body.
func (es *BaseEventService) CreateEventPayloadWithMetadata(stub shim.ChaincodeStubInterface, eventType, entityID, entityType, actorID string, data interface{}, metadata map[string]string) interfaces.EventPayload {
	return interfaces.EventPayload{
		EventType:  eventType,
		EntityID:   entityID,
		EntityType: entityType,
		ActorID:    actorID,
		Timestamp:  utils.FormatTime(utils.TxTime(stub)),
		Data:       data,
		Metadata:   metadata,
	}
}

// EventService handles event emission for pool operations. Each event is
// emitted exactly once per successful operation, never on a failed one.
type EventService struct {
	emitter interfaces.EventEmitter
}

// NewEventService creates a new event service
func NewEventService() *EventService {
	return &EventService{
		emitter: NewBaseEventService(),
	}
}

// EmitDeposited emits a deposit event
func (es *EventService) EmitDeposited(stub shim.ChaincodeStubInterface, accountID string, amount, newBalance uint64) error {
	metadata := map[string]string{
		"amount":     strconv.FormatUint(amount, 10),
		"newBalance": strconv.FormatUint(newBalance, 10),
	}

	payload := es.emitter.CreateEventPayloadWithMetadata(
		stub,
		config.EventDeposited,
		accountID,
		"AccountBalance",
		accountID,
		nil,
		metadata,
	)

	return es.emitter.EmitEvent(stub, config.EventDeposited, payload)
}

// EmitWithdrawn emits a withdrawal event
func (es *EventService) EmitWithdrawn(stub shim.ChaincodeStubInterface, accountID string, amount, newBalance uint64) error {
	metadata := map[string]string{
		"amount":     strconv.FormatUint(amount, 10),
		"newBalance": strconv.FormatUint(newBalance, 10),
	}

	payload := es.emitter.CreateEventPayloadWithMetadata(
		stub,
		config.EventWithdrawn,
		accountID,
		"AccountBalance",
		accountID,
		nil,
		metadata,
	)

	return es.emitter.EmitEvent(stub, config.EventWithdrawn, payload)
}

// EmitLoanRequested emits a loan requested event
func (es *EventService) EmitLoanRequested(stub shim.ChaincodeStubInterface, loan *domain.Loan) error {
	metadata := map[string]string{
		"borrower":     loan.Borrower,
		"principal":    strconv.FormatUint(loan.Principal, 10),
		"interestRate": strconv.FormatUint(loan.InterestRate, 10),
		"duration":     strconv.FormatInt(loan.DurationSeconds, 10),
		"maturity":     strconv.FormatInt(loan.Maturity, 10),
	}

	payload := es.emitter.CreateEventPayloadWithMetadata(
		stub,
		config.EventLoanRequested,
		strconv.FormatUint(loan.LoanIndex, 10),
		"Loan",
		loan.Borrower,
		loan,
		metadata,
	)

	return es.emitter.EmitEvent(stub, config.EventLoanRequested, payload)
}

// EmitLoanRepaid emits a loan repaid event
func (es *EventService) EmitLoanRepaid(stub shim.ChaincodeStubInterface, loan *domain.Loan, totalAmount uint64) error {
	metadata := map[string]string{
		"borrower":    loan.Borrower,
		"totalAmount": strconv.FormatUint(totalAmount, 10),
	}

	payload := es.emitter.CreateEventPayloadWithMetadata(
		stub,
		config.EventLoanRepaid,
		strconv.FormatUint(loan.LoanIndex, 10),
		"Loan",
		loan.Borrower,
		loan,
		metadata,
	)

	return es.emitter.EmitEvent(stub, config.EventLoanRepaid, payload)
}
