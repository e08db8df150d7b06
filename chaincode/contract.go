package chaincode

import (
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"

	"github.com/peer-lending-platform/pool-chaincode/interfaces"
)

// PoolContract implements the chaincode interface for the lending pool
type PoolContract struct {
	BaseContract
	router *Router
}

// NewPoolContract creates a new pool contract
func NewPoolContract() *PoolContract {
	return &PoolContract{
		BaseContract: BaseContract{Name: "pool"},
		router:       NewRouter(),
	}
}

// NewPoolContractWithTransferrer creates a pool contract with an explicit
// transfer backend; used by tests to inject transfer outcomes.
func NewPoolContractWithTransferrer(transferrer interfaces.FundsTransferrer) *PoolContract {
	return &PoolContract{
		BaseContract: BaseContract{Name: "pool"},
		router:       NewRouterWithTransferrer(transferrer),
	}
}

// Invoke handles chaincode invocations
func (cc *PoolContract) Invoke(stub shim.ChaincodeStubInterface) peer.Response {
	return cc.InvokeWithRouter(stub, cc.router)
}
