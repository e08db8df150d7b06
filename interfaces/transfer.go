package interfaces

import "github.com/hyperledger/fabric-chaincode-go/shim"

// FundsTransferrer moves native tokens out of the pool to a destination
// account. Implementations must report any non-success outcome as an error;
// the pool treats that as a hard failure requiring rollback of the
// withdrawal debit.
type FundsTransferrer interface {
	Transfer(stub shim.ChaincodeStubInterface, destination string, amount uint64) error
}
