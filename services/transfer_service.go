package services

import (
	"fmt"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/config"
)

// TokenTransferService moves native tokens by invoking the token chaincode
// on the same channel. Any non-OK response is reported as an error so the
// caller can roll the surrounding operation back.
type TokenTransferService struct {
	ChaincodeName string
	Function      string
	Channel       string
}

// NewTokenTransferService creates a transfer service wired to the configured
// token chaincode
func NewTokenTransferService() *TokenTransferService {
	return &TokenTransferService{
		ChaincodeName: config.TokenChaincodeName,
		Function:      config.TokenTransferFunction,
		Channel:       config.TokenChaincodeChannel,
	}
}

// Transfer invokes the token chaincode to move amount to destination.
func (ts *TokenTransferService) Transfer(stub shim.ChaincodeStubInterface, destination string, amount uint64) error {
	args := [][]byte{
		[]byte(ts.Function),
		[]byte(destination),
		[]byte(strconv.FormatUint(amount, 10)),
	}

	response := stub.InvokeChaincode(ts.ChaincodeName, args, ts.Channel)
	if response.Status != shim.OK {
		return fmt.Errorf("token chaincode %s rejected transfer of %d to %s: %s",
			ts.ChaincodeName, amount, destination, response.Message)
	}

	return nil
}
