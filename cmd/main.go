package main

import (
	"log"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/chaincode"
)

func main() {
	poolChaincode := chaincode.NewPoolContract()

	if err := shim.Start(poolChaincode); err != nil {
		log.Fatalf("Error starting pool chaincode: %v", err)
	}
}
