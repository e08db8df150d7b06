package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/handlers"
	"github.com/peer-lending-platform/pool-chaincode/interfaces"
	"github.com/peer-lending-platform/pool-chaincode/services"
)

// Router handles function routing for the pool chaincode
type Router struct {
	handlers map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error)
}

// NewRouter creates a router wired to the configured token chaincode
func NewRouter() *Router {
	return NewRouterWithTransferrer(services.NewTokenTransferService())
}

// NewRouterWithTransferrer creates a router with an explicit transfer backend
func NewRouterWithTransferrer(transferrer interfaces.FundsTransferrer) *Router {
	poolHandler := handlers.NewPoolHandler(transferrer)
	loanHandler := handlers.NewLoanHandler()

	return &Router{
		handlers: map[string]func(shim.ChaincodeStubInterface, []string) ([]byte, error){
			// Pool functions
			"Deposit":           poolHandler.Deposit,
			"Withdraw":          poolHandler.Withdraw,
			"GetBalance":        poolHandler.GetBalance,
			"GetPoolTotals":     poolHandler.GetPoolTotals,
			"GetAccountHistory": poolHandler.GetAccountHistory,

			// Loan functions
			"RequestLoan":        loanHandler.RequestLoan,
			"RepayLoan":          loanHandler.RepayLoan,
			"GetLoan":            loanHandler.GetLoan,
			"GetLoanCount":       loanHandler.GetLoanCount,
			"GetLoansByBorrower": loanHandler.GetLoansByBorrower,
			"GetLoanHistory":     loanHandler.GetLoanHistory,
		},
	}
}

// Route routes the function call to the appropriate handler
func (r *Router) Route(stub shim.ChaincodeStubInterface, function string, args []string) ([]byte, error) {
	if function == "ping" {
		return []byte("pong"), nil
	}

	handler, exists := r.handlers[function]
	if !exists {
		return nil, fmt.Errorf("function %s not found", function)
	}

	return handler(stub, args)
}
