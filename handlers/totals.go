package handlers

import (
	"fmt"
	"math"

	"github.com/hyperledger/fabric-chaincode-go/shim"

	"github.com/peer-lending-platform/pool-chaincode/config"
	"github.com/peer-lending-platform/pool-chaincode/domain"
	"github.com/peer-lending-platform/pool-chaincode/services"
	"github.com/peer-lending-platform/pool-chaincode/utils"
)

func loadPoolTotals(stub shim.ChaincodeStubInterface, ps *services.PersistenceService) (*domain.PoolTotals, error) {
	exists, err := ps.Exists(stub, config.PoolTotalsKey)
	if err != nil {
		return nil, err
	}

	totals := &domain.PoolTotals{}
	if exists {
		if err := ps.Get(stub, config.PoolTotalsKey, totals); err != nil {
			return nil, err
		}
	}
	return totals, nil
}

func addPoolTotals(stub shim.ChaincodeStubInterface, ps *services.PersistenceService, deposited, withdrawn, repaid uint64) error {
	totals, err := loadPoolTotals(stub, ps)
	if err != nil {
		return err
	}

	if totals.TotalDeposited > math.MaxUint64-deposited ||
		totals.TotalWithdrawn > math.MaxUint64-withdrawn ||
		totals.TotalRepaid > math.MaxUint64-repaid {
		return fmt.Errorf("pool totals: %w", domain.ErrOverflow)
	}

	totals.TotalDeposited += deposited
	totals.TotalWithdrawn += withdrawn
	totals.TotalRepaid += repaid
	totals.LastUpdated = utils.FormatTime(utils.TxTime(stub))

	return ps.Put(stub, config.PoolTotalsKey, totals)
}
