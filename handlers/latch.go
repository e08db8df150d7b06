package handlers

import (
	"fmt"
	"sync"

	"github.com/peer-lending-platform/pool-chaincode/domain"
)

// transferLatch serializes the withdrawal/settlement window. The peer runs
// one transaction to completion at a time, so the only contender is a nested
// invocation arriving through the external transfer call; that call must
// fail instead of running against uncommitted pool state.
var transferLatch sync.Mutex

func acquireTransferLatch(operation string) error {
	if !transferLatch.TryLock() {
		return fmt.Errorf("%s while a transfer is in flight: %w", operation, domain.ErrReentrantCall)
	}
	return nil
}

func releaseTransferLatch() {
	transferLatch.Unlock()
}
