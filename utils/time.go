package utils

import (
	"fmt"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// TimeFormat defines the standard time format used across the application
const TimeFormat = "2006-01-02T15:04:05Z07:00"

// FormatTime formats a time.Time to the standard string format
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// ParseTime parses a time string in the standard format
func ParseTime(timeStr string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %s: %v", timeStr, err)
	}
	return t, nil
}

// TxTime returns the transaction timestamp supplied by the peer. Test stubs
// do not always carry one, so it falls back to wall-clock time.
func TxTime(stub shim.ChaincodeStubInterface) time.Time {
	ts, err := stub.GetTxTimestamp()
	if err != nil || ts == nil {
		return time.Now()
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos))
}
