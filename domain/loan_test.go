package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoan_RepaymentTotal(t *testing.T) {
	tests := []struct {
		name      string
		principal uint64
		rate      uint64
		expected  uint64
	}{
		{"ten percent of ten", 10, 10, 11},
		// 15 * 10 / 100 floors to 1
		{"interest floors down", 15, 10, 16},
		// 99 * 1 / 100 floors to 0
		{"sub-unit interest floors to zero", 99, 1, 99},
		{"round figure", 1000, 25, 1250},
		{"full rate doubles", 40, 100, 80},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			loan := &Loan{Principal: tc.principal, InterestRate: tc.rate}
			total, err := loan.RepaymentTotal()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, total)
		})
	}
}

func TestLoan_RepaymentTotalOverflow(t *testing.T) {
	t.Run("interest product overflows", func(t *testing.T) {
		loan := &Loan{Principal: math.MaxUint64, InterestRate: 2}
		_, err := loan.RepaymentTotal()
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("total sum overflows", func(t *testing.T) {
		loan := &Loan{Principal: math.MaxUint64 - 5, InterestRate: 1}
		_, err := loan.RepaymentTotal()
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestLoan_Status(t *testing.T) {
	loan := &Loan{}
	assert.Equal(t, LoanStatusOpen, loan.Status())

	loan.Repaid = true
	assert.Equal(t, LoanStatusRepaid, loan.Status())
}
