package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/wellpay/wellpay-backend-go/internal/domain/attendance"
)

// ChargeableUnpaidDays returns how many leave days in a period exceed the
// monthly paid-leave allowance. The allowance is consumed by the TOTAL leave
// count regardless of whether individual days were tagged PAID_LEAVE or
// UNPAID_LEAVE; charging only the UNPAID_LEAVE-labeled days would be wrong.
// Never negative.
func ChargeableUnpaidDays(totalLeaveDays, paidLeavesPerMonth int) int {
	chargeable := totalLeaveDays - paidLeavesPerMonth
	if chargeable < 0 {
		return 0
	}
	return chargeable
}

// Accountant reads the attendance ledger and applies the allowance rule.
type Accountant struct {
	ledger attendance.LeaveCounter
}

func NewAccountant(ledger attendance.LeaveCounter) *Accountant {
	return &Accountant{ledger: ledger}
}

// ChargeableUnpaidDays counts the employee's leave days inside [start, end]
// and charges only the days beyond the allowance.
func (a *Accountant) ChargeableUnpaidDays(ctx context.Context, employeeID string, start, end time.Time, paidLeavesPerMonth int) (int, error) {
	totalLeaveDays, err := a.ledger.CountLeaveDays(ctx, employeeID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to count leave days: %w", err)
	}

	return ChargeableUnpaidDays(totalLeaveDays, paidLeavesPerMonth), nil
}
