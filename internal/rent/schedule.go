package rent

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultLateFeePercentage is the share of the base amount charged once an
// installment is 30 or more days late.
const DefaultLateFeePercentage = 0.05

const lateFeeRampDays = 30

// CalculateLateFee scales the fee linearly with days overdue up to a 30 day
// cap, rounded to whole currency units.
func CalculateLateFee(base decimal.Decimal, daysOverdue int, feePercentage float64) decimal.Decimal {
	if daysOverdue <= 0 {
		return decimal.Zero
	}
	days := min(daysOverdue, lateFeeRampDays)

	return base.
		Mul(decimal.NewFromFloat(feePercentage)).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(lateFeeRampDays)).
		Round(0)
}

// GeneratePaymentSchedule emits one pending installment per month on the
// lease's due day. A due date before the lease start's calendar date moves
// to the following month; generation stops at the first due date after the lease end. Days
// past the end of a short month fall on its last day.
func GeneratePaymentSchedule(lease LeaseTerms, leaseID, tenantID, landlordID int) []RentPayment {
	var payments []RentPayment
	if lease.RentDueDay < 1 || lease.EndDate.Before(lease.StartDate) {
		return payments
	}

	loc := lease.StartDate.Location()
	year, month, day := lease.StartDate.Date()
	startDay := time.Date(year, month, day, 0, 0, 0, 0, loc)

	for {
		due := dueDateIn(year, month, lease.RentDueDay, loc)
		year, month = nextMonth(year, month)

		if due.Before(startDay) {
			continue
		}
		if due.After(lease.EndDate) {
			break
		}

		payments = append(payments, RentPayment{
			LeaseID:    leaseID,
			TenantID:   tenantID,
			LandlordID: landlordID,
			Amount:     lease.MonthlyRent,
			DueDate:    due,
			Status:     StatusPending,
			LateFee:    decimal.Zero,
		})
	}

	return payments
}

func dueDateIn(year int, month time.Month, day int, loc *time.Location) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	return time.Date(year, month, min(day, lastDay), 0, 0, 0, 0, loc)
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
