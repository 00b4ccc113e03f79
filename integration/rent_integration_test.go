package integration_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hundredgaj/internal/rent"
)

func scheduleRequest(start, end time.Time) rent.ScheduleRequest {
	return rent.ScheduleRequest{
		TenantID:   20,
		LandlordID: 30,
		LeaseTerms: rent.LeaseTerms{
			StartDate:   start,
			EndDate:     end,
			MonthlyRent: decimal.NewFromInt(15000),
			RentDueDay:  5,
		},
	}
}

func TestRentSchedule_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	svc := rent.NewService(rent.NewRepository(database), nil, nil, 0)

	start := time.Now().UTC().AddDate(0, 1, 0)
	created, err := svc.CreateSchedule(ctx, 1, scheduleRequest(start, start.AddDate(0, 6, 0)))
	require.NoError(t, err)
	require.NotEmpty(t, created)

	listed, err := svc.ListByLease(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, listed, len(created))
	for _, p := range listed {
		assert.Equal(t, rent.StatusPending, p.Status)
		assert.Equal(t, 5, p.DueDate.UTC().Day())
	}
}

func TestRentPaymentLifecycle_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	svc := rent.NewService(rent.NewRepository(database), nil, nil, 0)

	start := time.Now().UTC().AddDate(0, -2, 0)
	created, err := svc.CreateSchedule(ctx, 2, scheduleRequest(start, start.AddDate(0, 4, 0)))
	require.NoError(t, err)

	first := created[0]
	assert.Equal(t, rent.StatusOverdue, first.Status)

	withFee, err := svc.ApplyLateFee(ctx, first.ID, nil, 30)
	require.NoError(t, err)
	assert.True(t, withFee.LateFee.IsPositive())

	paid, err := svc.MarkAsPaid(ctx, first.ID, rent.MarkPaidRequest{PaymentMethod: "bank_transfer", TransactionID: "neft_1"}, 20, "")
	require.NoError(t, err)
	assert.Equal(t, rent.StatusPaid, paid.Status)

	_, err = svc.MarkAsPaid(ctx, first.ID, rent.MarkPaidRequest{PaymentMethod: "cash"}, 20, "")
	assert.ErrorIs(t, err, rent.ErrAlreadyPaid)

	_, err = svc.AddLateFee(ctx, first.ID, decimal.NewFromInt(10), 30)
	assert.ErrorIs(t, err, rent.ErrAlreadyPaid)

	now := time.Now().UTC()
	revenue, err := svc.MonthlyRevenue(ctx, 30, now.Year(), now.Month())
	require.NoError(t, err)
	assert.True(t, revenue.Equal(paid.TotalAmount()), "revenue = %s", revenue)
}

func TestSyncOverdue_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	repo := rent.NewRepository(database)
	svc := rent.NewService(repo, nil, nil, 0)

	_, err := repo.Create(ctx, &rent.RentPayment{
		LeaseID:    3,
		TenantID:   20,
		LandlordID: 30,
		Amount:     decimal.NewFromInt(8000),
		DueDate:    time.Now().UTC().AddDate(0, 0, -3),
		Status:     rent.StatusPending,
	})
	require.NoError(t, err)

	n, err := svc.SyncOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	overdue, err := repo.FindOverdue(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, rent.StatusOverdue, overdue[0].Status)

	listed, err := repo.ListByLease(ctx, 3)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, rent.StatusOverdue, listed[0].Status)
}
