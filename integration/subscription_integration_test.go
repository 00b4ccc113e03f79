package integration_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hundredgaj/internal/subscription"
)

func TestSubscriptionLifecycle_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	repo := subscription.NewRepository(database)
	svc := subscription.NewService(repo, nil, nil)

	sub, err := svc.Create(ctx, 101, subscription.UserTypeOwner)
	require.NoError(t, err)
	assert.Equal(t, subscription.PlanFree, sub.PlanType)
	assert.Equal(t, 2, sub.Listings.Total)

	_, err = svc.Create(ctx, 101, subscription.UserTypeOwner)
	assert.ErrorIs(t, err, subscription.ErrSubscriptionExists)

	sub, err = svc.ChangePlan(ctx, 101, subscription.PlanPremium, decimal.NewFromInt(2999))
	require.NoError(t, err)

	stored, err := repo.GetByUserID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, subscription.PlanPremium, stored.PlanType)
	assert.Equal(t, sub.Listings.Total, stored.Listings.Total)
	assert.Equal(t, sub.Features, stored.Features)
	assert.True(t, stored.Price.Equal(decimal.NewFromInt(2999)))

	_, err = svc.ConsumeListing(ctx, 101, "")
	require.NoError(t, err)

	stored, err = repo.GetByUserID(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Listings.Used)
}

func TestIncrementUsage_ConcurrentConsumersNeverOvershoot_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	repo := subscription.NewRepository(database)
	svc := subscription.NewService(repo, nil, nil)

	sub, err := svc.Create(ctx, 202, subscription.UserTypeOwner)
	require.NoError(t, err)
	total := sub.Listings.Total

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < total+10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.IncrementUsage(ctx, sub.ID, subscription.UsageListings)
			if err == nil && ok {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(total), granted.Load())

	stored, err := repo.GetByUserID(ctx, 202)
	require.NoError(t, err)
	assert.Equal(t, total, stored.Listings.Used)
}

func TestRefreshDue_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	repo := subscription.NewRepository(database)
	svc := subscription.NewService(repo, nil, nil)

	_, err := svc.Create(ctx, 303, subscription.UserTypeBuyer)
	require.NoError(t, err)
	_, err = svc.ConsumeContact(ctx, 303, "")
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	_, err = database.Exec(`UPDATE subscriptions SET contacts_refresh_date = $1 WHERE user_id = $2`, past, 303)
	require.NoError(t, err)

	n, err := svc.RefreshDue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stored, err := repo.GetByUserID(ctx, 303)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Contacts.Used)
	require.NotNil(t, stored.Contacts.RefreshDate)
	assert.True(t, stored.Contacts.RefreshDate.After(time.Now()))
}

func TestStaleRefreshKeepsNewerUsage_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	repo := subscription.NewRepository(database)
	svc := subscription.NewService(repo, nil, nil)

	_, err := svc.Create(ctx, 304, subscription.UserTypeBuyer)
	require.NoError(t, err)

	past := time.Now().Add(-time.Hour)
	_, err = database.Exec(`UPDATE subscriptions SET contacts_refresh_date = $1 WHERE user_id = $2`, past, 304)
	require.NoError(t, err)

	stale, err := repo.GetByUserID(ctx, 304)
	require.NoError(t, err)
	now := time.Now()
	require.True(t, stale.RefreshDue(now))

	applied, err := repo.ApplyRefresh(ctx, stale, now)
	require.NoError(t, err)
	assert.True(t, applied)

	_, err = svc.ConsumeContact(ctx, 304, "")
	require.NoError(t, err)

	applied, err = repo.ApplyRefresh(ctx, stale, now)
	require.NoError(t, err)
	assert.False(t, applied)

	stored, err := repo.GetByUserID(ctx, 304)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Contacts.Used)
}

func TestSubscriptionPayments_Integration(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	svc := subscription.NewService(subscription.NewRepository(database), nil, nil)

	_, err := svc.Create(ctx, 404, subscription.UserTypeDealer)
	require.NoError(t, err)

	for _, txID := range []string{"txn_a", "txn_b"} {
		_, err := svc.RecordPayment(ctx, 404, subscription.RecordPaymentRequest{
			TransactionID: txID,
			Amount:        decimal.NewFromInt(999),
		})
		require.NoError(t, err)
	}

	payments, err := svc.PaymentHistory(ctx, 404)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "txn_b", payments[0].TransactionID)
	assert.Equal(t, subscription.PaymentCompleted, payments[0].Status)
}
