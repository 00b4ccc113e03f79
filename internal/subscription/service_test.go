package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hundredgaj/internal/audit"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Create(ctx context.Context, sub *Subscription) (*Subscription, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockStore) GetByUserID(ctx context.Context, userID int) (*Subscription, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Subscription), args.Error(1)
}

func (m *MockStore) Update(ctx context.Context, sub *Subscription) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockStore) ApplyRefresh(ctx context.Context, sub *Subscription, now time.Time) (bool, error) {
	args := m.Called(ctx, sub, now)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) IncrementUsage(ctx context.Context, subID int, kind UsageKind) (bool, error) {
	args := m.Called(ctx, subID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) ListDueForRefresh(ctx context.Context, now time.Time) ([]*Subscription, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Subscription), args.Error(1)
}

func (m *MockStore) AddPayment(ctx context.Context, subID int, p Payment) (*Payment, error) {
	args := m.Called(ctx, subID, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Payment), args.Error(1)
}

func (m *MockStore) ListPayments(ctx context.Context, subID int) ([]Payment, error) {
	args := m.Called(ctx, subID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Payment), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendQuotaExhausted(ctx context.Context, to, resource string, total int, refreshDate *time.Time) error {
	return m.Called(ctx, to, resource, total, refreshDate).Error(0)
}

type recordingAudit struct {
	events []audit.Event
}

func (r *recordingAudit) Record(ctx context.Context, event audit.Event) error {
	r.events = append(r.events, event)
	return nil
}

func (r *recordingAudit) List(ctx context.Context, subject string, subjectID int, limit int64) ([]audit.Event, error) {
	return r.events, nil
}

var fixedNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func newTestService(store *MockStore, notifier Notifier) (*service, *recordingAudit) {
	rec := &recordingAudit{}
	svc := NewService(store, rec, notifier).(*service)
	svc.now = func() time.Time { return fixedNow }
	return svc, rec
}

func activeSub(userType UserType, planType PlanType) *Subscription {
	sub := &Subscription{
		ID:        1,
		UserID:    7,
		UserType:  userType,
		PlanType:  planType,
		StartDate: fixedNow.AddDate(0, -1, 0),
		EndDate:   fixedNow.AddDate(0, 6, 0),
		IsActive:  true,
	}
	sub.ApplyEntitlements(ComputeEntitlements(userType, planType, decimal.Zero, fixedNow))
	return sub
}

func TestService_Create(t *testing.T) {
	store := new(MockStore)
	svc, rec := newTestService(store, nil)

	store.On("Create", mock.Anything, mock.MatchedBy(func(s *Subscription) bool {
		return s.UserID == 7 &&
			s.PlanType == PlanFree &&
			s.Contacts.Total == 10 &&
			s.Listings.Total == 0 &&
			s.EndDate.Equal(fixedNow.AddDate(1, 0, 0)) &&
			s.IsActive
	})).Return(&Subscription{ID: 1, UserID: 7, UserType: UserTypeBuyer, PlanType: PlanFree}, nil)

	sub, err := svc.Create(context.Background(), 7, UserTypeBuyer)

	require.NoError(t, err)
	assert.Equal(t, 1, sub.ID)
	require.Len(t, rec.events, 1)
	assert.Equal(t, audit.EventSubscriptionCreated, rec.events[0].Type)
	store.AssertExpectations(t)
}

func TestService_CreateInvalidUserType(t *testing.T) {
	store := new(MockStore)
	svc, _ := newTestService(store, nil)

	_, err := svc.Create(context.Background(), 7, "agent")

	assert.ErrorIs(t, err, ErrInvalidUserType)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_ChangePlan(t *testing.T) {
	tests := []struct {
		name      string
		userType  UserType
		planType  PlanType
		price     decimal.Decimal
		check     func(t *testing.T, sub *Subscription)
		expectErr error
	}{
		{
			name:     "owner upgrades to premium",
			userType: UserTypeOwner,
			planType: PlanPremium,
			price:    decimal.NewFromInt(4999),
			check: func(t *testing.T, sub *Subscription) {
				assert.Equal(t, 15, sub.Listings.Total)
				assert.Equal(t, 1, sub.Listings.Used)
				assert.Nil(t, sub.Listings.RefreshDate)
				assert.True(t, sub.Features.HomePageFeatured)
				assert.Equal(t, fixedNow.AddDate(0, 1, 0), sub.EndDate)
			},
		},
		{
			name:     "buyer boss price tier",
			userType: UserTypeBuyer,
			planType: PlanBoss,
			price:    decimal.NewFromInt(10000),
			check: func(t *testing.T, sub *Subscription) {
				assert.Equal(t, 100, sub.Contacts.Total)
				assert.Nil(t, sub.Contacts.RefreshDate)
			},
		},
		{
			name:      "unknown plan",
			userType:  UserTypeOwner,
			planType:  "gold",
			expectErr: ErrInvalidPlanType,
		},
		{
			name:      "negative price",
			userType:  UserTypeOwner,
			planType:  PlanBasic,
			price:     decimal.NewFromInt(-1),
			expectErr: ErrInvalidPrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			svc, rec := newTestService(store, nil)

			current := activeSub(tt.userType, PlanFree)
			current.Listings.Used = 1
			store.On("GetByUserID", mock.Anything, 7).Return(current, nil).Maybe()
			store.On("Update", mock.Anything, mock.Anything).Return(nil).Maybe()

			sub, err := svc.ChangePlan(context.Background(), 7, tt.planType, tt.price)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.planType, sub.PlanType)
			assert.True(t, sub.Price.Equal(tt.price))
			tt.check(t, sub)
			require.Len(t, rec.events, 1)
			assert.Equal(t, audit.EventPlanChanged, rec.events[0].Type)
		})
	}
}

func TestService_ChangePlanPriceOnlyRecomputes(t *testing.T) {
	store := new(MockStore)
	svc, _ := newTestService(store, nil)

	current := activeSub(UserTypeBuyer, PlanBoss)
	current.Price = decimal.NewFromInt(1000)
	current.Contacts.Total = 10
	store.On("GetByUserID", mock.Anything, 7).Return(current, nil)
	store.On("Update", mock.Anything, current).Return(nil)

	sub, err := svc.ChangePlan(context.Background(), 7, PlanBoss, decimal.NewFromInt(2000))

	require.NoError(t, err)
	assert.Equal(t, 20, sub.Contacts.Total)
}

func TestService_ConsumeListing(t *testing.T) {
	t.Run("granted", func(t *testing.T) {
		store := new(MockStore)
		notifier := new(MockNotifier)
		svc, _ := newTestService(store, notifier)

		sub := activeSub(UserTypeOwner, PlanStandard)
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)
		store.On("IncrementUsage", mock.Anything, 1, UsageListings).Return(true, nil)

		got, err := svc.ConsumeListing(context.Background(), 7, "owner@100gaj.com")

		require.NoError(t, err)
		assert.Equal(t, 1, got.Listings.Used)
		notifier.AssertNotCalled(t, "SendQuotaExhausted", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		store.AssertExpectations(t)
	})

	t.Run("last unit sends notice", func(t *testing.T) {
		store := new(MockStore)
		notifier := new(MockNotifier)
		svc, _ := newTestService(store, notifier)

		sub := activeSub(UserTypeOwner, PlanBasic)
		sub.Listings.Used = 3
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)
		store.On("IncrementUsage", mock.Anything, 1, UsageListings).Return(true, nil)
		notifier.On("SendQuotaExhausted", mock.Anything, "owner@100gaj.com", "listings", 4, (*time.Time)(nil)).Return(nil)

		got, err := svc.ConsumeListing(context.Background(), 7, "owner@100gaj.com")

		require.NoError(t, err)
		assert.Equal(t, 0, got.Listings.Remaining())
		notifier.AssertExpectations(t)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, nil)

		sub := activeSub(UserTypeDealer, PlanFree)
		sub.Listings.Used = 1
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)

		_, err := svc.ConsumeListing(context.Background(), 7, "")

		assert.ErrorIs(t, err, ErrQuotaExceeded)
		store.AssertNotCalled(t, "IncrementUsage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lost race", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, nil)

		sub := activeSub(UserTypeOwner, PlanBasic)
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)
		store.On("IncrementUsage", mock.Anything, 1, UsageListings).Return(false, nil)

		_, err := svc.ConsumeListing(context.Background(), 7, "")

		assert.ErrorIs(t, err, ErrQuotaExceeded)
	})

	t.Run("expired subscription", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, nil)

		sub := activeSub(UserTypeOwner, PlanPremium)
		sub.EndDate = fixedNow.Add(-time.Minute)
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)

		_, err := svc.ConsumeListing(context.Background(), 7, "")

		assert.ErrorIs(t, err, ErrSubscriptionInactive)
	})

	t.Run("refreshes due counter first", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, nil)

		sub := activeSub(UserTypeOwner, PlanFree)
		sub.Listings.Used = 2
		past := fixedNow.Add(-time.Hour)
		sub.Listings.RefreshDate = &past
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)
		store.On("ApplyRefresh", mock.Anything, sub, fixedNow).Return(true, nil)
		store.On("IncrementUsage", mock.Anything, 1, UsageListings).Return(true, nil)

		got, err := svc.ConsumeListing(context.Background(), 7, "")

		require.NoError(t, err)
		assert.Equal(t, 1, got.Listings.Used)
		assert.Equal(t, fixedNow.AddDate(0, 3, 0), *got.Listings.RefreshDate)
		store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		store.AssertExpectations(t)
	})

	t.Run("refresh already applied elsewhere", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, nil)

		sub := activeSub(UserTypeOwner, PlanFree)
		sub.Listings.Used = 1
		past := fixedNow.Add(-time.Hour)
		sub.Listings.RefreshDate = &past
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)
		store.On("ApplyRefresh", mock.Anything, sub, fixedNow).Return(false, nil)
		store.On("IncrementUsage", mock.Anything, 1, UsageListings).Return(false, nil)

		_, err := svc.ConsumeListing(context.Background(), 7, "")

		assert.ErrorIs(t, err, ErrQuotaExceeded)
		store.AssertExpectations(t)
	})
}

func TestService_ConsumeContact(t *testing.T) {
	t.Run("buyer granted", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, nil)

		sub := activeSub(UserTypeBuyer, PlanFree)
		store.On("GetByUserID", mock.Anything, 7).Return(sub, nil)
		store.On("IncrementUsage", mock.Anything, 1, UsageContacts).Return(true, nil)

		got, err := svc.ConsumeContact(context.Background(), 7, "")

		require.NoError(t, err)
		assert.Equal(t, 9, got.Contacts.Remaining())
	})

	t.Run("owner rejected", func(t *testing.T) {
		store := new(MockStore)
		svc, _ := newTestService(store, nil)

		store.On("GetByUserID", mock.Anything, 7).Return(activeSub(UserTypeOwner, PlanPremium), nil)

		_, err := svc.ConsumeContact(context.Background(), 7, "")

		assert.ErrorIs(t, err, ErrNotBuyer)
	})
}

func TestService_MeetsPlan(t *testing.T) {
	store := new(MockStore)
	svc, _ := newTestService(store, nil)

	store.On("GetByUserID", mock.Anything, 7).Return(activeSub(UserTypeOwner, PlanStandard), nil)
	store.On("GetByUserID", mock.Anything, 8).Return(nil, ErrSubscriptionNotFound)

	ok, err := svc.MeetsPlan(context.Background(), 7, PlanBasic)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.MeetsPlan(context.Background(), 7, PlanPremium)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.MeetsPlan(context.Background(), 8, PlanFree)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.MeetsPlan(context.Background(), 7, "gold")
	assert.ErrorIs(t, err, ErrInvalidPlanType)
}

func TestService_RecordPayment(t *testing.T) {
	store := new(MockStore)
	svc, rec := newTestService(store, nil)

	store.On("GetByUserID", mock.Anything, 7).Return(activeSub(UserTypeBuyer, PlanBoss), nil)
	store.On("AddPayment", mock.Anything, 1, mock.MatchedBy(func(p Payment) bool {
		return p.TransactionID == "txn_9" && p.Status == PaymentCompleted && p.Date.Equal(fixedNow)
	})).Return(&Payment{ID: 3, SubscriptionID: 1, TransactionID: "txn_9", Status: PaymentCompleted}, nil)

	p, err := svc.RecordPayment(context.Background(), 7, RecordPaymentRequest{
		TransactionID: "txn_9",
		Amount:        decimal.NewFromInt(2000),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, p.ID)
	require.Len(t, rec.events, 1)
	assert.Equal(t, audit.EventPaymentRecorded, rec.events[0].Type)

	_, err = svc.RecordPayment(context.Background(), 7, RecordPaymentRequest{TransactionID: "x", Amount: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestService_PaymentHistory(t *testing.T) {
	store := new(MockStore)
	svc, _ := newTestService(store, nil)

	store.On("GetByUserID", mock.Anything, 7).Return(activeSub(UserTypeOwner, PlanBasic), nil)
	store.On("ListPayments", mock.Anything, 1).Return([]Payment{{ID: 1}, {ID: 2}}, nil)

	payments, err := svc.PaymentHistory(context.Background(), 7)

	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestService_RefreshDue(t *testing.T) {
	store := new(MockStore)
	svc, rec := newTestService(store, nil)

	past := fixedNow.Add(-time.Hour)
	due := activeSub(UserTypeOwner, PlanFree)
	due.Listings.Used = 2
	due.Listings.RefreshDate = &past

	failing := activeSub(UserTypeBuyer, PlanFree)
	failing.ID = 2
	failing.Contacts.RefreshDate = &past

	raced := activeSub(UserTypeDealer, PlanFree)
	raced.ID = 3
	raced.Listings.RefreshDate = &past

	store.On("ListDueForRefresh", mock.Anything, fixedNow).Return([]*Subscription{due, failing, raced}, nil)
	store.On("ApplyRefresh", mock.Anything, due, fixedNow).Return(true, nil)
	store.On("ApplyRefresh", mock.Anything, failing, fixedNow).Return(false, errors.New("db down"))
	store.On("ApplyRefresh", mock.Anything, raced, fixedNow).Return(false, nil)

	n, err := svc.RefreshDue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, due.Listings.Used)
	require.Len(t, rec.events, 1)
	assert.Equal(t, audit.EventQuotaRefreshed, rec.events[0].Type)
	store.AssertExpectations(t)
}
