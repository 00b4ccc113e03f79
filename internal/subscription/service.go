package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"hundredgaj/internal/audit"
	"hundredgaj/internal/logger"
	"hundredgaj/internal/metrics"
)

// FreePlanValidity is how long a newly created free subscription stays valid.
const FreePlanValidity = 12

type Notifier interface {
	SendQuotaExhausted(ctx context.Context, to, resource string, total int, refreshDate *time.Time) error
}

type Service interface {
	Create(ctx context.Context, userID int, userType UserType) (*Subscription, error)
	Get(ctx context.Context, userID int) (*Subscription, error)
	ChangePlan(ctx context.Context, userID int, planType PlanType, price decimal.Decimal) (*Subscription, error)
	ConsumeListing(ctx context.Context, userID int, email string) (*Subscription, error)
	ConsumeContact(ctx context.Context, userID int, email string) (*Subscription, error)
	MeetsPlan(ctx context.Context, userID int, minPlan PlanType) (bool, error)
	RecordPayment(ctx context.Context, userID int, req RecordPaymentRequest) (*Payment, error)
	PaymentHistory(ctx context.Context, userID int) ([]Payment, error)
	RefreshDue(ctx context.Context) (int, error)
}

type service struct {
	repo     Store
	audit    audit.Recorder
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Store, recorder audit.Recorder, notifier Notifier) Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	return &service{
		repo:     repo,
		audit:    recorder,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID int, userType UserType) (*Subscription, error) {
	if !ValidUserType(userType) {
		return nil, ErrInvalidUserType
	}

	now := s.now()
	sub := &Subscription{
		UserID:    userID,
		UserType:  userType,
		PlanType:  PlanFree,
		Price:     decimal.Zero,
		StartDate: now,
		EndDate:   now.AddDate(0, FreePlanValidity, 0),
		IsActive:  true,
	}
	sub.ApplyEntitlements(ComputeEntitlements(userType, PlanFree, decimal.Zero, now))

	created, err := s.repo.Create(ctx, sub)
	if err != nil {
		return nil, err
	}

	metrics.RecordSubscription(string(userType))
	s.record(ctx, audit.NewEvent(audit.EventSubscriptionCreated, audit.SubjectSubscription, created.ID, userID, map[string]any{
		"user_type": userType,
		"plan_type": PlanFree,
	}))
	logger.Info("Subscription created", "user_id", userID, "user_type", userType)

	return created, nil
}

func (s *service) Get(ctx context.Context, userID int) (*Subscription, error) {
	return s.repo.GetByUserID(ctx, userID)
}

// ChangePlan switches the plan and recomputes every derived field. Paid
// plans run for one month from now; used counters are kept.
func (s *service) ChangePlan(ctx context.Context, userID int, planType PlanType, price decimal.Decimal) (*Subscription, error) {
	if !ValidPlanType(planType) {
		return nil, ErrInvalidPlanType
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	previous := sub.PlanType

	sub.PlanType = planType
	sub.Price = price
	sub.IsActive = true
	sub.StartDate = now
	if planType == PlanFree {
		sub.EndDate = now.AddDate(0, FreePlanValidity, 0)
	} else {
		sub.EndDate = now.AddDate(0, 1, 0)
	}
	sub.ApplyEntitlements(ComputeEntitlements(sub.UserType, planType, price, now))

	if err := s.repo.Update(ctx, sub); err != nil {
		return nil, err
	}

	metrics.RecordPlanChange(string(sub.UserType), string(planType))
	s.record(ctx, audit.NewEvent(audit.EventPlanChanged, audit.SubjectSubscription, sub.ID, userID, map[string]any{
		"from":  previous,
		"to":    planType,
		"price": price.String(),
	}))
	logger.Info("Plan changed", "user_id", userID, "from", previous, "to", planType, "price", price.String())

	return sub, nil
}

func (s *service) ConsumeListing(ctx context.Context, userID int, email string) (*Subscription, error) {
	return s.consume(ctx, userID, email, UsageListings)
}

func (s *service) ConsumeContact(ctx context.Context, userID int, email string) (*Subscription, error) {
	return s.consume(ctx, userID, email, UsageContacts)
}

func (s *service) consume(ctx context.Context, userID int, email string, kind UsageKind) (*Subscription, error) {
	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if kind == UsageContacts && sub.UserType != UserTypeBuyer {
		return nil, ErrNotBuyer
	}

	now := s.now()
	if sub.IsActive && sub.RefreshDue(now) {
		applied, err := s.repo.ApplyRefresh(ctx, sub, now)
		if err != nil {
			return nil, err
		}
		if applied {
			metrics.RecordQuotaRefreshes(1)
		}
	}

	if !sub.Usable(now) {
		return nil, ErrSubscriptionInactive
	}

	counter := sub.Counter(kind)
	if counter.Remaining() == 0 {
		s.rejectConsumption(sub, kind)
		return nil, ErrQuotaExceeded
	}

	ok, err := s.repo.IncrementUsage(ctx, sub.ID, kind)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.rejectConsumption(sub, kind)
		return nil, ErrQuotaExceeded
	}

	if err := counter.Consume(); err != nil {
		return nil, err
	}
	metrics.RecordQuotaConsumption(string(kind), "granted")

	if counter.Remaining() == 0 {
		s.notifyExhausted(ctx, email, kind, *counter)
	}

	return sub, nil
}

func (s *service) rejectConsumption(sub *Subscription, kind UsageKind) {
	metrics.RecordQuotaConsumption(string(kind), "rejected")
	logger.Info("Quota exceeded", "user_id", sub.UserID, "resource", kind, "total", sub.Counter(kind).Total)
}

func (s *service) notifyExhausted(ctx context.Context, email string, kind UsageKind, counter UsageCounter) {
	if s.notifier == nil || email == "" {
		return
	}
	if err := s.notifier.SendQuotaExhausted(ctx, email, string(kind), counter.Total, counter.RefreshDate); err != nil {
		logger.WithError(err).Warnw("Failed to queue quota notice", "to", email)
	}
}

func (s *service) MeetsPlan(ctx context.Context, userID int, minPlan PlanType) (bool, error) {
	if !ValidPlanType(minPlan) {
		return false, ErrInvalidPlanType
	}

	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrSubscriptionNotFound) {
			return false, nil
		}
		return false, err
	}

	if !sub.Usable(s.now()) {
		return false, nil
	}
	return MeetsMinimum(sub.PlanType, minPlan), nil
}

func (s *service) RecordPayment(ctx context.Context, userID int, req RecordPaymentRequest) (*Payment, error) {
	if req.Amount.IsNegative() {
		return nil, ErrInvalidPrice
	}

	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = PaymentCompleted
	}

	payment, err := s.repo.AddPayment(ctx, sub.ID, Payment{
		SubscriptionID: sub.ID,
		TransactionID:  req.TransactionID,
		Amount:         req.Amount,
		Date:           s.now(),
		Status:         status,
	})
	if err != nil {
		return nil, err
	}

	s.record(ctx, audit.NewEvent(audit.EventPaymentRecorded, audit.SubjectSubscription, sub.ID, userID, map[string]any{
		"transaction_id": req.TransactionID,
		"amount":         req.Amount.String(),
		"status":         status,
	}))

	return payment, nil
}

func (s *service) PaymentHistory(ctx context.Context, userID int) ([]Payment, error) {
	sub, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListPayments(ctx, sub.ID)
}

// RefreshDue resets every counter whose refresh date has passed and returns
// how many subscriptions were updated. A failing row does not stop the sweep.
func (s *service) RefreshDue(ctx context.Context) (int, error) {
	now := s.now()
	subs, err := s.repo.ListDueForRefresh(ctx, now)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, sub := range subs {
		if !sub.RefreshDue(now) {
			continue
		}
		applied, err := s.repo.ApplyRefresh(ctx, sub, now)
		if err != nil {
			logger.Error("Failed to refresh quota", "subscription_id", sub.ID, "error", err)
			continue
		}
		if !applied {
			continue
		}
		refreshed++
		s.record(ctx, audit.NewEvent(audit.EventQuotaRefreshed, audit.SubjectSubscription, sub.ID, 0, map[string]any{
			"listings_refresh_date": sub.Listings.RefreshDate,
			"contacts_refresh_date": sub.Contacts.RefreshDate,
		}))
	}

	metrics.RecordQuotaRefreshes(refreshed)
	return refreshed, nil
}

func (s *service) record(ctx context.Context, event audit.Event) {
	if err := s.audit.Record(ctx, event); err != nil {
		logger.Error("Failed to record audit event", "type", event.Type, "error", err)
	}
}
