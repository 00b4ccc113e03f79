package rent

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"hundredgaj/internal/audit"
	"hundredgaj/internal/logger"
	"hundredgaj/internal/metrics"
)

type Notifier interface {
	SendRentReceipt(ctx context.Context, to string, paymentID int, amount string, paymentMethod string, paidAt time.Time) error
	SendRentSchedule(ctx context.Context, to string, leaseID, installments int, firstDue time.Time) error
}

type Service interface {
	CreateSchedule(ctx context.Context, leaseID int, req ScheduleRequest) ([]RentPayment, error)
	Get(ctx context.Context, id int) (*RentPayment, error)
	MarkAsPaid(ctx context.Context, id int, req MarkPaidRequest, actorID int, receiptTo string) (*RentPayment, error)
	AddLateFee(ctx context.Context, id int, fee decimal.Decimal, actorID int) (*RentPayment, error)
	ApplyLateFee(ctx context.Context, id int, feePercentage *float64, actorID int) (*RentPayment, error)
	ListByTenant(ctx context.Context, tenantID int) ([]RentPayment, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]RentPayment, error)
	ListByLease(ctx context.Context, leaseID int) ([]RentPayment, error)
	FindOverdue(ctx context.Context) ([]RentPayment, error)
	SyncOverdue(ctx context.Context) (int64, error)
	MonthlyRevenue(ctx context.Context, landlordID, year int, month time.Month) (decimal.Decimal, error)
}

type service struct {
	repo              Store
	audit             audit.Recorder
	notifier          Notifier
	lateFeePercentage float64
	now               func() time.Time
}

func NewService(repo Store, recorder audit.Recorder, notifier Notifier, lateFeePercentage float64) Service {
	if recorder == nil {
		recorder = audit.NopRecorder{}
	}
	if lateFeePercentage <= 0 {
		lateFeePercentage = DefaultLateFeePercentage
	}
	return &service{
		repo:              repo,
		audit:             recorder,
		notifier:          notifier,
		lateFeePercentage: lateFeePercentage,
		now:               time.Now,
	}
}

// prepare brings the derived status up to date and validates the record
// before it is written.
func (s *service) prepare(p *RentPayment) error {
	p.Status = p.EffectiveStatus(s.now())
	return p.Validate()
}

func (s *service) CreateSchedule(ctx context.Context, leaseID int, req ScheduleRequest) ([]RentPayment, error) {
	if req.MonthlyRent.IsNegative() {
		return nil, &ValidationError{Fields: map[string]string{"monthly_rent": "must be at least 0"}}
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, &ValidationError{Fields: map[string]string{"end_date": "must not be before start_date"}}
	}

	payments := GeneratePaymentSchedule(req.LeaseTerms, leaseID, req.TenantID, req.LandlordID)
	if len(payments) == 0 {
		return []RentPayment{}, nil
	}
	for i := range payments {
		if err := s.prepare(&payments[i]); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.CreateBatch(ctx, payments)
	if err != nil {
		return nil, err
	}

	metrics.RecordRentSchedule()
	s.record(ctx, audit.NewEvent(audit.EventRentScheduled, audit.SubjectRentPayment, leaseID, req.LandlordID, map[string]any{
		"lease_id":     leaseID,
		"installments": len(created),
		"monthly_rent": req.MonthlyRent.String(),
	}))
	logger.Info("Rent schedule created", "lease_id", leaseID, "installments", len(created))

	if s.notifier != nil && req.TenantEmail != "" {
		if err := s.notifier.SendRentSchedule(ctx, req.TenantEmail, leaseID, len(created), created[0].DueDate); err != nil {
			logger.WithError(err).Warnw("Failed to queue schedule email", "lease_id", leaseID)
		}
	}

	return created, nil
}

// Get returns the payment with its status evaluated at the current time.
func (s *service) Get(ctx context.Context, id int) (*RentPayment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Status = p.EffectiveStatus(s.now())
	return p, nil
}

func (s *service) MarkAsPaid(ctx context.Context, id int, req MarkPaidRequest, actorID int, receiptTo string) (*RentPayment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != p.TenantID && actorID != p.LandlordID {
		return nil, ErrForbidden
	}

	if err := p.MarkAsPaid(req.PaymentMethod, req.TransactionID, s.now()); err != nil {
		return nil, err
	}
	if err := s.prepare(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	metrics.RecordRentPayment(req.PaymentMethod)
	s.record(ctx, audit.NewEvent(audit.EventRentPaid, audit.SubjectRentPayment, p.ID, actorID, map[string]any{
		"payment_method": req.PaymentMethod,
		"transaction_id": req.TransactionID,
		"total":          p.TotalAmount().String(),
	}))
	logger.Info("Rent paid", "payment_id", p.ID, "lease_id", p.LeaseID, "method", req.PaymentMethod)

	if s.notifier != nil && receiptTo != "" {
		if err := s.notifier.SendRentReceipt(ctx, receiptTo, p.ID, p.TotalAmount().StringFixed(2), req.PaymentMethod, *p.PaidDate); err != nil {
			logger.WithError(err).Warnw("Failed to queue rent receipt", "payment_id", p.ID)
		}
	}

	return p, nil
}

func (s *service) AddLateFee(ctx context.Context, id int, fee decimal.Decimal, actorID int) (*RentPayment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != p.LandlordID {
		return nil, ErrForbidden
	}
	if err := p.AddLateFee(fee); err != nil {
		return nil, err
	}
	return s.saveLateFee(ctx, p, fee, actorID)
}

// ApplyLateFee charges the fee due for the days overdue so far. Only the
// part above the fee already charged is added.
func (s *service) ApplyLateFee(ctx context.Context, id int, feePercentage *float64, actorID int) (*RentPayment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorID != p.LandlordID {
		return nil, ErrForbidden
	}

	pct := s.lateFeePercentage
	if feePercentage != nil {
		pct = *feePercentage
	}

	due := CalculateLateFee(p.Amount, p.DaysOverdue(s.now()), pct)
	delta := due.Sub(p.LateFee)
	if !delta.IsPositive() {
		p.Status = p.EffectiveStatus(s.now())
		return p, nil
	}

	if err := p.AddLateFee(delta); err != nil {
		return nil, err
	}
	return s.saveLateFee(ctx, p, delta, actorID)
}

func (s *service) saveLateFee(ctx context.Context, p *RentPayment, fee decimal.Decimal, actorID int) (*RentPayment, error) {
	if err := s.prepare(p); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	metrics.RecordLateFee()
	s.record(ctx, audit.NewEvent(audit.EventLateFeeAdded, audit.SubjectRentPayment, p.ID, actorID, map[string]any{
		"fee":      fee.String(),
		"late_fee": p.LateFee.String(),
	}))

	return p, nil
}

func (s *service) ListByTenant(ctx context.Context, tenantID int) ([]RentPayment, error) {
	return s.withEffectiveStatus(s.repo.ListByTenant(ctx, tenantID))
}

func (s *service) ListByLandlord(ctx context.Context, landlordID int) ([]RentPayment, error) {
	return s.withEffectiveStatus(s.repo.ListByLandlord(ctx, landlordID))
}

func (s *service) ListByLease(ctx context.Context, leaseID int) ([]RentPayment, error) {
	return s.withEffectiveStatus(s.repo.ListByLease(ctx, leaseID))
}

func (s *service) FindOverdue(ctx context.Context) ([]RentPayment, error) {
	return s.withEffectiveStatus(s.repo.FindOverdue(ctx, s.now()))
}

func (s *service) withEffectiveStatus(payments []RentPayment, err error) ([]RentPayment, error) {
	if err != nil {
		return nil, err
	}
	now := s.now()
	for i := range payments {
		payments[i].Status = payments[i].EffectiveStatus(now)
	}
	return payments, nil
}

// SyncOverdue persists the overdue status of every pending installment past due.
func (s *service) SyncOverdue(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("Rent payments marked overdue", "count", n)
	}
	return n, nil
}

func (s *service) MonthlyRevenue(ctx context.Context, landlordID, year int, month time.Month) (decimal.Decimal, error) {
	if month < time.January || month > time.December {
		return decimal.Zero, &ValidationError{Fields: map[string]string{"month": "must be between 1 and 12"}}
	}
	return s.repo.MonthlyRevenue(ctx, landlordID, year, month)
}

func (s *service) record(ctx context.Context, event audit.Event) {
	if err := s.audit.Record(ctx, event); err != nil {
		logger.Error("Failed to record audit event", "type", event.Type, "error", err)
	}
}
