package rent

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
	StatusPartial Status = "partial"
)

var Statuses = []Status{StatusPending, StatusPaid, StatusOverdue, StatusPartial}

var PaymentMethods = []string{"cash", "bank_transfer", "cheque", "upi", "card", "online"}

var (
	ErrPaymentNotFound = errors.New("rent payment not found")
	ErrNegativeLateFee = errors.New("late fee cannot be negative")
	ErrAlreadyPaid     = errors.New("rent payment is already paid")
	ErrForbidden       = errors.New("rent payment belongs to another user")
)

// ValidationError lists every field that failed a write-time rule.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type RentPayment struct {
	ID            int             `db:"id" json:"id"`
	LeaseID       int             `db:"lease_id" json:"lease_id"`
	TenantID      int             `db:"tenant_id" json:"tenant_id"`
	LandlordID    int             `db:"landlord_id" json:"landlord_id"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	DueDate       time.Time       `db:"due_date" json:"due_date"`
	PaidDate      *time.Time      `db:"paid_date" json:"paid_date,omitempty"`
	Status        Status          `db:"status" json:"status"`
	PaymentMethod *string         `db:"payment_method" json:"payment_method,omitempty"`
	TransactionID *string         `db:"transaction_id" json:"transaction_id,omitempty"`
	LateFee       decimal.Decimal `db:"late_fee" json:"late_fee"`
	Notes         string          `db:"notes" json:"notes,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// IsOverdue reports whether an unpaid installment is past its due date.
func (p *RentPayment) IsOverdue(now time.Time) bool {
	return p.Status != StatusPaid && p.DueDate.Before(now)
}

// DaysOverdue counts started days past the due date, rounding up.
func (p *RentPayment) DaysOverdue(now time.Time) int {
	if p.Status == StatusPaid {
		return 0
	}
	late := now.Sub(p.DueDate)
	if late <= 0 {
		return 0
	}
	return int(math.Ceil(late.Hours() / 24))
}

func (p *RentPayment) TotalAmount() decimal.Decimal {
	return p.Amount.Add(p.LateFee)
}

// EffectiveStatus is the status the record should carry at now: pending
// installments past their due date are overdue.
func (p *RentPayment) EffectiveStatus(now time.Time) Status {
	if p.Status == StatusPending && p.DueDate.Before(now) {
		return StatusOverdue
	}
	return p.Status
}

// MarkAsPaid records payment. An existing paid date is kept.
func (p *RentPayment) MarkAsPaid(method, transactionID string, now time.Time) error {
	if p.Status == StatusPaid {
		return ErrAlreadyPaid
	}

	p.Status = StatusPaid
	if p.PaidDate == nil {
		paid := now
		p.PaidDate = &paid
	}
	p.PaymentMethod = &method
	if transactionID != "" {
		p.TransactionID = &transactionID
	}
	return nil
}

func (p *RentPayment) AddLateFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return ErrNegativeLateFee
	}
	if p.Status == StatusPaid {
		return ErrAlreadyPaid
	}
	p.LateFee = p.LateFee.Add(fee)
	return nil
}

// Validate applies write-time rules. Paid-only fields must be absent
// unless the status is paid.
func (p *RentPayment) Validate() error {
	fields := map[string]string{}

	if p.LeaseID <= 0 {
		fields["lease_id"] = "is required"
	}
	if p.TenantID <= 0 {
		fields["tenant_id"] = "is required"
	}
	if p.LandlordID <= 0 {
		fields["landlord_id"] = "is required"
	}
	if p.Amount.IsNegative() {
		fields["amount"] = "must be at least 0"
	}
	if p.DueDate.IsZero() {
		fields["due_date"] = "is required"
	}
	if p.LateFee.IsNegative() {
		fields["late_fee"] = "must be at least 0"
	}
	if !slices.Contains(Statuses, p.Status) {
		fields["status"] = "must be one of pending, paid, overdue, partial"
	}

	if p.Status == StatusPaid {
		if p.PaidDate == nil {
			fields["paid_date"] = "is required when paid"
		}
		if p.PaymentMethod == nil || !slices.Contains(PaymentMethods, *p.PaymentMethod) {
			fields["payment_method"] = "must be one of " + strings.Join(PaymentMethods, ", ")
		}
	} else {
		if p.PaidDate != nil {
			fields["paid_date"] = "only allowed when paid"
		}
		if p.PaymentMethod != nil {
			fields["payment_method"] = "only allowed when paid"
		}
		if p.TransactionID != nil {
			fields["transaction_id"] = "only allowed when paid"
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// LeaseTerms is the part of a lease needed to build a payment schedule.
type LeaseTerms struct {
	StartDate   time.Time       `json:"start_date" binding:"required"`
	EndDate     time.Time       `json:"end_date" binding:"required"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
	RentDueDay  int             `json:"rent_due_date" binding:"required,min=1,max=31"`
}

type ScheduleRequest struct {
	TenantID   int `json:"tenant_id" binding:"required,gt=0"`
	LandlordID int `json:"landlord_id" binding:"required,gt=0"`
	LeaseTerms
	TenantEmail string `json:"tenant_email" binding:"omitempty,email"`
}

type MarkPaidRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

type LateFeeRequest struct {
	Fee decimal.Decimal `json:"fee"`
}

type ApplyLateFeeRequest struct {
	FeePercentage *float64 `json:"fee_percentage" binding:"omitempty,gt=0,lte=1"`
}

type RevenueResponse struct {
	LandlordID int             `json:"landlord_id"`
	Year       int             `json:"year"`
	Month      int             `json:"month"`
	Total      decimal.Decimal `json:"total"`
}
