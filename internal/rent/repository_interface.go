package rent

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Store interface {
	Create(ctx context.Context, p *RentPayment) (*RentPayment, error)
	CreateBatch(ctx context.Context, payments []RentPayment) ([]RentPayment, error)
	GetByID(ctx context.Context, id int) (*RentPayment, error)
	Update(ctx context.Context, p *RentPayment) error
	FindOverdue(ctx context.Context, now time.Time) ([]RentPayment, error)
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
	ListByTenant(ctx context.Context, tenantID int) ([]RentPayment, error)
	ListByLandlord(ctx context.Context, landlordID int) ([]RentPayment, error)
	ListByLease(ctx context.Context, leaseID int) ([]RentPayment, error)
	MonthlyRevenue(ctx context.Context, landlordID, year int, month time.Month) (decimal.Decimal, error)
}

var _ Store = (*Repository)(nil)
