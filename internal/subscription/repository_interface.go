package subscription

import (
	"context"
	"time"
)

type Store interface {
	Create(ctx context.Context, sub *Subscription) (*Subscription, error)
	GetByUserID(ctx context.Context, userID int) (*Subscription, error)
	Update(ctx context.Context, sub *Subscription) error
	ApplyRefresh(ctx context.Context, sub *Subscription, now time.Time) (bool, error)
	IncrementUsage(ctx context.Context, subID int, kind UsageKind) (bool, error)
	ListDueForRefresh(ctx context.Context, now time.Time) ([]*Subscription, error)
	AddPayment(ctx context.Context, subID int, p Payment) (*Payment, error)
	ListPayments(ctx context.Context, subID int) ([]Payment, error)
}

var _ Store = (*Repository)(nil)
