package subscription

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const uniqueViolation = "23505"

const subscriptionColumns = `id, user_id, user_type, plan_type, price, start_date, end_date, is_active,
		listings_total, listings_used, listings_refresh_date,
		contacts_total, contacts_used, contacts_refresh_date,
		feature_ai, feature_ai_insights, feature_virtual_360, feature_virtual_tour,
		feature_featured, feature_top_featured, feature_home_page_featured, feature_customer_care,
		created_at, updated_at`

type subscriptionRow struct {
	ID                      int             `db:"id"`
	UserID                  int             `db:"user_id"`
	UserType                UserType        `db:"user_type"`
	PlanType                PlanType        `db:"plan_type"`
	Price                   decimal.Decimal `db:"price"`
	StartDate               time.Time       `db:"start_date"`
	EndDate                 time.Time       `db:"end_date"`
	IsActive                bool            `db:"is_active"`
	ListingsTotal           int             `db:"listings_total"`
	ListingsUsed            int             `db:"listings_used"`
	ListingsRefreshDate     *time.Time      `db:"listings_refresh_date"`
	ContactsTotal           int             `db:"contacts_total"`
	ContactsUsed            int             `db:"contacts_used"`
	ContactsRefreshDate     *time.Time      `db:"contacts_refresh_date"`
	FeatureAI               bool            `db:"feature_ai"`
	FeatureAIInsights       bool            `db:"feature_ai_insights"`
	FeatureVirtual360       bool            `db:"feature_virtual_360"`
	FeatureVirtualTour      bool            `db:"feature_virtual_tour"`
	FeatureFeatured         bool            `db:"feature_featured"`
	FeatureTopFeatured      bool            `db:"feature_top_featured"`
	FeatureHomePageFeatured bool            `db:"feature_home_page_featured"`
	FeatureCustomerCare     bool            `db:"feature_customer_care"`
	CreatedAt               time.Time       `db:"created_at"`
	UpdatedAt               time.Time       `db:"updated_at"`
}

func (r subscriptionRow) toModel() *Subscription {
	return &Subscription{
		ID:        r.ID,
		UserID:    r.UserID,
		UserType:  r.UserType,
		PlanType:  r.PlanType,
		Price:     r.Price,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		IsActive:  r.IsActive,
		Listings: UsageCounter{
			Total:       r.ListingsTotal,
			Used:        r.ListingsUsed,
			RefreshDate: r.ListingsRefreshDate,
		},
		Contacts: UsageCounter{
			Total:       r.ContactsTotal,
			Used:        r.ContactsUsed,
			RefreshDate: r.ContactsRefreshDate,
		},
		Features: Features{
			AI:               r.FeatureAI,
			AIInsights:       r.FeatureAIInsights,
			Virtual360:       r.FeatureVirtual360,
			VirtualTour:      r.FeatureVirtualTour,
			Featured:         r.FeatureFeatured,
			TopFeatured:      r.FeatureTopFeatured,
			HomePageFeatured: r.FeatureHomePageFeatured,
			CustomerCare:     r.FeatureCustomerCare,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, sub *Subscription) (*Subscription, error) {
	var row subscriptionRow
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO subscriptions (user_id, user_type, plan_type, price, start_date, end_date, is_active,
			listings_total, listings_used, listings_refresh_date,
			contacts_total, contacts_used, contacts_refresh_date,
			feature_ai, feature_ai_insights, feature_virtual_360, feature_virtual_tour,
			feature_featured, feature_top_featured, feature_home_page_featured, feature_customer_care)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING `+subscriptionColumns,
		sub.UserID, sub.UserType, sub.PlanType, sub.Price, sub.StartDate, sub.EndDate, sub.IsActive,
		sub.Listings.Total, sub.Listings.Used, sub.Listings.RefreshDate,
		sub.Contacts.Total, sub.Contacts.Used, sub.Contacts.RefreshDate,
		sub.Features.AI, sub.Features.AIInsights, sub.Features.Virtual360, sub.Features.VirtualTour,
		sub.Features.Featured, sub.Features.TopFeatured, sub.Features.HomePageFeatured, sub.Features.CustomerCare,
	).StructScan(&row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSubscriptionExists
		}
		return nil, err
	}

	return row.toModel(), nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*Subscription, error) {
	var row subscriptionRow
	err := r.db.GetContext(ctx, &row, `SELECT `+subscriptionColumns+` FROM subscriptions WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

// Update persists plan, validity window and derived entitlements. Used
// counters are owned by IncrementUsage and ApplyRefresh and are never
// written here.
func (r *Repository) Update(ctx context.Context, sub *Subscription) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET plan_type = $2, price = $3, start_date = $4, end_date = $5, is_active = $6,
		    listings_total = $7, listings_refresh_date = $8,
		    contacts_total = $9, contacts_refresh_date = $10,
		    feature_ai = $11, feature_ai_insights = $12, feature_virtual_360 = $13, feature_virtual_tour = $14,
		    feature_featured = $15, feature_top_featured = $16, feature_home_page_featured = $17, feature_customer_care = $18,
		    updated_at = NOW()
		WHERE id = $1
	`,
		sub.ID, sub.PlanType, sub.Price, sub.StartDate, sub.EndDate, sub.IsActive,
		sub.Listings.Total, sub.Listings.RefreshDate,
		sub.Contacts.Total, sub.Contacts.RefreshDate,
		sub.Features.AI, sub.Features.AIInsights, sub.Features.Virtual360, sub.Features.VirtualTour,
		sub.Features.Featured, sub.Features.TopFeatured, sub.Features.HomePageFeatured, sub.Features.CustomerCare,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSubscriptionNotFound
	}
	return nil
}

// ApplyRefresh resets only the counters whose stored refresh date is at or
// before now, moving them to the refresh dates already computed on sub.
// It reports false when nothing was due any more, e.g. another process
// refreshed the row first.
func (r *Repository) ApplyRefresh(ctx context.Context, sub *Subscription, now time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE subscriptions
		SET listings_used = CASE WHEN listings_refresh_date <= $2 THEN 0 ELSE listings_used END,
		    listings_refresh_date = CASE WHEN listings_refresh_date <= $2 THEN $3 ELSE listings_refresh_date END,
		    contacts_used = CASE WHEN contacts_refresh_date <= $2 THEN 0 ELSE contacts_used END,
		    contacts_refresh_date = CASE WHEN contacts_refresh_date <= $2 THEN $4 ELSE contacts_refresh_date END,
		    end_date = GREATEST(end_date, $5),
		    updated_at = NOW()
		WHERE id = $1
		  AND (listings_refresh_date <= $2 OR contacts_refresh_date <= $2)
	`, sub.ID, now, sub.Listings.RefreshDate, sub.Contacts.RefreshDate, sub.EndDate)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// IncrementUsage takes one unit of the given quota. It reports false when
// the quota is already used up, so concurrent consumers never overshoot.
func (r *Repository) IncrementUsage(ctx context.Context, subID int, kind UsageKind) (bool, error) {
	query := `
		UPDATE subscriptions
		SET listings_used = listings_used + 1,
		    updated_at = NOW()
		WHERE id = $1 AND listings_used < listings_total
	`
	if kind == UsageContacts {
		query = `
		UPDATE subscriptions
		SET contacts_used = contacts_used + 1,
		    updated_at = NOW()
		WHERE id = $1 AND contacts_used < contacts_total
	`
	}

	res, err := r.db.ExecContext(ctx, query, subID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repository) ListDueForRefresh(ctx context.Context, now time.Time) ([]*Subscription, error) {
	rows := []subscriptionRow{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT `+subscriptionColumns+`
		FROM subscriptions
		WHERE is_active
		  AND (listings_refresh_date <= $1 OR contacts_refresh_date <= $1)
		ORDER BY id
	`, now)
	if err != nil {
		return nil, err
	}

	subs := make([]*Subscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.toModel())
	}
	return subs, nil
}

func (r *Repository) AddPayment(ctx context.Context, subID int, p Payment) (*Payment, error) {
	payment := &Payment{}
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO subscription_payments (subscription_id, transaction_id, amount, paid_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, subscription_id, transaction_id, amount, paid_at, status
	`, subID, p.TransactionID, p.Amount, p.Date, p.Status).StructScan(payment)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

func (r *Repository) ListPayments(ctx context.Context, subID int) ([]Payment, error) {
	payments := []Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT id, subscription_id, transaction_id, amount, paid_at, status
		FROM subscription_payments
		WHERE subscription_id = $1
		ORDER BY paid_at DESC, id DESC
	`, subID)
	return payments, err
}
