package rent

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const rentColumns = `id, lease_id, tenant_id, landlord_id, amount, due_date, paid_date, status,
		payment_method, transaction_id, late_fee, notes, created_at, updated_at`

const insertRentPayment = `
		INSERT INTO rent_payments (lease_id, tenant_id, landlord_id, amount, due_date, paid_date, status,
			payment_method, transaction_id, late_fee, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + rentColumns

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

type queryer interface {
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

func insert(ctx context.Context, q queryer, p *RentPayment) (*RentPayment, error) {
	created := &RentPayment{}
	err := q.QueryRowxContext(ctx, insertRentPayment,
		p.LeaseID, p.TenantID, p.LandlordID, p.Amount, p.DueDate, p.PaidDate, p.Status,
		p.PaymentMethod, p.TransactionID, p.LateFee, p.Notes,
	).StructScan(created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) Create(ctx context.Context, p *RentPayment) (*RentPayment, error) {
	return insert(ctx, r.db, p)
}

// CreateBatch inserts all payments in one transaction.
func (r *Repository) CreateBatch(ctx context.Context, payments []RentPayment) ([]RentPayment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	created := make([]RentPayment, 0, len(payments))
	for i := range payments {
		p, err := insert(ctx, tx, &payments[i])
		if err != nil {
			return nil, fmt.Errorf("insert installment %d: %w", i+1, err)
		}
		created = append(created, *p)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*RentPayment, error) {
	p := &RentPayment{}
	err := r.db.GetContext(ctx, p, `SELECT `+rentColumns+` FROM rent_payments WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *Repository) Update(ctx context.Context, p *RentPayment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rent_payments
		SET amount = $2, due_date = $3, paid_date = $4, status = $5,
		    payment_method = $6, transaction_id = $7, late_fee = $8, notes = $9,
		    updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.Amount, p.DueDate, p.PaidDate, p.Status, p.PaymentMethod, p.TransactionID, p.LateFee, p.Notes)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPaymentNotFound
	}
	return nil
}

// FindOverdue returns every unpaid installment past its due date, including
// rows already flipped to overdue by MarkOverdue.
func (r *Repository) FindOverdue(ctx context.Context, now time.Time) ([]RentPayment, error) {
	payments := []RentPayment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+rentColumns+`
		FROM rent_payments
		WHERE status IN ('pending', 'overdue', 'partial') AND due_date < $1
		ORDER BY due_date ASC
	`, now)
	return payments, err
}

// MarkOverdue persists the overdue status for pending installments past due.
func (r *Repository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE rent_payments
		SET status = 'overdue', updated_at = NOW()
		WHERE status = 'pending' AND due_date < $1
	`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *Repository) ListByTenant(ctx context.Context, tenantID int) ([]RentPayment, error) {
	return r.listBy(ctx, "tenant_id", tenantID)
}

func (r *Repository) ListByLandlord(ctx context.Context, landlordID int) ([]RentPayment, error) {
	return r.listBy(ctx, "landlord_id", landlordID)
}

func (r *Repository) ListByLease(ctx context.Context, leaseID int) ([]RentPayment, error) {
	return r.listBy(ctx, "lease_id", leaseID)
}

// column is always one of the fixed names above.
func (r *Repository) listBy(ctx context.Context, column string, id int) ([]RentPayment, error) {
	payments := []RentPayment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT `+rentColumns+`
		FROM rent_payments
		WHERE `+column+` = $1
		ORDER BY due_date DESC
	`, id)
	return payments, err
}

// MonthlyRevenue sums amount plus late fee of installments paid within the
// calendar month.
func (r *Repository) MonthlyRevenue(ctx context.Context, landlordID, year int, month time.Month) (decimal.Decimal, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	var total decimal.NullDecimal
	err := r.db.GetContext(ctx, &total, `
		SELECT SUM(amount + late_fee)
		FROM rent_payments
		WHERE landlord_id = $1
		  AND status = 'paid'
		  AND paid_date >= $2 AND paid_date < $3
	`, landlordID, from, to)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
