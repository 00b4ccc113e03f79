package subscription

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserType string
type PlanType string
type PaymentStatus string

const (
	UserTypeOwner  UserType = "owner"
	UserTypeDealer UserType = "dealer"
	UserTypeBuyer  UserType = "buyer"

	PlanFree     PlanType = "free"
	PlanBasic    PlanType = "basic"
	PlanStandard PlanType = "standard"
	PlanPremium  PlanType = "premium"
	PlanBoss     PlanType = "boss"

	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// UsageCounter is a periodic quota: Used grows through consumption and
// is reset to zero when RefreshDate passes.
type UsageCounter struct {
	Total       int        `json:"total"`
	Used        int        `json:"used"`
	RefreshDate *time.Time `json:"refresh_date,omitempty"`
}

type Features struct {
	AI               bool `json:"ai"`
	AIInsights       bool `json:"ai_insights"`
	Virtual360       bool `json:"virtual_360"`
	VirtualTour      bool `json:"virtual_tour"`
	Featured         bool `json:"featured"`
	TopFeatured      bool `json:"top_featured"`
	HomePageFeatured bool `json:"home_page_featured"`
	CustomerCare     bool `json:"customer_care"`
}

type Subscription struct {
	ID        int             `json:"id"`
	UserID    int             `json:"user_id"`
	UserType  UserType        `json:"user_type"`
	PlanType  PlanType        `json:"plan_type"`
	Price     decimal.Decimal `json:"price"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	IsActive  bool            `json:"is_active"`
	Listings  UsageCounter    `json:"listings"`
	Contacts  UsageCounter    `json:"contacts"`
	Features  Features        `json:"features"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Usable reports whether quotas and features may be used at the given instant.
func (s *Subscription) Usable(now time.Time) bool {
	return s.IsActive && s.EndDate.After(now)
}

// ApplyEntitlements overwrites every derived field. Used counters are kept.
func (s *Subscription) ApplyEntitlements(e Entitlements) {
	s.Listings.Total = e.ListingsTotal
	s.Listings.RefreshDate = e.ListingsRefreshDate
	s.Contacts.Total = e.ContactsTotal
	s.Contacts.RefreshDate = e.ContactsRefreshDate
	s.Features = e.Features
}

type Payment struct {
	ID             int             `db:"id" json:"id"`
	SubscriptionID int             `db:"subscription_id" json:"subscription_id"`
	TransactionID  string          `db:"transaction_id" json:"transaction_id"`
	Amount         decimal.Decimal `db:"amount" json:"amount"`
	Date           time.Time       `db:"paid_at" json:"date"`
	Status         PaymentStatus   `db:"status" json:"status"`
}

type CreateSubscriptionRequest struct {
	UserType UserType `json:"user_type" binding:"required,oneof=owner dealer buyer"`
}

type ChangePlanRequest struct {
	PlanType PlanType        `json:"plan_type" binding:"required,oneof=free basic standard premium boss"`
	Price    decimal.Decimal `json:"price"`
}

type RecordPaymentRequest struct {
	TransactionID string          `json:"transaction_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	Status        PaymentStatus   `json:"status" binding:"omitempty,oneof=pending completed failed"`
}

type AccessResponse struct {
	PlanType PlanType `json:"plan_type"`
	MinPlan  PlanType `json:"min_plan"`
	Allowed  bool     `json:"allowed"`
}
