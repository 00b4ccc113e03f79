package subscription

import (
	"errors"
	"time"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionExists   = errors.New("subscription already exists")
	ErrSubscriptionInactive = errors.New("subscription is not active")
	ErrQuotaExceeded        = errors.New("quota exceeded")
	ErrNotBuyer             = errors.New("contacts are only available to buyers")
	ErrInvalidUserType      = errors.New("invalid user type")
	ErrInvalidPlanType      = errors.New("invalid plan type")
	ErrInvalidPrice         = errors.New("price must not be negative")
)

type UsageKind string

const (
	UsageListings UsageKind = "listings"
	UsageContacts UsageKind = "contacts"
)

func (u UsageCounter) Remaining() int {
	if u.Used >= u.Total {
		return 0
	}
	return u.Total - u.Used
}

// Consume takes one unit from the counter.
func (u *UsageCounter) Consume() error {
	if u.Used >= u.Total {
		return ErrQuotaExceeded
	}
	u.Used++
	return nil
}

func (u UsageCounter) DueForRefresh(now time.Time) bool {
	return u.RefreshDate != nil && !now.Before(*u.RefreshDate)
}

// Refresh resets usage and schedules the next refresh months from now.
func (u *UsageCounter) Refresh(now time.Time, months int) {
	next := now.AddDate(0, months, 0)
	u.Used = 0
	u.RefreshDate = &next
}

// RefreshDue resets every counter whose refresh date has passed and reports
// whether anything changed. A refreshed free plan stays valid at least until
// its next listings refresh.
func (s *Subscription) RefreshDue(now time.Time) bool {
	refreshed := false
	if s.Listings.DueForRefresh(now) {
		s.Listings.Refresh(now, ListingsRefreshMonths)
		refreshed = true
	}
	if s.Contacts.DueForRefresh(now) {
		s.Contacts.Refresh(now, ContactsRefreshMonths)
		refreshed = true
	}
	if refreshed && s.PlanType == PlanFree && s.Listings.RefreshDate != nil && s.EndDate.Before(*s.Listings.RefreshDate) {
		s.EndDate = *s.Listings.RefreshDate
	}
	return refreshed
}

func (s *Subscription) Counter(kind UsageKind) *UsageCounter {
	if kind == UsageContacts {
		return &s.Contacts
	}
	return &s.Listings
}
