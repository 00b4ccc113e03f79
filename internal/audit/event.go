package audit

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	SubjectSubscription = "subscription"
	SubjectRentPayment  = "rent_payment"

	EventSubscriptionCreated = "subscription.created"
	EventPlanChanged         = "subscription.plan_changed"
	EventQuotaRefreshed      = "subscription.quota_refreshed"
	EventPaymentRecorded     = "subscription.payment_recorded"
	EventRentScheduled       = "rent.scheduled"
	EventRentPaid            = "rent.paid"
	EventLateFeeAdded        = "rent.late_fee_added"
)

// Event is an append-only audit record. Events are never updated or deleted.
type Event struct {
	ID         bson.ObjectID          `bson:"_id,omitempty" json:"id"`
	Type       string                 `bson:"type" json:"type"`
	Subject    string                 `bson:"subject" json:"subject"`
	SubjectID  int                    `bson:"subject_id" json:"subject_id"`
	ActorID    int                    `bson:"actor_id,omitempty" json:"actor_id,omitempty"`
	Data       map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	OccurredAt time.Time              `bson:"occurred_at" json:"occurred_at"`
}

type Recorder interface {
	Record(ctx context.Context, event Event) error
	List(ctx context.Context, subject string, subjectID int, limit int64) ([]Event, error)
}

// NopRecorder drops every event. Used when no audit store is configured.
type NopRecorder struct{}

func (NopRecorder) Record(ctx context.Context, event Event) error {
	return nil
}

func (NopRecorder) List(ctx context.Context, subject string, subjectID int, limit int64) ([]Event, error) {
	return []Event{}, nil
}

func NewEvent(eventType, subject string, subjectID, actorID int, data map[string]interface{}) Event {
	return Event{
		Type:       eventType,
		Subject:    subject,
		SubjectID:  subjectID,
		ActorID:    actorID,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
}
