package audit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	before := time.Now().UTC()

	ev := NewEvent(EventRentPaid, SubjectRentPayment, 12, 3, map[string]interface{}{"payment_method": "upi"})

	assert.Equal(t, EventRentPaid, ev.Type)
	assert.Equal(t, SubjectRentPayment, ev.Subject)
	assert.Equal(t, 12, ev.SubjectID)
	assert.Equal(t, 3, ev.ActorID)
	assert.Equal(t, "upi", ev.Data["payment_method"])
	assert.False(t, ev.OccurredAt.Before(before))
	assert.True(t, ev.ID.IsZero())
}

func TestNopRecorder(t *testing.T) {
	var r Recorder = NopRecorder{}
	ctx := context.Background()

	require.NoError(t, r.Record(ctx, NewEvent(EventPlanChanged, SubjectSubscription, 1, 1, nil)))

	events, err := r.List(ctx, SubjectSubscription, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestMongoRecorder_Integration(t *testing.T) {
	uri := os.Getenv("TEST_MONGO_URI")
	if testing.Short() || uri == "" {
		t.Skip("Skipping MongoDB integration test")
	}

	ctx := context.Background()
	client, err := Connect(ctx, uri)
	require.NoError(t, err)
	defer client.Disconnect(ctx)

	db := "hundredgaj_test"
	require.NoError(t, client.Database(db).Collection(EventsCollection).Drop(ctx))

	r := NewMongoRecorder(client, db)
	require.NoError(t, r.Record(ctx, NewEvent(EventSubscriptionCreated, SubjectSubscription, 7, 7, nil)))
	require.NoError(t, r.Record(ctx, NewEvent(EventPlanChanged, SubjectSubscription, 7, 7, map[string]interface{}{"plan_type": "premium"})))
	require.NoError(t, r.Record(ctx, NewEvent(EventPlanChanged, SubjectSubscription, 8, 8, nil)))

	events, err := r.List(ctx, SubjectSubscription, 7, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, EventPlanChanged, events[0].Type)
	assert.False(t, events[0].ID.IsZero())
}
