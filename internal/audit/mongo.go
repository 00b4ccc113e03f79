package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"hundredgaj/internal/logger"
)

const (
	EventsCollection = "audit_events"
	defaultListLimit = 100
)

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("Connected to MongoDB audit store")
	return client, nil
}

type MongoRecorder struct {
	collection *mongo.Collection
}

func NewMongoRecorder(client *mongo.Client, database string) *MongoRecorder {
	return &MongoRecorder{
		collection: client.Database(database).Collection(EventsCollection),
	}
}

func (r *MongoRecorder) Record(ctx context.Context, event Event) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	if _, err := r.collection.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("error inserting audit event: %w", err)
	}
	return nil
}

// List returns the newest events for one subject first.
func (r *MongoRecorder) List(ctx context.Context, subject string, subjectID int, limit int64) ([]Event, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	filter := bson.M{"subject": subject, "subject_id": subjectID}
	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error querying audit events: %w", err)
	}
	defer cursor.Close(ctx)

	events := []Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("error decoding audit events: %w", err)
	}
	return events, nil
}
