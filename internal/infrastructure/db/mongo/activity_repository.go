package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rbacdash/rbac-api/internal/core/domain"
)

const activityCollection = "activity_logs"

type mongoActivity struct {
	ID        string         `bson:"_id"`
	UserID    string         `bson:"user_id"`
	UserName  string         `bson:"user_name"`
	Action    string         `bson:"action"`
	Details   map[string]any `bson:"details,omitempty"`
	Timestamp int64          `bson:"timestamp"`
}

// ActivityRepository is the Mongo-backed activity trail. The 100-entry cap
// is enforced after each insert by deleting everything older than the
// newest domain.MaxActivityEntries entries.
type ActivityRepository struct {
	coll *mongo.Collection
}

func NewActivityRepository(store *Store) *ActivityRepository {
	return &ActivityRepository{coll: store.db.Collection(activityCollection)}
}

func (r *ActivityRepository) Insert(ctx context.Context, entry *domain.ActivityEntry) error {
	doc := mongoActivity{
		ID:        entry.ID,
		UserID:    entry.UserID,
		UserName:  entry.UserName,
		Action:    entry.Action,
		Details:   entry.Details,
		Timestamp: entry.Timestamp.UnixNano(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	return r.trim(ctx)
}

func (r *ActivityRepository) trim(ctx context.Context) error {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(int64(domain.MaxActivityEntries)).
		SetProjection(bson.M{"_id": 1})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("trim activity: %w", err)
	}
	defer cur.Close(ctx)

	var stale []string
	for cur.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return fmt.Errorf("trim activity: decode: %w", err)
		}
		stale = append(stale, doc.ID)
	}
	if len(stale) == 0 {
		return nil
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": stale}}); err != nil {
		return fmt.Errorf("trim activity: delete: %w", err)
	}
	return nil
}

func (r *ActivityRepository) ListAll(ctx context.Context) ([]domain.ActivityEntry, error) {
	return r.list(ctx, bson.M{})
}

func (r *ActivityRepository) ListByUser(ctx context.Context, userID string) ([]domain.ActivityEntry, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *ActivityRepository) list(ctx context.Context, filter bson.M) ([]domain.ActivityEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer cur.Close(ctx)

	entries := make([]domain.ActivityEntry, 0)
	for cur.Next(ctx) {
		var doc mongoActivity
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode activity: %w", err)
		}
		entries = append(entries, domain.ActivityEntry{
			ID:        doc.ID,
			UserID:    doc.UserID,
			UserName:  doc.UserName,
			Action:    doc.Action,
			Details:   doc.Details,
			Timestamp: time.Unix(0, doc.Timestamp).UTC(),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	return entries, nil
}
