package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/PrandiF/gevp-back/internal/core/domain"
)

const collectionActivity = "activity_log"

// ActivityRepository persists audit-trail entries. Records are write-only
// from the application's point of view; they are read through Mongo tooling.
type ActivityRepository struct {
	col *mongo.Collection
}

func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{col: db.Collection(collectionActivity)}
}

func (r *ActivityRepository) Insert(ctx context.Context, rec *domain.ActivityRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := struct {
		Actor      string `bson:"actor"`
		Action     string `bson:"action"`
		Resource   string `bson:"resource"`
		ResourceID string `bson:"resource_id"`
		Detail     string `bson:"detail,omitempty"`
		Timestamp  int64  `bson:"timestamp"`
	}{
		Actor:      rec.Actor,
		Action:     rec.Action,
		Resource:   rec.Resource,
		ResourceID: rec.ResourceID,
		Detail:     rec.Detail,
		Timestamp:  rec.Timestamp.UnixMilli(),
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}
