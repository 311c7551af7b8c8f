package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/PrandiF/gevp-back/internal/core/domain"
	"github.com/PrandiF/gevp-back/internal/core/ports"
)

const collectionSchedules = "schedules"

type scheduleDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Weekday   string             `bson:"weekday"`
	Facility  string             `bson:"facility"`
	Sport     string             `bson:"sport"`
	Category  string             `bson:"category"`
	LoadedBy  string             `bson:"loaded_by"`
	StartTime string             `bson:"start_time"`
	EndTime   string             `bson:"end_time"`
}

func (d *scheduleDocument) toDomain() *domain.Schedule {
	return &domain.Schedule{
		ID:        d.ID.Hex(),
		Weekday:   d.Weekday,
		Facility:  d.Facility,
		Sport:     d.Sport,
		Category:  d.Category,
		LoadedBy:  d.LoadedBy,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
	}
}

func scheduleToDocument(s *domain.Schedule) *scheduleDocument {
	return &scheduleDocument{
		Weekday:   s.Weekday,
		Facility:  s.Facility,
		Sport:     s.Sport,
		Category:  s.Category,
		LoadedBy:  s.LoadedBy,
		StartTime: s.StartTime,
		EndTime:   s.EndTime,
	}
}

type ScheduleRepository struct {
	col *mongo.Collection
}

func NewScheduleRepository(db *mongo.Database) *ScheduleRepository {
	return &ScheduleRepository{col: db.Collection(collectionSchedules)}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := scheduleToDocument(s)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *ScheduleRepository) FindByID(ctx context.Context, id string) (*domain.Schedule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc scheduleDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ScheduleRepository) Update(ctx context.Context, s *domain.Schedule) error {
	oid, err := primitive.ObjectIDFromHex(s.ID)
	if err != nil {
		return domain.ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, scheduleToDocument(s))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func (r *ScheduleRepository) List(ctx context.Context, page, pageSize int) ([]*domain.Schedule, int64, error) {
	return r.find(ctx, bson.M{}, page, pageSize)
}

func (r *ScheduleRepository) Filter(ctx context.Context, criteria ports.ScheduleCriteria, page, pageSize int) ([]*domain.Schedule, int64, error) {
	filter := bson.M{}
	if criteria.Weekday != "" {
		filter["weekday"] = criteria.Weekday
	}
	if criteria.Facility != "" {
		filter["facility"] = containsIgnoreCase(criteria.Facility)
	}
	if criteria.Sport != "" {
		filter["sport"] = containsIgnoreCase(criteria.Sport)
	}
	if criteria.Category != "" {
		filter["category"] = containsIgnoreCase(criteria.Category)
	}
	applyTimeBounds(filter, criteria.StartTime, criteria.EndTime)

	return r.find(ctx, filter, page, pageSize)
}

func (r *ScheduleRepository) FindOverlapping(ctx context.Context, facility, weekday, start, end, excludeID string) ([]*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"facility":   facility,
		"weekday":    weekday,
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
	if excludeID != "" {
		oid, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return nil, domain.ErrValidation
		}
		filter["_id"] = bson.M{"$ne": oid}
	}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var schedules []*domain.Schedule
	for cursor.Next(ctx) {
		var doc scheduleDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		schedules = append(schedules, doc.toDomain())
	}
	return schedules, cursor.Err()
}

func (r *ScheduleRepository) find(ctx context.Context, filter bson.M, page, pageSize int) ([]*domain.Schedule, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	schedules := make([]*domain.Schedule, 0, pageSize)
	for cursor.Next(ctx) {
		var doc scheduleDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		schedules = append(schedules, doc.toDomain())
	}
	return schedules, total, cursor.Err()
}

func (r *ScheduleRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "facility", Value: 1}, {Key: "weekday", Value: 1}, {Key: "start_time", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
