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

const collectionEvents = "events"

// eventDocument is the persisted shape of a domain.Event. Documents carry a
// native ObjectID so insertion order doubles as listing order.
type eventDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Facility   string             `bson:"facility"`
	Sport      string             `bson:"sport"`
	Date       string             `bson:"date"`
	MemberName string             `bson:"member_name"`
	Title      string             `bson:"title"`
	LoadedBy   string             `bson:"loaded_by"`
	StartTime  string             `bson:"start_time"`
	EndTime    string             `bson:"end_time"`
}

func (d *eventDocument) toDomain() *domain.Event {
	return &domain.Event{
		ID:         d.ID.Hex(),
		Facility:   d.Facility,
		Sport:      d.Sport,
		Date:       d.Date,
		MemberName: d.MemberName,
		Title:      d.Title,
		LoadedBy:   d.LoadedBy,
		StartTime:  d.StartTime,
		EndTime:    d.EndTime,
	}
}

func eventToDocument(e *domain.Event) *eventDocument {
	return &eventDocument{
		Facility:   e.Facility,
		Sport:      e.Sport,
		Date:       e.Date,
		MemberName: e.MemberName,
		Title:      e.Title,
		LoadedBy:   e.LoadedBy,
		StartTime:  e.StartTime,
		EndTime:    e.EndTime,
	}
}

type EventRepository struct {
	col *mongo.Collection
}

func NewEventRepository(db *mongo.Database) *EventRepository {
	return &EventRepository{col: db.Collection(collectionEvents)}
}

// Create inserts a new event document and returns it with the generated id.
func (r *EventRepository) Create(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := eventToDocument(e)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// FindByID retrieves an event by its hex id.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc eventDocument
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return doc.toDomain(), nil
}

// Update replaces the stored document for e.ID.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	oid, err := primitive.ObjectIDFromHex(e.ID)
	if err != nil {
		return domain.ErrValidation
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, eventToDocument(e))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// Delete removes the event with the given id.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
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
		return domain.ErrEventNotFound
	}
	return nil
}

// List returns one page of events in creation order plus the total count.
func (r *EventRepository) List(ctx context.Context, page, pageSize int) ([]*domain.Event, int64, error) {
	return r.find(ctx, bson.M{}, page, pageSize)
}

// Filter returns one page of events matching the criteria plus the total count.
func (r *EventRepository) Filter(ctx context.Context, criteria ports.EventCriteria, page, pageSize int) ([]*domain.Event, int64, error) {
	filter := bson.M{}
	if criteria.Facility != "" {
		filter["facility"] = containsIgnoreCase(criteria.Facility)
	}
	if criteria.Sport != "" {
		filter["sport"] = containsIgnoreCase(criteria.Sport)
	}
	if criteria.Date != "" {
		filter["date"] = criteria.Date
	}
	applyTimeBounds(filter, criteria.StartTime, criteria.EndTime)

	return r.find(ctx, filter, page, pageSize)
}

// FindOverlapping returns every event in the (facility, date) partition whose
// slot intersects [start, end). excludeID, when set, skips that record.
func (r *EventRepository) FindOverlapping(ctx context.Context, facility, date, start, end, excludeID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"facility":   facility,
		"date":       date,
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

	var events []*domain.Event
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		events = append(events, doc.toDomain())
	}
	return events, cursor.Err()
}

func (r *EventRepository) find(ctx context.Context, filter bson.M, page, pageSize int) ([]*domain.Event, int64, error) {
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

	events := make([]*domain.Event, 0, pageSize)
	for cursor.Next(ctx) {
		var doc eventDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, err
		}
		events = append(events, doc.toDomain())
	}
	return events, total, cursor.Err()
}

// EnsureIndexes creates the indexes backing overlap checks and filtering.
func (r *EventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "facility", Value: 1}, {Key: "date", Value: 1}, {Key: "start_time", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
