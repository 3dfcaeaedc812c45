package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tranquility404/study-planner/internal/model"
)

// MongoScheduleStore is the ScheduleStore backed by a MongoDB collection.
// The collection assigns each document an ObjectID on insert; its hex form
// is the public document identifier.
type MongoScheduleStore struct {
	coll *mongo.Collection
}

func NewMongoScheduleStore(client *mongo.Client, database, collection string) *MongoScheduleStore {
	return &MongoScheduleStore{coll: client.Database(database).Collection(collection)}
}

type scheduleRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	UserID   string             `bson:"user_id"`
	Username string             `bson:"username"`
	Schedule bson.M             `bson:"schedule"`
}

func (r *MongoScheduleStore) Insert(ctx context.Context, doc *model.ScheduleDocument) (string, error) {
	res, err := r.coll.InsertOne(ctx, bson.M{
		"user_id":  doc.UserID,
		"username": doc.Username,
		"schedule": doc.Schedule,
	})
	if err != nil {
		return "", err
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}

	return oid.Hex(), nil
}

func (r *MongoScheduleStore) Get(ctx context.Context, id string) (*model.ScheduleDocument, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidDocumentID
	}

	var rec scheduleRecord
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&rec); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	return &model.ScheduleDocument{
		ID:       rec.ID.Hex(),
		UserID:   rec.UserID,
		Username: rec.Username,
		Schedule: normalizeMap(rec.Schedule),
	}, nil
}

func (r *MongoScheduleStore) Replace(ctx context.Context, id string, doc *model.ScheduleDocument) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidDocumentID
	}

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, bson.M{
		"user_id":  doc.UserID,
		"username": doc.Username,
		"schedule": doc.Schedule,
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

func (r *MongoScheduleStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidDocumentID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrDocumentNotFound
	}

	return nil
}

// normalizeMap converts a decoded BSON tree into plain JSON types so the
// rest of the service never sees driver-specific values: bson.M becomes
// map[string]any, bson.A/primitive.A become []any, and embedded ObjectIDs
// are rendered as hex strings.
func normalizeMap(m bson.M) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalize(v)
	}
	return out
}

func normalize(v any) any {
	switch t := v.(type) {
	case bson.M:
		return normalizeMap(t)
	case map[string]any:
		return normalizeMap(t)
	case bson.A:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = normalize(item)
		}
		return items
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = normalize(item)
		}
		return items
	case primitive.ObjectID:
		return t.Hex()
	default:
		return v
	}
}
