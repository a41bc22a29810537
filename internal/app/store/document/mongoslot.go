// internal/app/store/document/mongoslot.go
package document

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultSlotKey is the _id of the document record when none is configured.
const DefaultSlotKey = "wandernext_v1"

// MongoSlot persists the document as one record in a MongoDB collection,
// keyed by a fixed slot key. The payload stays an opaque JSON blob so the
// whole-document read-modify-write contract is identical to FileSlot.
type MongoSlot struct {
	c   *mongo.Collection
	key string
}

type slotRecord struct {
	ID      string `bson:"_id"`
	Payload []byte `bson:"payload"`
}

// NewMongoSlot creates a MongoSlot on the "document" collection of db.
// An empty key falls back to DefaultSlotKey.
func NewMongoSlot(db *mongo.Database, key string) *MongoSlot {
	if key == "" {
		key = DefaultSlotKey
	}
	return &MongoSlot{c: db.Collection("document"), key: key}
}

// Load fetches the slot record. A missing record means "no data".
func (s *MongoSlot) Load(ctx context.Context) ([]byte, error) {
	var rec slotRecord
	err := s.c.FindOne(ctx, bson.M{"_id": s.key}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec.Payload, nil
}

// Save upserts the slot record with the new payload.
func (s *MongoSlot) Save(ctx context.Context, payload []byte) error {
	update := bson.M{"$set": bson.M{"payload": payload}}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": s.key}, update, opts)
	return err
}
