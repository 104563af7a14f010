package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// singletonDoc is implemented by the replace-wholesale content entities.
type singletonDoc interface {
	Normalize()
	Stamp(now time.Time)
}

// SingletonRepo is the shared data access for collections constrained to a
// single document. Every write is a ReplaceOne against an empty filter with
// upsert, so the collection can never grow past one document.
type SingletonRepo[T any, PT interface {
	*T
	singletonDoc
}] struct {
	coll *mongo.Collection
}

func NewSingletonRepo[T any, PT interface {
	*T
	singletonDoc
}](db *mongo.Database, collection string) *SingletonRepo[T, PT] {
	return &SingletonRepo[T, PT]{coll: db.Collection(collection)}
}

// Get returns the document, or (nil, nil) when the collection is empty.
func (r *SingletonRepo[T, PT]) Get(ctx context.Context) (*T, error) {
	var doc T
	err := r.coll.FindOne(ctx, bson.D{}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	PT(&doc).Normalize()
	return &doc, nil
}

// Replace upserts the document wholesale with a refreshed updatedAt.
func (r *SingletonRepo[T, PT]) Replace(ctx context.Context, doc *T) error {
	PT(doc).Stamp(time.Now().UTC())
	_, err := r.coll.ReplaceOne(ctx, bson.D{}, doc, options.Replace().SetUpsert(true))
	return err
}
