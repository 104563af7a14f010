package mongo

import (
	"context"
	"time"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type journeyRepo struct {
	coll *mongo.Collection
}

func NewJourneyRepository(db *mongo.Database) domain.JourneyRepository {
	return &journeyRepo{coll: db.Collection(CollLearningJourney)}
}

func (r *journeyRepo) List(ctx context.Context) ([]domain.LearningPhase, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	phases := []domain.LearningPhase{}
	if err := cursor.All(ctx, &phases); err != nil {
		return nil, err
	}
	for i := range phases {
		phases[i].Normalize()
	}
	return phases, nil
}

func (r *journeyRepo) Insert(ctx context.Context, phase *domain.LearningPhase) (string, error) {
	res, err := r.coll.InsertOne(ctx, phase)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *journeyRepo) Update(ctx context.Context, id string, patch domain.UpdatePhaseRequest, updatedAt time.Time) (bool, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return false, nil
	}

	set := bson.M{"updatedAt": updatedAt}
	if patch.Phase != nil {
		set["phase"] = *patch.Phase
	}
	if patch.Skills != nil {
		set["skills"] = *patch.Skills
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Order != nil {
		set["order"] = *patch.Order
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *journeyRepo) Delete(ctx context.Context, id string) (bool, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return false, nil
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
