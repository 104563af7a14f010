package mongo

import (
	"context"
	"errors"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type adminRepo struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) domain.AdminRepository {
	return &adminRepo{coll: db.Collection(CollAdmins)}
}

func (r *adminRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var admin domain.Admin
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	admin.Normalize()
	return &admin, nil
}

func (r *adminRepo) List(ctx context.Context) ([]domain.Admin, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	admins := []domain.Admin{}
	if err := cursor.All(ctx, &admins); err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i].Normalize()
	}
	return admins, nil
}

func (r *adminRepo) Insert(ctx context.Context, admin *domain.Admin) (string, error) {
	res, err := r.coll.InsertOne(ctx, admin)
	if mongo.IsDuplicateKeyError(err) {
		return "", domain.ErrUsernameTaken
	}
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *adminRepo) Delete(ctx context.Context, username string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"username": username})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
