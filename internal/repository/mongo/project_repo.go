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

type projectRepo struct {
	coll *mongo.Collection
}

func NewProjectRepository(db *mongo.Database) domain.ProjectRepository {
	return &projectRepo{coll: db.Collection(CollProjects)}
}

func (r *projectRepo) List(ctx context.Context) ([]domain.Project, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	projects := []domain.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].Normalize()
	}
	return projects, nil
}

func (r *projectRepo) Insert(ctx context.Context, project *domain.Project) (string, error) {
	res, err := r.coll.InsertOne(ctx, project)
	if err != nil {
		return "", err
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *projectRepo) Update(ctx context.Context, id string, patch domain.UpdateProjectRequest, updatedAt time.Time) (bool, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return false, nil
	}

	set := bson.M{"updatedAt": updatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.LiveURL != nil {
		set["liveUrl"] = *patch.LiveURL
	}
	if patch.GithubURL != nil {
		set["githubUrl"] = *patch.GithubURL
	}
	if patch.Technologies != nil {
		set["technologies"] = *patch.Technologies
	}

	res, err := r.coll.UpdateByID(ctx, oid, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *projectRepo) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *projectRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
