package mongo

import (
	"context"
	"regexp"

	"go-portfolio-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per content type.
const (
	CollProfile         = "profile"
	CollSkills          = "skills"
	CollProjects        = "projects"
	CollEducation       = "education"
	CollExperience      = "experience"
	CollLearningJourney = "learning_journey"
	CollExperiments     = "experiments"
	CollContactSection  = "contact_section"
	CollContactMessages = "contact_messages"
	CollFooter          = "footer"
	CollAdmins          = "admins"
	CollNotifications   = "notifications"
	CollGrowthMindset   = "growth_mindset"
)

// EnsureIndexes creates the indexes the application relies on: the unique
// admin username and the 10-day TTL on notifications.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollAdmins).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	ttl := int32(domain.NotificationTTL.Seconds())
	_, err = db.Collection(CollNotifications).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(ttl),
	})
	return err
}

// oidFromHex parses a public string id; a malformed id is treated the same
// as an unknown one.
func oidFromHex(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

// containsFilter builds an "any of these fields contains the substring"
// filter: a case-insensitive regex with the query quoted literally.
func containsFilter(query string, fields ...string) bson.M {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	or := make([]bson.M, 0, len(fields))
	for _, f := range fields {
		or = append(or, bson.M{f: re})
	}
	return bson.M{"$or": or}
}
