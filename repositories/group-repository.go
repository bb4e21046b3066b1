package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Moon2322/Task-App-Manager/models"
	"github.com/Moon2322/Task-App-Manager/services"
)

type GroupRepository struct {
	collection *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) *GroupRepository {
	return &GroupRepository{collection: db.Collection("groups")}
}

func (r *GroupRepository) Insert(ctx context.Context, group models.Group) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, group)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *GroupRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Group, error) {
	var group models.Group
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Group{}, services.ErrGroupNotFound
	}
	if err != nil {
		return models.Group{}, err
	}
	return group, nil
}

func (r *GroupRepository) FindByCreator(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	return r.find(ctx, bson.M{"creator": userID})
}

func (r *GroupRepository) FindByMember(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error) {
	return r.find(ctx, bson.M{"members": userID})
}

// AddMembers merges the IDs into the member list with a single $addToSet
// update, so the store itself guarantees no duplicates and no lost updates
// under concurrent calls.
func (r *GroupRepository) AddMembers(ctx context.Context, groupID primitive.ObjectID, memberIDs []primitive.ObjectID) error {
	if len(memberIDs) == 0 {
		return nil
	}

	filter := bson.M{"_id": groupID}
	update := bson.M{"$addToSet": bson.M{"members": bson.M{"$each": memberIDs}}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return services.ErrGroupNotFound
	}
	return nil
}

func (r *GroupRepository) find(ctx context.Context, filter bson.M) ([]models.Group, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []models.Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
