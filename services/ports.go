package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Moon2322/Task-App-Manager/models"
)

// Store interfaces implemented by the repositories package. Keeping the
// services behind these lets the tests run against in-memory stores.

type UserStore interface {
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByUsername(ctx context.Context, username string) (models.User, error)
	FindByEmails(ctx context.Context, emails []string) ([]models.User, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	SetLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

type GroupStore interface {
	Insert(ctx context.Context, group models.Group) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Group, error)
	FindByCreator(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error)
	FindByMember(ctx context.Context, userID primitive.ObjectID) ([]models.Group, error)
	// AddMembers must union the IDs into the member list atomically in the
	// store, never read-modify-write, so concurrent calls cannot lose or
	// duplicate members.
	AddMembers(ctx context.Context, groupID primitive.ObjectID, memberIDs []primitive.ObjectID) error
}

type TaskStore interface {
	Insert(ctx context.Context, task models.Task) (primitive.ObjectID, error)
	FindByAssignee(ctx context.Context, userID primitive.ObjectID) ([]models.Task, error)
	FindByGroups(ctx context.Context, groupIDs []primitive.ObjectID) ([]models.Task, error)
	UpdateStatus(ctx context.Context, taskID primitive.ObjectID, status models.TaskStatus) (models.Task, error)
}
