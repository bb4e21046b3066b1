package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus int

const (
	StatusInProgress TaskStatus = 0
	StatusDone       TaskStatus = 1
	StatusPaused     TaskStatus = 2
	StatusRevision   TaskStatus = 3
)

// IsValid reports whether s is one of the four board columns.
func (s TaskStatus) IsValid() bool {
	return s >= StatusInProgress && s <= StatusRevision
}

// Task field names on the wire (Nametask, assignedTo, ...) follow the
// contract the frontend already speaks.
type Task struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name        string               `bson:"name" json:"Nametask"`
	Description string               `bson:"description" json:"Description"`
	Category    string               `bson:"category" json:"category"`
	Status      TaskStatus           `bson:"status" json:"status"`
	Deadline    time.Time            `bson:"deadline" json:"deadline"`
	Group       *primitive.ObjectID  `bson:"group,omitempty" json:"group,omitempty"`
	CreatedBy   primitive.ObjectID   `bson:"createdBy" json:"createdBy"`
	AssignedTo  []primitive.ObjectID `bson:"assignedTo" json:"assignedTo"`
	CreatedAt   time.Time            `bson:"createdAt" json:"createdAt"`
}
