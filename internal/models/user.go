package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a staff account (receptionist or technician).
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Email        string              `bson:"email" json:"email"`
	// The hash stays in the JSON shape so a backup restore does not wipe
	// staff credentials. Users are never serialized on any other route.
	PasswordHash string              `bson:"passwordHash" json:"passwordHash,omitempty"`
	Name         string              `bson:"name" json:"name"`
	Role         string              `bson:"role" json:"role"`
	BranchID     *primitive.ObjectID `bson:"branchId,omitempty" json:"branchId,omitempty"`
	IsActive     bool                `bson:"isActive" json:"isActive"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}
