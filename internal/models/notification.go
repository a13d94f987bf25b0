package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is a stored in-app notice. Delivery is handled elsewhere;
// the type exists here so backups carry the collection.
type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    *primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	OrderID   *primitive.ObjectID `bson:"orderId,omitempty" json:"orderId,omitempty"`
	Title     string              `bson:"title" json:"title"`
	Body      string              `bson:"body,omitempty" json:"body,omitempty"`
	Read      bool                `bson:"read" json:"read"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
}
