package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tip is a preparation resource with an external link.
type Tip struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Link        string             `bson:"link" json:"link"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
