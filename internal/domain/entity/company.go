package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company is a recruiting company shown on the public listing.
// Featured companies surface on the landing page (capped at 3).
type Company struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Roles        []string           `bson:"roles" json:"roles"`
	Requirements string             `bson:"requirements" json:"requirements"`
	Featured     bool               `bson:"featured" json:"featured"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
