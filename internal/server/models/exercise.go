package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Exercise is a catalog entry. Name is globally unique regardless of owner.
// Creator holds the hex id of the owning user; entries with IsVisible false
// are private to their creator.
type Exercise struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name          string             `bson:"name" json:"name"`
	Creator       string             `bson:"creator" json:"creator"`
	Description   string             `bson:"description" json:"description"`
	PrimaryMuscle string             `bson:"primaryMuscle" json:"primaryMuscle"`
	OtherMuscles  []string           `bson:"otherMuscles" json:"otherMuscles"`
	Equipment     string             `bson:"equipment" json:"equipment"`
	IsVisible     bool               `bson:"isVisible" json:"isVisible"`
}
