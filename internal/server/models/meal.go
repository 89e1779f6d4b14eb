package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Meal is a catalog entry with the same ownership and visibility rules as
// Exercise.
type Meal struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Creator     string             `bson:"creator" json:"creator"`
	Description string             `bson:"description" json:"description"`
	Calories    float64            `bson:"calories" json:"calories"`
	Protein     float64            `bson:"protein" json:"protein"`
	Carbs       float64            `bson:"carbs" json:"carbs"`
	Fats        float64            `bson:"fats" json:"fats"`
	IsVisible   bool               `bson:"isVisible" json:"isVisible"`
}
