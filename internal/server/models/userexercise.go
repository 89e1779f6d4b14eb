package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// UserExerciseStat is the per-(user, exercise) running history, unique on
// that pair. PastSetWeight, PastSetReps and PastDates are append-synchronized:
// index i across all three describes one historical set. PersonalRecord is
// the maximum weight ever logged for the pair; PersonalRecordDate is the
// date of the session in which that maximum was first achieved.
type UserExerciseStat struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID             string             `bson:"userID" json:"userID"`
	ExerciseID         string             `bson:"exerciseID" json:"exerciseID"`
	PastSetWeight      []float64          `bson:"pastSetWeight" json:"pastSetWeight"`
	PastSetReps        []int              `bson:"pastSetReps" json:"pastSetReps"`
	PastDates          []string           `bson:"pastDates" json:"pastDates"`
	PersonalRecord     float64            `bson:"personalRecord" json:"personalRecord"`
	PersonalRecordDate string             `bson:"personalRecordDate" json:"personalRecordDate"`
}
