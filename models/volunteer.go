package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// VolunteerApplication is a one-shot submission; there is no update or
// delete, and applications are not linked to a specific event.
type VolunteerApplication struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      string             `bson:"user_id" json:"user_id"`
	Username    string             `bson:"username" json:"username"`
	PhoneNumber string             `bson:"phone_number" json:"phone_number"`
	Nationality string             `bson:"nationality" json:"nationality"`
	Email       string             `bson:"email" json:"email"`
	Age         int                `bson:"age" json:"age"`
	CreatedAt   string             `bson:"created_at" json:"created_at"`
}
