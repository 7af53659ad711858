package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Event is immutable once created: there is no edit or delete flow.
// Date is a display string chosen by the organizer; CreatedAt is an
// RFC3339 timestamp generated client-side and used for ordering.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Location    string             `bson:"location" json:"location"`
	Date        string             `bson:"date" json:"date"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	CreatedBy   string             `bson:"created_by" json:"created_by"` // account id
	CreatedAt   string             `bson:"created_at" json:"created_at"`
}
