package models

import "time"

// Account kinds. Organizations may create events; individuals apply to
// volunteer.
const (
	KindIndividual   = "individual"
	KindOrganization = "organization"
)

// Account is the application-level profile document stored in the
// "users" collection, keyed by the identity provider's credential id.
// Written once at signup, read at login, never mutated afterwards.
type Account struct {
	ID          string    `bson:"_id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	Email       string    `bson:"email" json:"email"`
	AccountKind string    `bson:"account_kind" json:"account_kind"` // individual | organization
	DisplayName string    `bson:"display_name,omitempty" json:"display_name,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

func ValidKind(kind string) bool {
	return kind == KindIndividual || kind == KindOrganization
}

// Profile is the slice of an account carried in a session and in auth
// responses.
type Profile struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}
