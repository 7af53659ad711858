package repo

import (
	"context"
	"errors"

	models "github.com/phillip/volunteerease-go/models"
)

// ErrNotFound is returned by Get-style lookups when no document
// matches. Callers decide what it means: for accounts it signals an
// orphaned credential.
var ErrNotFound = errors.New("document not found")

// Accounts stores one profile document per credential id.
type Accounts interface {
	Put(ctx context.Context, acct models.Account) error
	Get(ctx context.Context, id string) (models.Account, error)
}

// Events stores immutable event documents. List returns the whole
// collection ordered by created_at descending.
type Events interface {
	Insert(ctx context.Context, ev models.Event) (string, error)
	List(ctx context.Context) ([]models.Event, error)
	Get(ctx context.Context, id string) (models.Event, error)
}

// Volunteers stores one application document per submission.
type Volunteers interface {
	Insert(ctx context.Context, app models.VolunteerApplication) (string, error)
}
