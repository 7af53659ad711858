// Package session holds the in-process authentication state for an
// embedding client: who is signed in and as what kind of account. The
// store is created signed out, mutated only by Signup/Login/Logout,
// and never persisted.
package session

import (
	"context"
	"sync"

	auth "github.com/phillip/volunteerease-go/auth"
	models "github.com/phillip/volunteerease-go/models"
)

// Session is a snapshot of the current state. Kind and Profile are
// meaningful only while SignedIn is true.
type Session struct {
	SignedIn bool
	Kind     string
	Profile  models.Profile
}

// Store is the single owner of session state. All remote work is
// delegated to the auth service; the store only applies the
// SignedOut/SignedIn transitions on success. Concurrent mutators are
// serialized for the duration of the remote call, so two racing logins
// cannot interleave their state writes.
type Store struct {
	mu        sync.Mutex
	svc       *auth.Service
	session   Session
	sessionID string // provider session, needed for logout
}

func NewStore(svc *auth.Service) *Store {
	return &Store{svc: svc}
}

// Current returns a copy of the session state.
func (s *Store) Current() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Signup creates a credential and account record, then transitions the
// store to SignedIn. Password confirmation is the caller's concern.
// On any failure the state is left untouched.
func (s *Store) Signup(ctx context.Context, username, email, password, kind string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.svc.SignUp(ctx, username, email, password, kind)
	if err != nil {
		return err
	}

	s.session = Session{SignedIn: true, Kind: res.AccountKind, Profile: res.Profile}
	s.sessionID = res.SessionID
	return nil
}

// Login verifies the credential and loads the account record, then
// transitions the store to SignedIn. A missing account record leaves
// the store signed out.
func (s *Store) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.svc.Login(ctx, email, password)
	if err != nil {
		return err
	}

	s.session = Session{SignedIn: true, Kind: res.AccountKind, Profile: res.Profile}
	s.sessionID = res.SessionID
	return nil
}

// Logout invalidates the provider session and resets the store to
// SignedOut. If the remote sign-out fails, local state is kept so the
// caller can retry.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.SignedIn {
		return nil
	}
	if err := s.svc.SignOut(ctx, s.sessionID); err != nil {
		return err
	}

	s.session = Session{}
	s.sessionID = ""
	return nil
}
