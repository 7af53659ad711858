package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	apperr "github.com/phillip/volunteerease-go/apperr"
	models "github.com/phillip/volunteerease-go/models"
	repo "github.com/phillip/volunteerease-go/repo"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 8

// Result is what a successful signup or login yields: the profile, the
// account kind, and the provider session id.
type Result struct {
	Profile     models.Profile
	AccountKind string
	SessionID   string
}

// Service owns the signup/login/logout flows: credential work goes
// through the identity provider, profile documents through the
// accounts gateway.
type Service struct {
	provider IdentityProvider
	accounts repo.Accounts
	logger   *zap.Logger
}

func NewService(provider IdentityProvider, accounts repo.Accounts, logger *zap.Logger) *Service {
	return &Service{provider: provider, accounts: accounts, logger: logger}
}

// SignUp validates locally before any remote call, then creates the
// credential, attaches the display name, and writes the account
// record. The two remote writes are not atomic: if the account-record
// write fails, the freshly created credential is deleted so a later
// login cannot hit a credential with no account behind it.
func (s *Service) SignUp(ctx context.Context, username, email, password, kind string) (Result, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return Result{}, apperr.New(apperr.Validation, "please enter your name or organization name")
	}
	if !emailPattern.MatchString(strings.ToLower(email)) {
		return Result{}, apperr.New(apperr.Validation, "please enter a valid email address")
	}
	if len(password) < minPasswordLen {
		return Result{}, apperr.New(apperr.Validation, "password must be at least 8 characters")
	}
	if !models.ValidKind(kind) {
		return Result{}, apperr.New(apperr.Validation, "account kind must be individual or organization")
	}

	cred, sid, err := s.provider.Create(ctx, email, password)
	if err != nil {
		return Result{}, err
	}

	if err := s.provider.UpdateDisplayName(ctx, cred.ID, username); err != nil {
		s.compensate(ctx, cred.ID)
		return Result{}, err
	}

	acct := models.Account{
		ID:          cred.ID,
		Username:    username,
		Email:       email,
		AccountKind: kind,
		DisplayName: username,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.accounts.Put(ctx, acct); err != nil {
		s.compensate(ctx, cred.ID)
		return Result{}, err
	}

	return Result{
		Profile:     models.Profile{ID: cred.ID, DisplayName: username, Email: email},
		AccountKind: kind,
		SessionID:   sid,
	}, nil
}

// compensate removes a credential whose signup could not complete. If
// the delete itself fails the orphan stays behind and a later login
// will surface it as a data-integrity failure.
func (s *Service) compensate(ctx context.Context, credentialID string) {
	if err := s.provider.Delete(ctx, credentialID); err != nil {
		s.logger.Error("could not delete orphaned credential",
			zap.String("credential_id", credentialID),
			zap.Error(err))
	}
}

// Login verifies the credential, then reads the account record keyed
// by the credential id. A valid credential with no account record is
// an orphaned signup and fails with a data-integrity error.
func (s *Service) Login(ctx context.Context, email, password string) (Result, error) {
	cred, sid, err := s.provider.Verify(ctx, strings.TrimSpace(email), password)
	if err != nil {
		return Result{}, err
	}

	acct, err := s.accounts.Get(ctx, cred.ID)
	if errors.Is(err, repo.ErrNotFound) {
		return Result{}, apperr.New(apperr.DataIntegrity, "account data missing")
	}
	if err != nil {
		return Result{}, err
	}

	name := acct.Username
	if name == "" {
		name = cred.DisplayName
	}

	return Result{
		Profile:     models.Profile{ID: cred.ID, DisplayName: name, Email: acct.Email},
		AccountKind: acct.AccountKind,
		SessionID:   sid,
	}, nil
}

// SignOut invalidates the provider session.
func (s *Service) SignOut(ctx context.Context, sessionID string) error {
	return s.provider.SignOut(ctx, sessionID)
}
