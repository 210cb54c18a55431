package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/campuskart/internal/client/models"
	"github.com/dmitrijs2005/campuskart/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/campuskart/internal/common"
	"github.com/dmitrijs2005/campuskart/internal/cryptox"
	"github.com/dmitrijs2005/campuskart/internal/logging"
	"github.com/google/uuid"
)

// minimum input lengths enforced at registration
const (
	minNameLen     = 2
	minPasswordLen = 6
)

// Identity owns the user collection and the single active-session pointer.
//
// The session is held as a user id and resolved on every read, never as a
// copied record, so readers always observe the authoritative user fields.
type Identity struct {
	store    kvstore.Repository
	verifier cryptox.Verifier
	log      logging.Logger

	users     []models.User
	sessionID string

	// test seams
	now   func() time.Time
	newID func() string
}

// RegisterParams carries the already-trimmed signup form fields.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	College  string
	Role     models.Role
}

// NewIdentity loads the persisted users and session from the store and
// returns a ready manager.
func NewIdentity(ctx context.Context, store kvstore.Repository, verifier cryptox.Verifier, log logging.Logger) (*Identity, error) {
	i := &Identity{
		store:    store,
		verifier: verifier,
		log:      log.With("component", "identity"),
		now:      time.Now,
		newID:    uuid.NewString,
	}
	if err := i.load(ctx); err != nil {
		return nil, fmt.Errorf("load identity state: %w", err)
	}
	return i, nil
}

func (i *Identity) load(ctx context.Context) error {
	raw, err := i.store.Get(ctx, usersKey)
	if err != nil {
		return err
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &i.users); err != nil {
			return fmt.Errorf("unmarshal users: %w", err)
		}
	}

	sid, err := i.store.Get(ctx, sessionKey)
	if err != nil {
		return err
	}
	if sid != nil && i.findByID(string(sid)) != nil {
		i.sessionID = string(sid)
	}
	return nil
}

func (i *Identity) findByID(id string) *models.User {
	for n := range i.users {
		if i.users[n].ID == id {
			return &i.users[n]
		}
	}
	return nil
}

func (i *Identity) findByEmail(email string) *models.User {
	// exact, case-sensitive match, as with the duplicate check
	for n := range i.users {
		if i.users[n].Email == email {
			return &i.users[n]
		}
	}
	return nil
}

func validateRegistration(p RegisterParams) error {
	if len(p.Name) < minNameLen {
		return common.NewValidationError("name", "must be at least 2 characters")
	}
	if !models.ValidEmail(p.Email) {
		return common.NewValidationError("email", "must look like local@domain.tld")
	}
	if len(p.Password) < minPasswordLen {
		return common.NewValidationError("password", "must be at least 6 characters")
	}
	if len(p.College) < minNameLen {
		return common.NewValidationError("college", "must be at least 2 characters")
	}
	if !p.Role.Valid() {
		return common.NewValidationError("role", "must be buyer or buyer_and_seller")
	}
	return nil
}

// Register validates the signup fields, creates the user, persists the users
// collection and establishes the new user as the active session, replacing
// any previous one. Fails with common.ErrDuplicateEmail when the email is
// already taken; no state changes on any failure.
func (i *Identity) Register(ctx context.Context, p RegisterParams) (*models.User, error) {
	if err := validateRegistration(p); err != nil {
		return nil, err
	}
	if i.findByEmail(p.Email) != nil {
		return nil, common.ErrDuplicateEmail
	}

	credential, err := i.verifier.Hash(p.Password)
	if err != nil {
		return nil, fmt.Errorf("hash credential: %w", err)
	}

	user := models.User{
		ID:         i.newID(),
		Name:       p.Name,
		Email:      p.Email,
		Credential: credential,
		College:    p.College,
		Role:       p.Role,
		CreatedAt:  i.now().UTC(),
	}

	// the users collection and session pointer land in one transaction;
	// in-memory state changes only after the commit
	next := append(slices.Clone(i.users), user)
	err = i.store.InTx(ctx, func(s kvstore.Repository) error {
		if err := persistUsers(ctx, s, next); err != nil {
			return err
		}
		if err := s.Set(ctx, sessionKey, []byte(user.ID)); err != nil {
			return fmt.Errorf("persist session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	i.users = next
	i.sessionID = user.ID

	i.log.Info(ctx, "user registered", "id", user.ID, "role", user.Role)
	return i.findByID(user.ID), nil
}

// Authenticate looks up a user by email and checks the credential. Unknown
// email and wrong credential both yield common.ErrInvalidCredentials, so the
// response never reveals whether an account exists. On success the user
// becomes the active session.
func (i *Identity) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user := i.findByEmail(email)
	if user == nil {
		return nil, common.ErrInvalidCredentials
	}

	ok, err := i.verifier.Verify(password, user.Credential)
	if err != nil || !ok {
		// verifier errors are masked as well
		return nil, common.ErrInvalidCredentials
	}

	if err := i.setSession(ctx, user.ID); err != nil {
		return nil, err
	}

	i.log.Info(ctx, "user logged in", "id", user.ID)
	return user, nil
}

// Session returns the active user or nil. Pure read.
func (i *Identity) Session() *models.User {
	if i.sessionID == "" {
		return nil
	}
	return i.findByID(i.sessionID)
}

// RequireSession returns the active user or common.ErrUnauthenticated.
func (i *Identity) RequireSession() (*models.User, error) {
	u := i.Session()
	if u == nil {
		return nil, common.ErrUnauthenticated
	}
	return u, nil
}

// EndSession clears the active session. Idempotent: ending an absent session
// is not an error.
func (i *Identity) EndSession(ctx context.Context) error {
	i.sessionID = ""
	if err := i.store.Delete(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (i *Identity) setSession(ctx context.Context, id string) error {
	if err := i.store.Set(ctx, sessionKey, []byte(id)); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	i.sessionID = id
	return nil
}

func persistUsers(ctx context.Context, store kvstore.Repository, users []models.User) error {
	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("marshal users: %w", err)
	}
	if err := store.Set(ctx, usersKey, data); err != nil {
		return fmt.Errorf("persist users: %w", err)
	}
	return nil
}
