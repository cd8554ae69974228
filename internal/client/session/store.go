// Package session persists the signed-in session in the local client
// database: one opaque auth token and the cached user profile, kept under
// the auth_token and user_data metadata keys.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobtracker/internal/common"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// Record is a persisted session.
type Record struct {
	Token string
	User  *models.User
}

// Store reads and writes the session slots. The two slots are either both
// present or both absent; anything else is treated as corrupt.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log.With("component", "session_store")}
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Write stores token and user in a single transaction.
func (s *Store) Write(ctx context.Context, token string, user *models.User) error {
	if token == "" {
		return errors.New("session: empty token")
	}
	if user == nil {
		return errors.New("session: nil user")
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AuthTokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, common.UserDataKey, userData)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

// Read returns the persisted session. When nothing usable is stored it
// clears both slots and returns ErrNoSession; a corrupt record is logged and
// handled the same way. Database failures are returned wrapped in ErrStorage.
func (s *Store) Read(ctx context.Context) (*Record, error) {
	rec, err := s.load(ctx)
	if err == nil {
		return rec, nil
	}

	if errors.Is(err, ErrStorage) {
		return nil, err
	}
	if errors.Is(err, ErrCorruptSession) {
		s.log.Warn(ctx, "discarding persisted session", "reason", err.Error())
	}

	if err := s.Clear(ctx); err != nil {
		return nil, err
	}
	return nil, ErrNoSession
}

func (s *Store) load(ctx context.Context) (*Record, error) {
	repo := s.repo()

	token, tokenErr := repo.Get(ctx, common.AuthTokenKey)
	if tokenErr != nil && !errors.Is(tokenErr, metadata.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrStorage, tokenErr)
	}
	userData, userErr := repo.Get(ctx, common.UserDataKey)
	if userErr != nil && !errors.Is(userErr, metadata.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrStorage, userErr)
	}

	tokenMissing := tokenErr != nil || len(token) == 0
	userMissing := userErr != nil || len(userData) == 0

	switch {
	case tokenMissing && userMissing:
		return nil, ErrNoSession
	case tokenMissing:
		return nil, fmt.Errorf("%w: user data without token", ErrCorruptSession)
	case userMissing:
		return nil, fmt.Errorf("%w: token without user data", ErrCorruptSession)
	}

	var user *models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		return nil, fmt.Errorf("%w: decode user: %w", ErrCorruptSession, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: empty user record", ErrCorruptSession)
	}

	return &Record{Token: string(token), User: user}, nil
}

// Clear removes both slots. Clearing an empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.repo().Delete(ctx, common.AuthTokenKey, common.UserDataKey); err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}
