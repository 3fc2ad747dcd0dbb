// Package store exposes the typed session store: the durable authenticated
// session (token plus cached operator record) layered over the key/value
// session repository.
//
// The store is the single owner of the persisted session. The credential flow
// writes it on login, the data provider writes profile refreshes through it,
// and the route guard reads it. A malformed persisted record is never fatal:
// it is logged, ignored, and the session behaves as unauthenticated.
package store

import (
	"context"
	"encoding/json"

	"github.com/quickbites/quickbites-admin/internal/client/models"
	"github.com/quickbites/quickbites-admin/internal/client/repositories/session"
	"github.com/quickbites/quickbites-admin/internal/logging"
)

const (
	keyToken    = "token"
	keyOperator = "operator"
)

type Store struct {
	repo session.Repository
	log  logging.Logger
}

func New(repo session.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log}
}

// Token returns the persisted auth token, or an empty string when there is
// none. Read failures are logged and reported as "no token" so callers treat
// the session as unauthenticated.
func (s *Store) Token(ctx context.Context) string {
	value, err := s.repo.Get(ctx, keyToken)
	if err != nil {
		s.log.Error(ctx, "failed to read stored token", "error", err)
		return ""
	}
	return string(value)
}

// Operator returns the cached operator record. The second result is false
// when no valid record is stored; a corrupt record is logged and discarded.
func (s *Store) Operator(ctx context.Context) (*models.Operator, bool) {
	value, err := s.repo.Get(ctx, keyOperator)
	if err != nil {
		s.log.Error(ctx, "failed to read stored operator record", "error", err)
		return nil, false
	}
	if value == nil {
		return nil, false
	}

	var op models.Operator
	if err := json.Unmarshal(value, &op); err != nil {
		s.log.Warn(ctx, "ignoring corrupt stored operator record", "error", err)
		return nil, false
	}
	if op.ID == "" {
		s.log.Warn(ctx, "ignoring stored operator record without id")
		return nil, false
	}
	return &op, true
}

// Restore reads the persisted session at process start. It succeeds only when
// both a token and a valid operator record are present.
func (s *Store) Restore(ctx context.Context) (string, *models.Operator, bool) {
	token := s.Token(ctx)
	if token == "" {
		return "", nil, false
	}
	op, ok := s.Operator(ctx)
	if !ok {
		return "", nil, false
	}
	return token, op, true
}

// SaveSession persists a freshly established authenticated session: the token
// and the operator snapshot returned by the login call.
func (s *Store) SaveSession(ctx context.Context, token string, op models.Operator) error {
	if err := s.repo.Set(ctx, keyToken, []byte(token)); err != nil {
		return err
	}
	return s.SaveOperator(ctx, op)
}

// SaveOperator writes the operator record through to durable storage. Callers
// must pass the record already merged with the operator id.
func (s *Store) SaveOperator(ctx context.Context, op models.Operator) error {
	data, err := json.Marshal(op)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, keyOperator, data)
}

// Clear removes the persisted session. Used on logout.
func (s *Store) Clear(ctx context.Context) error {
	return s.repo.Clear(ctx)
}
