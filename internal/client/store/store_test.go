package store

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/quickbites-admin/internal/client/models"
	"github.com/quickbites/quickbites-admin/internal/client/repositories/session"
	"github.com/quickbites/quickbites-admin/internal/logging"
)

func setupStore(t *testing.T) (*Store, session.Repository) {
	t.Helper()
	db, err := session.Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := session.NewSQLiteRepository(db)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return New(repo, log), repo
}

func TestStore_SaveSessionAndRestore(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	op := models.Operator{ID: "1", UserName: "A"}
	require.NoError(t, s.SaveSession(ctx, "abc", op))

	token, restored, ok := s.Restore(ctx)
	require.True(t, ok)
	require.Equal(t, "abc", token)
	require.Equal(t, "1", restored.ID)
	require.Equal(t, "A", restored.UserName)
}

func TestStore_RestoreWithoutToken(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	_, _, ok := s.Restore(ctx)
	require.False(t, ok)
	require.Empty(t, s.Token(ctx))
}

func TestStore_CorruptOperatorRecordIgnored(t *testing.T) {
	ctx := context.Background()
	s, repo := setupStore(t)

	require.NoError(t, repo.Set(ctx, "token", []byte("abc")))
	require.NoError(t, repo.Set(ctx, "operator", []byte("{not json")))

	_, ok := s.Operator(ctx)
	require.False(t, ok)

	// a corrupt record means the whole session is treated as unauthenticated
	_, _, ok = s.Restore(ctx)
	require.False(t, ok)
}

func TestStore_OperatorRecordWithoutIDIgnored(t *testing.T) {
	ctx := context.Background()
	s, repo := setupStore(t)

	require.NoError(t, repo.Set(ctx, "operator", []byte(`{"userName":"A"}`)))

	_, ok := s.Operator(ctx)
	require.False(t, ok)
}

func TestStore_SaveOperatorWriteThrough(t *testing.T) {
	ctx := context.Background()
	s, repo := setupStore(t)

	require.NoError(t, s.SaveOperator(ctx, models.Operator{ID: "9", Email: "x@y.z"}))

	raw, err := repo.Get(ctx, "operator")
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"9","userName":"","email":"x@y.z"}`, string(raw))
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	s, _ := setupStore(t)

	require.NoError(t, s.SaveSession(ctx, "abc", models.Operator{ID: "1"}))
	require.NoError(t, s.Clear(ctx))

	require.Empty(t, s.Token(ctx))
	_, ok := s.Operator(ctx)
	require.False(t, ok)
}
