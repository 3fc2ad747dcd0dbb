package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/quickbites-admin/internal/client/gateway"
	"github.com/quickbites/quickbites-admin/internal/client/models"
	"github.com/quickbites/quickbites-admin/internal/client/repositories/session"
	"github.com/quickbites/quickbites-admin/internal/client/store"
	"github.com/quickbites/quickbites-admin/internal/logging"
)

// fakeGateway implements gateway.Gateway for unit tests. Each operation has a
// canned result, an error to return, a call counter, and argument capture.
type fakeGateway struct {
	LoginRet   *gateway.LoginResult
	LoginErr   error
	LoginCalls int

	FederatedRet   *gateway.LoginResult
	FederatedErr   error
	FederatedCalls int

	ForgotErr   error
	ForgotCalls int

	VerifyErr   error
	VerifyCalls int

	ResetErr   error
	ResetCalls int

	ProfileRet   *models.Operator
	ProfileErr   error
	ProfileCalls int

	UpdateRet   *models.Operator
	UpdateErr   error
	UpdateCalls int

	OrdersRet   []models.Order
	OrdersErr   error
	OrdersCalls int

	LastLoginEmail    string
	LastLoginPassword string
	LastForgotEmail   string
	LastVerifyToken   string
	LastVerifyEmail   string
	LastResetEmail    string
	LastResetPassword string
	LastProfileID     string
	LastUpdateID      string
	LastUpdateFields  models.ProfileUpdate
}

func (f *fakeGateway) Login(ctx context.Context, email, password string) (*gateway.LoginResult, error) {
	f.LoginCalls++
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeGateway) FederatedLogin(ctx context.Context, identityToken string) (*gateway.LoginResult, error) {
	f.FederatedCalls++
	return f.FederatedRet, f.FederatedErr
}

func (f *fakeGateway) ForgotPassword(ctx context.Context, email string) error {
	f.ForgotCalls++
	f.LastForgotEmail = email
	return f.ForgotErr
}

func (f *fakeGateway) VerifyReset(ctx context.Context, identityToken, email string) error {
	f.VerifyCalls++
	f.LastVerifyToken = identityToken
	f.LastVerifyEmail = email
	return f.VerifyErr
}

func (f *fakeGateway) ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	f.ResetCalls++
	f.LastResetEmail = email
	f.LastResetPassword = newPassword
	return f.ResetErr
}

func (f *fakeGateway) GetProfile(ctx context.Context, operatorID string) (*models.Operator, error) {
	f.ProfileCalls++
	f.LastProfileID = operatorID
	return f.ProfileRet, f.ProfileErr
}

func (f *fakeGateway) UpdateProfile(ctx context.Context, operatorID string, fields models.ProfileUpdate) (*models.Operator, error) {
	f.UpdateCalls++
	f.LastUpdateID = operatorID
	f.LastUpdateFields = fields
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeGateway) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	f.OrdersCalls++
	return f.OrdersRet, f.OrdersErr
}

var _ gateway.Gateway = (*fakeGateway)(nil)

// setupStore builds a session store over an in-memory SQLite database unique
// to the calling test.
func setupStore(t *testing.T) (*store.Store, session.Repository) {
	t.Helper()
	db, err := session.Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := session.NewSQLiteRepository(db)
	return store.New(repo, discardLogger()), repo
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
