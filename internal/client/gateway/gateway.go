// Package gateway contains the client for the remote QuickBites auth and
// order service.
//
// The package provides:
//  1. A transport-agnostic API contract (the Gateway interface) covering
//     login, federated login, the three password-recovery operations, profile
//     read/update, and the order listing.
//  2. A concrete HTTP/JSON implementation (HTTPGateway) that talks to the
//     backend REST endpoints and maps failures to sentinel errors.
//
// Failure conditions callers can match with errors.Is / errors.As:
//   - ErrUnavailable: the gateway could not be reached or replied with
//     something that is not valid JSON.
//   - *RejectedError: the gateway understood the request and refused it;
//     carries the backend-provided message when there is one.
package gateway

import (
	"context"

	"github.com/quickbites/quickbites-admin/internal/client/models"
)

// LoginResult is the payload of a successful direct or federated login.
type LoginResult struct {
	Token    string
	Operator models.Operator
}

// Gateway is the API contract with the remote auth/order service. All methods
// honor context cancellation and timeouts.
type Gateway interface {
	// Login authenticates with email and password.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// FederatedLogin authenticates with a third-party identity token.
	FederatedLogin(ctx context.Context, identityToken string) (*LoginResult, error)

	// ForgotPassword starts the password-recovery flow for the given email.
	ForgotPassword(ctx context.Context, email string) error

	// VerifyReset proves the caller's identity for a pending password reset.
	VerifyReset(ctx context.Context, identityToken, email string) error

	// ResetPassword sets a new password for a verified recovery.
	ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) error

	// GetProfile fetches the operator profile by id.
	GetProfile(ctx context.Context, operatorID string) (*models.Operator, error)

	// UpdateProfile applies a partial or full profile edit and returns the
	// updated record.
	UpdateProfile(ctx context.Context, operatorID string, fields models.ProfileUpdate) (*models.Operator, error)

	// GetAllOrders fetches the full order collection for the operation.
	GetAllOrders(ctx context.Context) ([]models.Order, error)
}
