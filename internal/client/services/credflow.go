// Package services contains the application services of the QuickBites admin
// client: the credential flow state machine driving login and password
// recovery, and the session data provider that hydrates operator data once a
// session is established.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/quickbites/quickbites-admin/internal/client/gateway"
	"github.com/quickbites/quickbites-admin/internal/client/store"
	"github.com/quickbites/quickbites-admin/internal/logging"
)

// Step identifies the active step of the credential flow.
type Step string

const (
	// StepCredentials is the initial step: direct or federated login, or the
	// start of password recovery.
	StepCredentials Step = "credentials"

	// StepVerifyIdentity awaits the federated identity assertion that proves
	// the recovering operator owns the account.
	StepVerifyIdentity Step = "verify_identity"

	// StepSetPassword collects and submits the replacement password.
	StepSetPassword Step = "set_password"
)

// StatusKind distinguishes informational from failure status messages.
type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status is the single user-facing message surfaced by the flow.
type Status struct {
	Text string
	Kind StatusKind
}

// Fallback messages used when the gateway provides no detail of its own.
const (
	msgFillBothCredentials = "Please enter both email and password"
	msgInvalidCredentials  = "Invalid credentials. Please try again."
	msgFederatedFailed     = "Google login failed. Please try again."
	msgRecoveryStarted     = "Please verify your identity with Google to reset your password."
	msgOperatorNotFound    = "Admin not found with this email address."
	msgIdentityVerified    = "Identity verified! Please enter your new password."
	msgVerificationFailed  = "Google verification failed. Please try again."
	msgFillBothPasswords   = "Please fill in both password fields"
	msgPasswordsDontMatch  = "Passwords do not match"
	msgPasswordTooShort    = "Password must be at least 8 characters long"
	msgResetDone           = "Password reset successful! You can now login with your new password."
	msgResetFailed         = "Failed to reset password"
)

// resetReturnDelay is how long the success message of a completed password
// reset stays visible before the flow returns to the credentials step.
const resetReturnDelay = 2 * time.Second

// ErrInvalidStep reports an operation invoked from a step it is not valid in.
type ErrInvalidStep struct {
	Op   string
	Step Step
}

func (e *ErrInvalidStep) Error() string {
	return fmt.Sprintf("%s: not valid in step %q", e.Op, e.Step)
}

// CredentialFlow is the login and password-recovery state machine.
//
// Steps advance only on a successful gateway response for the current step:
//
//	StepCredentials -> StepVerifyIdentity -> StepSetPassword -> (delay) -> StepCredentials
//
// CancelRecovery returns to StepCredentials from anywhere. A successful login
// (direct or federated) writes the authenticated session into the store and
// reports success to the caller; navigation is the caller's concern.
//
// Methods are safe for concurrent use; the delayed return to the credentials
// step after a successful reset fires on a timer goroutine.
type CredentialFlow struct {
	gw  gateway.Gateway
	st  *store.Store
	log logging.Logger

	mu         sync.Mutex
	step       Step
	email      string
	status     *Status
	resetTimer *time.Timer

	// resetDelay is overridden in tests.
	resetDelay time.Duration
}

func NewCredentialFlow(gw gateway.Gateway, st *store.Store, log logging.Logger) *CredentialFlow {
	return &CredentialFlow{
		gw:         gw,
		st:         st,
		log:        log,
		step:       StepCredentials,
		resetDelay: resetReturnDelay,
	}
}

// Step returns the currently active step.
func (f *CredentialFlow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Status returns the current user-facing status message, or nil.
func (f *CredentialFlow) Status() *Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Email returns the email the recovery flow is operating on.
func (f *CredentialFlow) Email() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.email
}

func (f *CredentialFlow) setStatus(kind StatusKind, text string) {
	f.mu.Lock()
	f.status = &Status{Text: text, Kind: kind}
	f.mu.Unlock()
}

// SubmitCredentials attempts a direct email/password login. On success the
// authenticated session is persisted and nil is returned; the caller proceeds
// to the authenticated area. On failure the gateway's message (or a generic
// invalid-credentials fallback) becomes the status and the step is unchanged.
// The operation may be retried any number of times.
func (f *CredentialFlow) SubmitCredentials(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		f.setStatus(StatusError, msgFillBothCredentials)
		return fmt.Errorf("login: %s", msgFillBothCredentials)
	}

	res, err := f.gw.Login(ctx, email, password)
	if err != nil {
		f.setStatus(StatusError, gateway.UserMessage(err, msgInvalidCredentials))
		return err
	}

	return f.establishSession(ctx, res)
}

// SubmitFederatedCredential attempts a login with a third-party identity
// token. Same success contract as SubmitCredentials; failures always surface
// the generic federated message regardless of gateway detail.
func (f *CredentialFlow) SubmitFederatedCredential(ctx context.Context, identityToken string) error {
	if identityToken == "" {
		f.setStatus(StatusError, msgFederatedFailed)
		return fmt.Errorf("federated login: empty identity token")
	}

	res, err := f.gw.FederatedLogin(ctx, identityToken)
	if err != nil {
		f.setStatus(StatusError, msgFederatedFailed)
		return err
	}

	return f.establishSession(ctx, res)
}

func (f *CredentialFlow) establishSession(ctx context.Context, res *gateway.LoginResult) error {
	if err := f.st.SaveSession(ctx, res.Token, res.Operator); err != nil {
		f.log.Error(ctx, "failed to persist session", "error", err)
		f.setStatus(StatusError, msgInvalidCredentials)
		return err
	}
	f.mu.Lock()
	f.status = nil
	f.mu.Unlock()
	return nil
}

// RequestRecovery starts password recovery for email. Valid only from
// StepCredentials. On gateway success the flow advances to StepVerifyIdentity
// with an informational status; on failure it stays put and surfaces the
// gateway's message.
func (f *CredentialFlow) RequestRecovery(ctx context.Context, email string) error {
	if step := f.Step(); step != StepCredentials {
		return &ErrInvalidStep{Op: "request recovery", Step: step}
	}
	if email == "" {
		f.setStatus(StatusError, msgEmailRequired)
		return fmt.Errorf("request recovery: %s", msgEmailRequired)
	}

	if err := f.gw.ForgotPassword(ctx, email); err != nil {
		f.setStatus(StatusError, gateway.UserMessage(err, msgOperatorNotFound))
		return err
	}

	f.mu.Lock()
	f.email = email
	f.step = StepVerifyIdentity
	f.status = &Status{Text: msgRecoveryStarted, Kind: StatusSuccess}
	f.mu.Unlock()
	return nil
}

// VerifyIdentity submits the federated identity assertion for the email under
// recovery. Valid only from StepVerifyIdentity. Failure keeps the step so the
// attempt can be retried without restarting the flow.
func (f *CredentialFlow) VerifyIdentity(ctx context.Context, identityToken string) error {
	if step := f.Step(); step != StepVerifyIdentity {
		return &ErrInvalidStep{Op: "verify identity", Step: step}
	}

	if err := f.gw.VerifyReset(ctx, identityToken, f.Email()); err != nil {
		f.setStatus(StatusError, msgVerificationFailed)
		return err
	}

	f.mu.Lock()
	f.step = StepSetPassword
	f.status = &Status{Text: msgIdentityVerified, Kind: StatusSuccess}
	f.mu.Unlock()
	return nil
}

// SubmitNewPassword submits the replacement password. Valid only from
// StepSetPassword. Local preconditions are checked in order before any
// network call: both fields present, fields equal, length at least
// MinPasswordLength. On gateway success a success status is shown and the
// flow returns to a cleared StepCredentials after a fixed delay.
func (f *CredentialFlow) SubmitNewPassword(ctx context.Context, newPassword, confirmPassword string) error {
	if step := f.Step(); step != StepSetPassword {
		return &ErrInvalidStep{Op: "submit new password", Step: step}
	}

	var localErr string
	switch {
	case newPassword == "" || confirmPassword == "":
		localErr = msgFillBothPasswords
	case newPassword != confirmPassword:
		localErr = msgPasswordsDontMatch
	case len(newPassword) < MinPasswordLength:
		localErr = msgPasswordTooShort
	}
	if localErr != "" {
		f.setStatus(StatusError, localErr)
		return fmt.Errorf("submit new password: %s", localErr)
	}

	if err := f.gw.ResetPassword(ctx, f.Email(), newPassword, confirmPassword); err != nil {
		f.setStatus(StatusError, gateway.UserMessage(err, msgResetFailed))
		return err
	}

	f.mu.Lock()
	f.status = &Status{Text: msgResetDone, Kind: StatusSuccess}
	if f.resetTimer != nil {
		f.resetTimer.Stop()
	}
	f.resetTimer = time.AfterFunc(f.resetDelay, func() { f.CancelRecovery() })
	f.mu.Unlock()
	return nil
}

// CancelRecovery abandons the recovery flow: every recovery field is cleared
// and the step returns to StepCredentials. Valid from any step; idempotent.
func (f *CredentialFlow) CancelRecovery() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
	f.step = StepCredentials
	f.email = ""
	f.status = nil
}
