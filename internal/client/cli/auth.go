package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"

	"github.com/quickbites/quickbites-admin/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for email and password and attempts a direct login. Field
// validation is advisory: findings are shown but submission proceeds, since
// the gateway is the authority. On success the session is activated and
// hydration starts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	if msg := services.ValidateEmail(email); msg != "" {
		printlnFn("Note:", msg)
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)
	if msg := services.ValidatePassword(string(password)); msg != "" {
		printlnFn("Note:", msg)
	}

	if err := a.flow.SubmitCredentials(ctx, email, string(password)); err != nil {
		a.printStatus()
		return err
	}

	a.enterSession(ctx)
	return nil
}

// GoogleLogin reads a pasted federated identity token and attempts a
// federated login. The token's unverified claims are echoed so the operator
// can confirm the asserted identity; verification itself is the backend's job.
func (a *App) GoogleLogin(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Paste your Google identity token", os.Stdout)
	if err != nil {
		return err
	}

	if email := assertedEmail(token); email != "" {
		printlnFn("Signing in as", email)
	}

	if err := a.flow.SubmitFederatedCredential(ctx, token); err != nil {
		a.printStatus()
		return err
	}

	a.enterSession(ctx)
	return nil
}

// Logout clears the persisted session and returns to the logged-out prompt.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear session", "error", err)
		return err
	}
	a.operator = nil
	printlnFn("Logged out.")
	return nil
}

// enterSession installs the freshly stored session in the app and triggers
// the one-time data hydration.
func (a *App) enterSession(ctx context.Context) {
	op, ok := a.store.Operator(ctx)
	if !ok {
		return
	}
	a.operator = op
	a.provider.Activate(ctx, op.ID)
	printlnFn(fmt.Sprintf("Welcome, %s!", op.UserName))
}

// assertedEmail extracts the email claim from a federated identity token
// without verifying the signature. Used purely for display.
func assertedEmail(token string) string {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}
	email, _ := claims["email"].(string)
	return email
}
