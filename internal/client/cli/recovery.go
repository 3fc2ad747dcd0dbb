package cli

import (
	"context"
	"os"
)

// Forgot starts password recovery: prompts for the account email and, on
// gateway acknowledgment, moves the flow to the identity-verification step.
func (a *App) Forgot(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter your admin email", os.Stdout)
	if err != nil {
		return err
	}

	err = a.flow.RequestRecovery(ctx, email)
	a.printStatus()
	return err
}

// Verify submits the federated identity assertion for the pending recovery.
// A failed attempt can simply be retried; the flow stays on this step.
func (a *App) Verify(ctx context.Context) error {
	token, err := getSimpleText(a.reader, "Paste your Google identity token to verify", os.Stdout)
	if err != nil {
		return err
	}

	err = a.flow.VerifyIdentity(ctx, token)
	a.printStatus()
	return err
}

// ResetPassword prompts for the new password twice and submits it. After a
// successful reset the flow returns to the login step by itself.
func (a *App) ResetPassword(ctx context.Context) error {
	newPassword, err := getPassword("Enter new password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(newPassword)

	confirm, err := getPassword("Confirm new password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(confirm)

	err = a.flow.SubmitNewPassword(ctx, string(newPassword), string(confirm))
	a.printStatus()
	return err
}

// CancelRecovery abandons the recovery flow and returns to the login step.
func (a *App) CancelRecovery(ctx context.Context) error {
	a.flow.CancelRecovery()
	printlnFn("Back to login.")
	return nil
}
