package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/quickbites/quickbites-admin/internal/client/gateway"
	"github.com/quickbites/quickbites-admin/internal/client/models"
)

// Profile prints the hydrated operator profile. Guarded: requires an
// authenticated session.
func (a *App) Profile(ctx context.Context) error {
	return a.guard.Wrap(a.showProfile)(ctx)
}

func (a *App) showProfile(ctx context.Context) error {
	// Covers the restore path where hydration failed earlier: the fetch-once
	// gate is only set by a successful fetch, so this retries when needed.
	if err := a.provider.FetchProfile(ctx); err != nil {
		printlnFn("Could not load profile. Please try again.")
		return err
	}

	op := a.provider.Profile()
	if op == nil {
		printlnFn("Profile not loaded yet.")
		return nil
	}

	printlnFn("Name:  ", op.UserName)
	printlnFn("Email: ", op.Email)
	if op.Phone != "" {
		printlnFn("Phone: ", op.Phone)
	}
	if op.Outlet != "" {
		printlnFn("Outlet:", op.Outlet)
	}
	return nil
}

// EditProfile prompts for new profile values (empty input keeps the current
// value) and submits the update. Guarded.
func (a *App) EditProfile(ctx context.Context) error {
	return a.guard.Wrap(a.editProfile)(ctx)
}

func (a *App) editProfile(ctx context.Context) error {
	var fields models.ProfileUpdate

	for _, p := range []struct {
		prompt string
		target *string
	}{
		{"New name (leave empty to keep)", &fields.UserName},
		{"New email (leave empty to keep)", &fields.Email},
		{"New phone (leave empty to keep)", &fields.Phone},
		{"New outlet (leave empty to keep)", &fields.Outlet},
	} {
		value, err := getSimpleText(a.reader, p.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*p.target = value
	}

	op, err := a.provider.UpdateProfile(ctx, fields)
	if err != nil {
		printlnFn("Error:", gateway.UserMessage(err, "Error updating profile"))
		return err
	}

	a.operator = op
	printlnFn(fmt.Sprintf("Profile updated, %s.", op.UserName))
	return nil
}
