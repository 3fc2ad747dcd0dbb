// Package cli provides the interactive QuickBites admin terminal client.
//
// It wires configuration, the local session store, the backend gateway, the
// credential flow, and the session data provider into an interactive REPL.
// Typical flow: restore a persisted session if one exists (hydrating operator
// data once), otherwise prompt for a direct or federated login, then execute
// dashboard commands.
//
// Key features:
//   - Login with email/password or a federated identity token
//   - Three-step password recovery (forgot -> verify -> reset)
//   - Profile view/edit with write-through persistence
//   - Order and feedback listings backed by the session snapshot
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// Commands that require authentication are gated by Guard, the CLI
// counterpart of a login redirect.
package cli
