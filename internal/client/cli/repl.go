package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. App satisfies it;
// tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	GoogleLogin(ctx context.Context) error
	Forgot(ctx context.Context) error
	Verify(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	CancelRecovery(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Orders(ctx context.Context) error
	Feedback(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL is the interactive loop of the admin client. It reads a line,
// takes the first token as the command, and dispatches to a. Unknown commands
// are reported. The loop exits on EOF or "exit"/"quit".
//
// Logged out, the commands mirror the login page: "login", "google" (paste a
// federated identity token), and the recovery steps "forgot" -> "verify" ->
// "reset", with "cancel" returning to login from any of them. Logged in, the
// commands mirror the dashboard pages: "profile", "editprofile", "orders",
// "feedback", "logout".
//
// Errors from command handlers are not propagated; handlers surface their own
// messages so the loop stays interactive after every failure.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qb> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, editprofile, orders, feedback, logout, exit")
			} else {
				printlnFn("Available commands: login, google, forgot, verify, reset, cancel, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.GoogleLogin(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "verify":
			_ = a.Verify(ctx)

		case "reset":
			_ = a.ResetPassword(ctx)

		case "cancel":
			_ = a.CancelRecovery(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "orders":
			_ = a.Orders(ctx)

		case "feedback":
			_ = a.Feedback(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
