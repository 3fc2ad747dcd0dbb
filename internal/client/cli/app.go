package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/quickbites/quickbites-admin/internal/client/config"
	"github.com/quickbites/quickbites-admin/internal/client/gateway"
	"github.com/quickbites/quickbites-admin/internal/client/models"
	"github.com/quickbites/quickbites-admin/internal/client/repositories/session"
	"github.com/quickbites/quickbites-admin/internal/client/services"
	"github.com/quickbites/quickbites-admin/internal/client/store"
	"github.com/quickbites/quickbites-admin/internal/logging"
)

// App wires the admin client together: session store, gateway, credential
// flow, data provider, and the interactive REPL on top of them.
type App struct {
	config   *config.Config
	store    *store.Store
	flow     *services.CredentialFlow
	provider *services.SessionProvider
	guard    *Guard
	log      logging.Logger
	reader   *bufio.Reader

	// operator of the active session, nil when logged out
	operator *models.Operator
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.Default())

	db, err := session.Open(ctx, cfg.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("init session database: %w", err)
	}

	st := store.New(session.NewSQLiteRepository(db), log)
	gw := gateway.NewHTTPGateway(cfg.GatewayBaseURL, cfg.RequestTimeout)

	app := &App{
		config:   cfg,
		store:    st,
		flow:     services.NewCredentialFlow(gw, st, log),
		provider: services.NewSessionProvider(gw, st, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}
	app.guard = NewGuard(st, app.redirectToLogin)
	return app, nil
}

// Run restores a persisted session if one exists, hydrates it, and enters
// the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	if _, op, ok := a.store.Restore(ctx); ok {
		a.operator = op
		a.provider.Activate(ctx, op.ID)
		printlnFn(fmt.Sprintf("Welcome back, %s!", op.UserName))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.statusLine, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.operator != nil
}

func (a *App) statusLine() string {
	if a.operator != nil {
		return a.operator.UserName
	}
	if step := a.flow.Step(); step != services.StepCredentials {
		return "recovery:" + string(step)
	}
	return "logged out"
}

// redirectToLogin is the guard's redirect target: the CLI equivalent of a
// history-replacing redirect to the login page.
func (a *App) redirectToLogin() {
	a.operator = nil
	printlnFn("Your session has ended. Please log in.")
}

// printStatus surfaces the credential flow's current status message.
func (a *App) printStatus() {
	status := a.flow.Status()
	if status == nil {
		return
	}
	if status.Kind == services.StatusSuccess {
		printlnFn(status.Text)
		return
	}
	printlnFn("Error:", status.Text)
}
