package cli

import "context"

// TokenSource is the read surface the guard needs from the session store.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Guard protects actions that require an authenticated session. It checks the
// session store once, synchronously, at invocation: without a token the
// redirect callback runs and the wrapped action never does, so there is no
// way "back" into the protected action.
type Guard struct {
	tokens   TokenSource
	redirect func()
}

func NewGuard(tokens TokenSource, redirect func()) *Guard {
	return &Guard{tokens: tokens, redirect: redirect}
}

// Wrap returns next gated behind the session check.
func (g *Guard) Wrap(next func(ctx context.Context) error) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if g.tokens.Token(ctx) == "" {
			g.redirect()
			return nil
		}
		return next(ctx)
	}
}
