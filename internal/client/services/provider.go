package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/quickbites/quickbites-admin/internal/client/gateway"
	"github.com/quickbites/quickbites-admin/internal/client/models"
	"github.com/quickbites/quickbites-admin/internal/client/store"
	"github.com/quickbites/quickbites-admin/internal/logging"
)

// SessionProvider hydrates and serves operator-scoped data for the lifetime
// of an authenticated session: the operator profile, the order snapshot, and
// the derived feedback subset.
//
// Hydration runs once per activation trigger and consists of two independent
// fetches: orders (always re-run) and profile (gated so it is fetched at most
// once per session). Overlapping activation triggers, e.g. a login racing a
// restored-session startup, are collapsed into a single hydration pass;
// whichever pass completes last owns the snapshot.
//
// Fetch failures are logged and never fatal: the previous snapshot stays in
// place and a later trigger may retry the profile fetch.
type SessionProvider struct {
	gw  gateway.Gateway
	st  *store.Store
	log logging.Logger

	sf singleflight.Group

	mu             sync.Mutex
	operatorID     string
	profile        *models.Operator
	orders         []models.Order
	feedback       []models.Order
	profileFetched bool
}

func NewSessionProvider(gw gateway.Gateway, st *store.Store, log logging.Logger) *SessionProvider {
	return &SessionProvider{gw: gw, st: st, log: log}
}

// Activate establishes the session identity and triggers a hydration pass.
// Called on login success and on session restore at process start. Switching
// to a different operator discards all state of the previous session,
// including the fetch-once gate.
func (p *SessionProvider) Activate(ctx context.Context, operatorID string) {
	p.mu.Lock()
	if p.operatorID != operatorID {
		p.operatorID = operatorID
		p.profile = nil
		p.orders = nil
		p.feedback = nil
		p.profileFetched = false
	}
	p.mu.Unlock()

	passID := uuid.NewString()
	_, _, _ = p.sf.Do("hydrate", func() (any, error) {
		log := p.log.With("hydration", passID)
		if err := p.FetchOrders(ctx); err != nil {
			log.Error(ctx, "order hydration failed", "error", err)
		}
		if err := p.FetchProfile(ctx); err != nil {
			log.Error(ctx, "profile hydration failed", "error", err)
		}
		return nil, nil
	})
}

// FetchOrders requests the full order collection and replaces the snapshot
// wholesale, recomputing the feedback subset. On failure the previous
// snapshot is left untouched.
func (p *SessionProvider) FetchOrders(ctx context.Context) error {
	orders, err := p.gw.GetAllOrders(ctx)
	if err != nil {
		p.log.Error(ctx, "failed to fetch orders", "error", err)
		return err
	}

	p.mu.Lock()
	p.orders = orders
	p.feedback = models.WithFeedback(orders)
	p.mu.Unlock()
	return nil
}

// FetchProfile requests the operator profile. It is a no-op when the profile
// was already fetched for this session or no operator identity is known. On
// success the profile is cached, written through to durable storage merged
// with the operator id, and further fetches are suppressed. On failure
// nothing changes, so a later trigger retries.
func (p *SessionProvider) FetchProfile(ctx context.Context) error {
	p.mu.Lock()
	id := p.operatorID
	fetched := p.profileFetched
	p.mu.Unlock()

	if id == "" || fetched {
		return nil
	}

	op, err := p.gw.GetProfile(ctx, id)
	if err != nil {
		p.log.Error(ctx, "failed to fetch profile", "error", err, "operatorId", id)
		return err
	}

	p.commitProfile(ctx, id, op)
	return nil
}

// UpdateProfile sends a profile edit for the current operator. On success the
// returned record replaces both the in-memory and the durable copy. On
// failure neither changes and the error carries the gateway message; use
// gateway.UserMessage to surface it.
func (p *SessionProvider) UpdateProfile(ctx context.Context, fields models.ProfileUpdate) (*models.Operator, error) {
	p.mu.Lock()
	id := p.operatorID
	p.mu.Unlock()

	if id == "" {
		return nil, fmt.Errorf("update profile: no operator identity")
	}

	op, err := p.gw.UpdateProfile(ctx, id, fields)
	if err != nil {
		p.log.Error(ctx, "failed to update profile", "error", err, "operatorId", id)
		return nil, err
	}

	p.commitProfile(ctx, id, op)
	return op, nil
}

// commitProfile installs a gateway-acknowledged profile: in-memory copy,
// durable write-through merged with the operator id, fetch-once gate set.
func (p *SessionProvider) commitProfile(ctx context.Context, id string, op *models.Operator) {
	op.ID = id

	p.mu.Lock()
	p.profile = op
	p.profileFetched = true
	p.mu.Unlock()

	if err := p.st.SaveOperator(ctx, *op); err != nil {
		p.log.Error(ctx, "failed to persist operator record", "error", err, "operatorId", id)
	}
}

// Profile returns the cached operator profile, or nil before hydration.
func (p *SessionProvider) Profile() *models.Operator {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.profile
}

// Orders returns the current order snapshot.
func (p *SessionProvider) Orders() []models.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.orders
}

// Feedback returns the orders carrying non-empty customer feedback.
func (p *SessionProvider) Feedback() []models.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.feedback
}
