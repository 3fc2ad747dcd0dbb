package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quickbites/quickbites-admin/internal/client/gateway"
	"github.com/quickbites/quickbites-admin/internal/client/models"
)

func TestFetchProfile_FetchOnce(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{ProfileRet: &models.Operator{UserName: "Ann"}}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())
	p.operatorID = "42" // identity known, gate initially unset

	require.NoError(t, p.FetchProfile(ctx))
	require.Equal(t, 1, gw.ProfileCalls)

	// second call is suppressed by the fetch-once gate
	require.NoError(t, p.FetchProfile(ctx))
	require.Equal(t, 1, gw.ProfileCalls)
	require.Equal(t, "Ann", p.Profile().UserName)
}

func TestFetchProfile_NoIdentityIsNoop(t *testing.T) {
	gw := &fakeGateway{}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())

	require.NoError(t, p.FetchProfile(context.Background()))
	require.Zero(t, gw.ProfileCalls)
}

func TestFetchProfile_FailureLeavesGateUnset(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{ProfileErr: errors.New("timeout")}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())
	p.Activate(ctx, "42")

	require.Error(t, p.FetchProfile(ctx))
	require.Nil(t, p.Profile())

	// the gate stays open, so a later trigger retries
	gw.ProfileErr = nil
	gw.ProfileRet = &models.Operator{UserName: "Ann"}
	require.NoError(t, p.FetchProfile(ctx))
	require.Equal(t, "Ann", p.Profile().UserName)
}

func TestFetchProfile_WriteThroughMergesID(t *testing.T) {
	ctx := context.Background()
	// gateway response without an id field
	gw := &fakeGateway{ProfileRet: &models.Operator{UserName: "Ann", Email: "ann@x.com"}}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())
	p.Activate(ctx, "42")
	require.NoError(t, p.FetchProfile(ctx))

	require.Equal(t, "42", p.Profile().ID)

	stored, ok := st.Operator(ctx)
	require.True(t, ok)
	require.Equal(t, "42", stored.ID)
	require.Equal(t, "Ann", stored.UserName)
}

func TestFetchOrders_ReplacesSnapshotWholesale(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{OrdersRet: []models.Order{
		{ID: "o1", Feedback: "nice"},
		{ID: "o2"},
	}}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())

	require.NoError(t, p.FetchOrders(ctx))
	require.Len(t, p.Orders(), 2)
	require.Len(t, p.Feedback(), 1)
	require.Equal(t, "o1", p.Feedback()[0].ID)

	// a refresh replaces everything, including the derived subset
	gw.OrdersRet = []models.Order{{ID: "o3"}}
	require.NoError(t, p.FetchOrders(ctx))
	require.Len(t, p.Orders(), 1)
	require.Empty(t, p.Feedback())
}

func TestFetchOrders_FailureKeepsPreviousSnapshot(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{OrdersRet: []models.Order{{ID: "o1", Feedback: "ok"}}}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())
	require.NoError(t, p.FetchOrders(ctx))

	gw.OrdersErr = errors.New("down")
	require.Error(t, p.FetchOrders(ctx))
	require.Len(t, p.Orders(), 1)
	require.Len(t, p.Feedback(), 1)
}

func TestActivate_HydratesOrdersAndProfile(t *testing.T) {
	gw := &fakeGateway{
		ProfileRet: &models.Operator{UserName: "Ann"},
		OrdersRet:  []models.Order{{ID: "o1"}},
	}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())

	p.Activate(context.Background(), "42")

	require.Equal(t, 1, gw.OrdersCalls)
	require.Equal(t, 1, gw.ProfileCalls)
	require.Len(t, p.Orders(), 1)
	require.Equal(t, "Ann", p.Profile().UserName)

	// re-activation for the same operator refreshes orders but not the profile
	p.Activate(context.Background(), "42")
	require.Equal(t, 2, gw.OrdersCalls)
	require.Equal(t, 1, gw.ProfileCalls)
}

func TestActivate_SwitchingOperatorResetsState(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{ProfileRet: &models.Operator{UserName: "Ann"}}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())

	p.Activate(ctx, "42")
	require.Equal(t, 1, gw.ProfileCalls)

	gw.ProfileRet = &models.Operator{UserName: "Bob"}
	p.Activate(ctx, "43")
	require.Equal(t, 2, gw.ProfileCalls)
	require.Equal(t, "Bob", p.Profile().UserName)
	require.Equal(t, "43", p.Profile().ID)
}

func TestUpdateProfile_SuccessUpdatesMemoryAndDurable(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{
		ProfileRet: &models.Operator{UserName: "Ann"},
		UpdateRet:  &models.Operator{UserName: "Bea", Email: "bea@x.com"},
	}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())
	p.Activate(ctx, "42")

	op, err := p.UpdateProfile(ctx, models.ProfileUpdate{UserName: "Bea"})
	require.NoError(t, err)
	require.Equal(t, "Bea", op.UserName)
	require.Equal(t, "42", gw.LastUpdateID)
	require.Equal(t, "Bea", p.Profile().UserName)

	stored, ok := st.Operator(ctx)
	require.True(t, ok)
	require.Equal(t, "Bea", stored.UserName)
	require.Equal(t, "42", stored.ID)
}

func TestUpdateProfile_FailureChangesNothing(t *testing.T) {
	ctx := context.Background()
	gw := &fakeGateway{ProfileRet: &models.Operator{UserName: "Ann"}}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())
	p.Activate(ctx, "42")
	require.NoError(t, p.FetchProfile(ctx))

	gw.UpdateErr = &gateway.RejectedError{Op: "update profile", Message: "Email already in use"}
	_, err := p.UpdateProfile(ctx, models.ProfileUpdate{Email: "taken@x.com"})
	require.Error(t, err)
	require.Equal(t, "Email already in use", gateway.UserMessage(err, "Error updating profile"))

	require.Equal(t, "Ann", p.Profile().UserName)
	stored, ok := st.Operator(ctx)
	require.True(t, ok)
	require.Equal(t, "Ann", stored.UserName)
}

func TestUpdateProfile_NoIdentity(t *testing.T) {
	gw := &fakeGateway{}
	st, _ := setupStore(t)
	p := NewSessionProvider(gw, st, discardLogger())

	_, err := p.UpdateProfile(context.Background(), models.ProfileUpdate{UserName: "x"})
	require.Error(t, err)
	require.Zero(t, gw.UpdateCalls)
}
