package cli

import (
	"context"
	"fmt"

	"github.com/quickbites/quickbites-admin/internal/client/models"
)

// Orders refreshes and prints the order snapshot. Guarded.
func (a *App) Orders(ctx context.Context) error {
	return a.guard.Wrap(func(ctx context.Context) error {
		if err := a.provider.FetchOrders(ctx); err != nil {
			printlnFn("Could not refresh orders; showing the last known list.")
		}
		printOrders(a.provider.Orders(), false)
		return nil
	})(ctx)
}

// Feedback prints the orders carrying customer feedback. Guarded. The subset
// is derived from the current snapshot; no extra fetch happens here.
func (a *App) Feedback(ctx context.Context) error {
	return a.guard.Wrap(func(ctx context.Context) error {
		printOrders(a.provider.Feedback(), true)
		return nil
	})(ctx)
}

func printOrders(orders []models.Order, withFeedback bool) {
	if len(orders) == 0 {
		printlnFn("No orders to show.")
		return
	}
	for _, o := range orders {
		line := fmt.Sprintf("%s  %-20s %8.2f  %s", o.ID, o.CustomerName, o.Amount, o.Status)
		if withFeedback {
			line += fmt.Sprintf("  %q", o.Feedback)
		}
		printlnFn(line)
	}
}
