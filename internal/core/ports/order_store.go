// Package ports defines the contracts between the processing core and the
// collaborators it depends on: the order store, the classification service
// and the export sink. Adapters implement them; tests substitute doubles.
package ports

import (
	"context"

	"orderprocessing/internal/core/domain/model/order"
)

// OrderStore defines the persistence contract for orders.
//
// Implementations must wrap their failures in errs.StoreError so the
// processing pipeline can tell a storage failure from an unexpected one.
type OrderStore interface {
	// FetchByUser returns every order owned by the user, in a stable order.
	// An empty result is not an error.
	FetchByUser(ctx context.Context, userID int64) ([]*order.Order, error)

	// UpdateStatus persists the status and priority of a single order.
	// The boolean reports whether a row was changed.
	UpdateStatus(ctx context.Context, orderID int64, status order.Status, priority order.Priority) (bool, error)
}
