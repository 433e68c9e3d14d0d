package services

import (
	"context"

	"orderprocessing/internal/core/domain/model/order"
)

// Processor applies a type-specific status rule to an order.
//
// Process must be a no-op for orders of other types. Collaborator failures the
// rule anticipates are turned into a status; a returned error means something
// unexpected happened and the caller should abort.
type Processor interface {
	Process(ctx context.Context, o *order.Order) error
}
