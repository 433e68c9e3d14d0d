package ports

import (
	"context"

	"orderprocessing/internal/core/domain/model/classification"
)

// Classifier is the remote classification service consulted for type B orders.
//
// Communication failures must be reported as errs.ServiceCommunicationError.
// A verdict of failure is not an error: it is returned as a Result.
type Classifier interface {
	Classify(ctx context.Context, orderID int64) (classification.Result, error)
}
