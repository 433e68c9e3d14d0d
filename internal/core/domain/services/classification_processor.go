package services

import (
	"context"
	"errors"

	"orderprocessing/internal/core/domain/model/order"
	"orderprocessing/internal/core/ports"
	"orderprocessing/internal/pkg/errs"
)

const (
	// MinProcessedScore is the lowest classification score that can mark an order Processed.
	MinProcessedScore = 50

	// MaxProcessedAmount bounds (exclusively) the amount of an order that can be Processed.
	MaxProcessedAmount = 100
)

// ClassificationProcessor asks the classification service about type B orders
// and derives their status from the verdict.
type ClassificationProcessor struct {
	classifier ports.Classifier
}

func NewClassificationProcessor(classifier ports.Classifier) ClassificationProcessor {
	return ClassificationProcessor{classifier: classifier}
}

// Process evaluates the verdict in order, first match wins:
//  1. communication failure: APIFailure
//  2. verdict not success: APIError
//  3. score >= 50 and amount < 100: Processed
//  4. score < 50 or flag set: Pending
//  5. otherwise: Error
//
// Rules 3 and 4 are deliberately asymmetric: a high score on a flagged order
// of 100 or more lands on Pending, the same score without the flag on Error.
// Errors other than communication failures are returned unchanged.
func (p ClassificationProcessor) Process(ctx context.Context, o *order.Order) error {
	if o.Type() != order.TypeB {
		return nil
	}

	result, err := p.classifier.Classify(ctx, o.ID())
	if err != nil {
		if errors.Is(err, errs.ErrServiceCommunication) {
			return o.SetStatus(order.APIFailure)
		}
		return err
	}

	if !result.IsSuccess() {
		return o.SetStatus(order.APIError)
	}

	switch {
	case result.Score() >= MinProcessedScore && o.Amount() < MaxProcessedAmount:
		return o.SetStatus(order.Processed)
	case result.Score() < MinProcessedScore || o.Flag():
		return o.SetStatus(order.Pending)
	default:
		return o.SetStatus(order.Error)
	}
}
