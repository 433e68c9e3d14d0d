package services

import (
	"context"

	"orderprocessing/internal/core/domain/model/order"
)

// FlagProcessor marks type C orders Completed when flagged, InProgress otherwise.
type FlagProcessor struct{}

func NewFlagProcessor() FlagProcessor {
	return FlagProcessor{}
}

func (FlagProcessor) Process(_ context.Context, o *order.Order) error {
	if o.Type() != order.TypeC {
		return nil
	}

	if o.Flag() {
		return o.SetStatus(order.Completed)
	}

	return o.SetStatus(order.InProgress)
}
