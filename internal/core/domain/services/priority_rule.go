package services

import "orderprocessing/internal/core/domain/model/order"

// HighPriorityThreshold is the amount above which an order is High priority.
const HighPriorityThreshold = 200

// PriorityRule derives an order's priority from its amount alone.
type PriorityRule struct{}

func NewPriorityRule() PriorityRule {
	return PriorityRule{}
}

// Priority returns High for amounts strictly above the threshold, Low otherwise.
func (PriorityRule) Priority(amount float64) order.Priority {
	if amount > HighPriorityThreshold {
		return order.High
	}
	return order.Low
}

// Apply records the derived priority on the order, whatever its type or status.
func (r PriorityRule) Apply(o *order.Order) error {
	return o.SetPriority(r.Priority(o.Amount()))
}
