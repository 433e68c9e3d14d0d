package order

import (
	"fmt"

	"orderprocessing/internal/pkg/errs"
)

// Priority tags an order for downstream handling.
type Priority string

const (
	Low  Priority = "low"
	High Priority = "high"
)

// Validate checks that the priority is Low or High.
func (p Priority) Validate() error {
	if p != Low && p != High {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid", fmt.Errorf("%q is not a valid priority", string(p)))
	}
	return nil
}

func (p Priority) String() string {
	return string(p)
}
