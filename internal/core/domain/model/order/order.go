package order

import (
	"errors"
	"fmt"

	"orderprocessing/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a unit of work with a type, amount and flag, plus the status and
// priority the processing rules assign to it.
//
// Order follows these invariants:
//   - Amount is never negative
//   - Status and priority always hold defined values
//   - Can only be created through NewOrder
//
// Order is not safe for concurrent use. A processing pass owns the instance
// exclusively and mutates it in place, so the caller holding the pointer
// observes the final status and priority.
type Order struct {
	id       int64
	typ      Type
	amount   float64
	flag     bool
	status   Status
	priority Priority

	isConstructed bool
}

// NewOrder creates an order with status New and priority Low.
//
// Example:
//
//	o, err := order.NewOrder(1, order.TypeB, 80, false)
//	if err != nil {
//	    // amount was negative
//	}
func NewOrder(id int64, typ Type, amount float64, flag bool) (*Order, error) {
	o := &Order{
		id:            id,
		typ:           typ,
		flag:          flag,
		status:        New,
		priority:      Low,
		isConstructed: true,
	}

	if err := o.setAmount(amount); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Type() Type {
	return o.typ
}

func (o *Order) Amount() float64 {
	return o.amount
}

func (o *Order) Flag() bool {
	return o.flag
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Priority() Priority {
	return o.priority
}

// SetStatus records a processing outcome.
func (o *Order) SetStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// SetPriority records the derived priority.
func (o *Order) SetPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}

func (o *Order) setAmount(amount float64) error {
	if amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("amount is invalid", fmt.Errorf("%v is negative", amount))
	}
	o.amount = amount
	return nil
}
