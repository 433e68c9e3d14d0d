package queries

import (
	"errors"
	"fmt"

	"orderprocessing/internal/core/domain/model/order"
	"orderprocessing/internal/pkg/errs"
	"orderprocessing/internal/pkg/guard"
)

var (
	ErrGetUserOrdersQueryIsNotConstructed = errors.New(
		"GetUserOrdersQuery must be created via NewGetUserOrdersQuery constructor",
	)
)

// GetUserOrdersQuery retrieves every order of a user with its last recorded
// status and priority.
//
// Example:
//
//	query, err := NewGetUserOrdersQuery(42)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetUserOrdersQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserOrdersQuery creates the query for a positive user id.
func NewGetUserOrdersQuery(userID int64) (GetUserOrdersQuery, error) {
	if userID <= 0 {
		return GetUserOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"user id is invalid",
			fmt.Errorf("%d is not greater than 0", userID),
		)
	}

	return GetUserOrdersQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUserOrdersQueryIsNotConstructed)
}

func (q GetUserOrdersQuery) UserID() int64 {
	return q.userID
}

// GetUserOrdersQueryResponse is the read model of one order.
type GetUserOrdersQueryResponse struct {
	ID       int64
	Type     order.Type
	Amount   float64
	Flag     bool
	Status   order.Status
	Priority order.Priority
}
