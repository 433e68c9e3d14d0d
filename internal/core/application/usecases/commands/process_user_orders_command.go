package commands

import (
	"errors"
	"fmt"

	"orderprocessing/internal/pkg/errs"
	"orderprocessing/internal/pkg/guard"
)

var (
	ErrProcessUserOrdersCommandIsNotConstructed = errors.New(
		"ProcessUserOrdersCommand must be created via NewProcessUserOrdersCommand constructor",
	)
)

// ProcessUserOrdersCommand requests one processing pass over every order of a user.
//
// Example:
//
//	cmd, err := NewProcessUserOrdersCommand(42)
//	if err != nil {
//	    return err
//	}
//	ok := handler.Handle(ctx, cmd)
type ProcessUserOrdersCommand struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewProcessUserOrdersCommand creates the command for a positive user id.
func NewProcessUserOrdersCommand(userID int64) (ProcessUserOrdersCommand, error) {
	if userID <= 0 {
		return ProcessUserOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"user id is invalid",
			fmt.Errorf("%d is not greater than 0", userID),
		)
	}

	return ProcessUserOrdersCommand{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessUserOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessUserOrdersCommandIsNotConstructed)
}

func (c ProcessUserOrdersCommand) UserID() int64 {
	return c.userID
}
