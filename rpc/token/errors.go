package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/stake-token-contract/contracts/token/tokenconst"
)

// Errors corresponding to the fault categories of the contract.
var (
	ErrAuthorization     = errors.New("authorization failed")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrCapacity          = errors.New("capacity exceeded")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotMatured        = errors.New("refund not matured")
)

var faultCategories = []struct {
	category string
	err      error
}{
	{tokenconst.AuthorizationError, ErrAuthorization},
	{tokenconst.NotFoundError, ErrNotFound},
	{tokenconst.AlreadyExistsError, ErrAlreadyExists},
	{tokenconst.ValidationError, ErrValidation},
	{tokenconst.CapacityError, ErrCapacity},
	{tokenconst.InsufficientFundsError, ErrInsufficientFunds},
	{tokenconst.NotMaturedError, ErrNotMatured},
}

// ClassifyFault wraps an error of the contract invocation with one of the
// package errors according to the fault category found in its message, so it
// can be checked with errors.Is. Other errors are returned unchanged.
func ClassifyFault(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	for _, c := range faultCategories {
		if strings.Contains(msg, c.category+":") {
			return fmt.Errorf("%w: %w", c.err, err)
		}
	}

	return err
}
