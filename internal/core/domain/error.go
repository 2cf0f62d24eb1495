package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")
)

// OrderDomainError is the single error kind for business rule
// violations. The message is the contract: callers surface it verbatim.
type OrderDomainError struct {
	msg string
}

func NewOrderDomainError(format string, args ...any) *OrderDomainError {
	return &OrderDomainError{msg: fmt.Sprintf(format, args...)}
}

func (e *OrderDomainError) Error() string {
	return e.msg
}
