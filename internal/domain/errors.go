package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation        ErrorKind = "VALIDATION"
	KindNotFound          ErrorKind = "NOT_FOUND"
	KindInsufficientStock ErrorKind = "INSUFFICIENT_STOCK"
	KindEmptyOperation    ErrorKind = "EMPTY_OPERATION"
)

// Error is a rejected request. Ref names the offending field, record id or item.
type Error struct {
	Kind    ErrorKind
	Message string
	Ref     string
}

func (e *Error) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Ref)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Rejection marks domain errors as refused requests rather than failures.
func (e *Error) Rejection() bool { return true }

// Is matches on kind. A target carrying a message also has to match the message,
// which lets ErrInvalidCustomer stand apart from other NOT_FOUND errors.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

var (
	ErrValidation        = &Error{Kind: KindValidation}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrInsufficientStock = &Error{Kind: KindInsufficientStock}
	ErrEmptyOperation    = &Error{Kind: KindEmptyOperation}

	ErrInvalidCustomer = &Error{Kind: KindNotFound, Message: "invalid customer"}
)

func NewValidationError(ref, msg string) error {
	return &Error{Kind: KindValidation, Message: msg, Ref: ref}
}

// NewNotFoundError reports a missing record, e.g. NewNotFoundError("rental", id).
func NewNotFoundError(entity, id string) error {
	return &Error{Kind: KindNotFound, Message: entity + " not found", Ref: id}
}

func NewInvalidCustomerError(customerID string) error {
	return &Error{Kind: KindNotFound, Message: ErrInvalidCustomer.Message, Ref: customerID}
}

func NewInsufficientStockError(itemName string, available int) error {
	return &Error{
		Kind:    KindInsufficientStock,
		Message: fmt.Sprintf("insufficient stock for item: %s. Available: %d", itemName, available),
		Ref:     itemName,
	}
}

func NewEmptyOperationError(msg string) error {
	return &Error{Kind: KindEmptyOperation, Message: msg}
}

// KindOf returns the kind of a domain error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
