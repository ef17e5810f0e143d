// Package fault carries the error taxonomy shared by every module.
//
// Use cases return *fault.Error values (usually via the constructors below)
// and the HTTP boundary translates the Kind into a status code and a
// problem-details body. Infrastructure errors stay plain wrapped errors;
// KindOf returns 0 for them and the boundary answers 500.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure.
type Kind int

const (
	// Validation covers malformed or missing input fields.
	Validation Kind = iota + 1
	// NotFound covers absent orders, products, payments, clients.
	NotFound
	// Conflict covers uniqueness violations, e.g. duplicate client email.
	Conflict
	// BusinessRule covers domain rules: out of stock, payment not approved,
	// forbidden status transitions.
	BusinessRule
)

// Error is a classified business failure.
type Error struct {
	Kind   Kind
	Detail string
	// Fields holds field-level validation messages, one per offending field.
	Fields []string
}

func (e *Error) Error() string { return e.Detail }

// Validationf builds a Validation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Detail: fmt.Sprintf(format, args...)}
}

// ValidationFields builds a Validation error carrying per-field messages.
func ValidationFields(detail string, fields ...string) *Error {
	return &Error{Kind: Validation, Detail: detail, Fields: fields}
}

// NotFoundf builds a NotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Detail: fmt.Sprintf(format, args...)}
}

// Conflictf builds a Conflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{Kind: Conflict, Detail: fmt.Sprintf(format, args...)}
}

// BusinessRulef builds a BusinessRule error.
func BusinessRulef(format string, args ...any) *Error {
	return &Error{Kind: BusinessRule, Detail: fmt.Sprintf(format, args...)}
}

// KindOf unwraps err looking for a *fault.Error and returns its Kind,
// or 0 when err carries no classification.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}

// FieldsOf returns the field-level messages of a Validation error, if any.
func FieldsOf(err error) []string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Fields
	}
	return nil
}
