package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies dispatch failures so callers can tell them apart.
type ErrorCode string

const (
	CodeUnrecognizedName   ErrorCode = "unrecognized_name"
	CodeUnrecognizedKind   ErrorCode = "unrecognized_kind"
	CodeIncompletePayload  ErrorCode = "incomplete_payload"
	CodeNotFound           ErrorCode = "not_found"
	CodeUndefinedOperation ErrorCode = "undefined_operation"
	CodeInvalidField       ErrorCode = "invalid_field"
	CodeConflict           ErrorCode = "conflict"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodePaymentFailed      ErrorCode = "payment_failed"
	CodeInternal           ErrorCode = "internal"
)

// Error is the canonical dispatch error.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	op := strings.TrimSpace(e.Op)
	msg := strings.TrimSpace(e.Message)
	switch {
	case op != "" && msg != "":
		return fmt.Sprintf("%s: %s (%s)", op, msg, e.Code)
	case op != "":
		return fmt.Sprintf("%s (%s)", op, e.Code)
	case msg != "":
		return fmt.Sprintf("%s (%s)", msg, e.Code)
	default:
		return string(e.Code)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError builds an error with explicit code + operation.
func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap annotates err with a code. Errors that already carry a code are
// returned unchanged.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return NewError(code, op, err.Error(), err)
}

// IsCode checks whether err (or a wrapped err) carries code.
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Code == code
}

// CodeOf extracts the error code, or "" for foreign errors.
func CodeOf(err error) ErrorCode {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Code
}

// InvalidField reports a payload value that cannot be assigned to name.
func InvalidField(kind Kind, name string, cause error) error {
	msg := fmt.Sprintf("%s.%s", kind, name)
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return NewError(CodeInvalidField, "entity.assign", msg, cause)
}
