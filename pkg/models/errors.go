package models

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes validation failures
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	TypeKind              // Field received a value of the wrong category
	ValueKind             // Field value is outside its valid domain
)

func (k ErrorKind) String() string {
	switch k {
	case TypeKind:
		return "TypeKind"
	case ValueKind:
		return "ValueKind"
	default:
		return "UnknownKind"
	}
}

// Sentinels for errors.Is matching against a ValidationError kind
var (
	ErrType  = errors.New("invalid type")
	ErrValue = errors.New("invalid value")
)

// ValidationError is returned by constructors that reject their input
type ValidationError struct {
	Kind    ErrorKind
	Field   string // "name", "speed"
	Message string
}

// Error implements error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrType) and errors.Is(err, ErrValue) match by kind
func (e *ValidationError) Is(target error) bool {
	switch target {
	case ErrType:
		return e.Kind == TypeKind
	case ErrValue:
		return e.Kind == ValueKind
	}
	return false
}

func newTypeError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: TypeKind, Field: field, Message: fmt.Sprintf(format, args...)}
}

func newValueError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Kind: ValueKind, Field: field, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the validation kind carried by err, or KindUnknown
func KindOf(err error) ErrorKind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return KindUnknown
}
