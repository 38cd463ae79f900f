package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// FieldError is used to indicate an error with a specific field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// ErrorKind classifies the failures a command line can produce.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindUnknownCommand
	KindInvalidFormat
	KindMissingFields
	KindMissingPrefixes
	KindEmptyIndex
	KindMissingIndexAndPrefixes
	KindInvalidValue
	KindDuplicatePrefix
	KindEmptyKeyword
	KindMultipleValues
	KindIndexOutOfRange
	KindDuplicateRecord
)

var kindNames = map[ErrorKind]string{
	KindUnknown:                 "unknown",
	KindUnknownCommand:          "unknown command",
	KindInvalidFormat:           "invalid format",
	KindMissingFields:           "missing compulsory fields",
	KindMissingPrefixes:         "missing prefixes",
	KindEmptyIndex:              "empty index",
	KindMissingIndexAndPrefixes: "missing index and prefixes",
	KindInvalidValue:            "invalid field value",
	KindDuplicatePrefix:         "duplicate prefix",
	KindEmptyKeyword:            "empty keyword",
	KindMultipleValues:          "multiple values",
	KindIndexOutOfRange:         "index out of range",
	KindDuplicateRecord:         "duplicate record",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// CommandError is a user-facing failure of parsing or executing a command line.
// Msg is shown verbatim; Hint is optional extra guidance that never alters Msg.
type CommandError struct {
	Kind ErrorKind
	Msg  string
	Hint string
}

func NewCommandError(kind ErrorKind, msg string) error {
	return &CommandError{Kind: kind, Msg: msg}
}

func (err CommandError) Error() string {
	return err.Msg
}

// KindOf classifies err, looking through any wrapping.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Kind
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return KindInvalidValue
	}
	return KindUnknown
}

// IsUserError reports whether err is a command failure meant for the user,
// as opposed to an infrastructure failure.
func IsUserError(err error) bool {
	return KindOf(err) != KindUnknown
}
