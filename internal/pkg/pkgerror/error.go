package pkgerror

import (
	"errors"
	"fmt"
)

// Type classifies errors into high-level buckets used by the application.
type Type int

const (
	TypeInternal   Type = iota // Unexpected I/O or encoding failures.
	TypeValidation             // Bad arguments (e.g., wrong path type, path is a directory).
	TypeFilesystem             // The backing file is missing or unreachable.
	TypeParse                  // The file content violates the INI grammar.
	TypeLookup                 // A requested section or option does not exist.
)

func (t Type) String() string {
	switch t {
	case TypeInternal:
		return "ERROR_TYPE_INTERNAL"
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	case TypeFilesystem:
		return "ERROR_TYPE_FILESYSTEM"
	case TypeParse:
		return "ERROR_TYPE_PARSE"
	case TypeLookup:
		return "ERROR_TYPE_LOOKUP"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier for a specific failure.
type Code int

const (
	CodeInternal         Code = iota // Internal or unspecified error.
	CodeInvalidInput                 // Missing or malformed argument.
	CodeTypeMismatch                 // Path argument is not a path-like value.
	CodeIsDirectory                  // Path points at a directory.
	CodeNotFound                     // Path does not exist.
	CodeInvalidFormat                // Line that is neither header, option, comment nor blank.
	CodeDuplicateSection             // Section header defined twice.
	CodeDuplicateOption              // Option defined twice within one section.
	CodeSectionNotFound              // Section lookup failed.
	CodeOptionNotFound               // Option lookup failed.
)

func (c Code) String() string {
	switch c {
	case CodeInvalidInput:
		return "ERROR_CODE_INVALID_INPUT"
	case CodeTypeMismatch:
		return "ERROR_CODE_TYPE_MISMATCH"
	case CodeIsDirectory:
		return "ERROR_CODE_IS_DIRECTORY"
	case CodeNotFound:
		return "ERROR_CODE_NOT_FOUND"
	case CodeInvalidFormat:
		return "ERROR_CODE_INVALID_FORMAT"
	case CodeDuplicateSection:
		return "ERROR_CODE_DUPLICATE_SECTION"
	case CodeDuplicateOption:
		return "ERROR_CODE_DUPLICATE_OPTION"
	case CodeSectionNotFound:
		return "ERROR_CODE_SECTION_NOT_FOUND"
	case CodeOptionNotFound:
		return "ERROR_CODE_OPTION_NOT_FOUND"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Exit statuses returned by the command line front end.
const (
	ExitOK       = 0
	ExitInternal = 1
	ExitUsage    = 2
	ExitNoFile   = 3
	ExitParse    = 4
	ExitLookup   = 5
)

// Error is a structured error used across the application.
//
// It carries a message naming the offending path or identifier, a high-level
// type, a stable code and, optionally, the underlying cause.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	}

	switch e.errType {
	case TypeValidation:
		return "invalid argument"
	case TypeFilesystem:
		return "configuration file unavailable"
	case TypeParse:
		return "malformed configuration file"
	case TypeLookup:
		return "lookup failed"
	case TypeInternal:
		return "internal error"
	}

	return "unknown error"
}

// String returns a verbose representation of the error for debugging/logging.
func (e *Error) String() string {
	return fmt.Sprintf(
		"Error Type: %s, Code: %s, Message: %s, Underlying Error: %v",
		e.errType.String(),
		e.code.String(),
		e.msg,
		e.err,
	)
}

// Msg returns the error message without the cause.
func (e *Error) Msg() string {
	return e.msg
}

// Type returns the high-level error type.
func (e *Error) Type() Type {
	return e.errType
}

// Code returns the stable error code.
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.err
}

// ExitCode maps the error code to a process exit status.
func (e *Error) ExitCode() int {
	switch e.code {
	case CodeInvalidInput, CodeTypeMismatch, CodeIsDirectory:
		return ExitUsage
	case CodeNotFound:
		return ExitNoFile
	case CodeInvalidFormat, CodeDuplicateSection, CodeDuplicateOption:
		return ExitParse
	case CodeSectionNotFound, CodeOptionNotFound:
		return ExitLookup
	default:
		return ExitInternal
	}
}

func new(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewInternal creates an internal error wrapping err.
func NewInternal(err error, msg string) error {
	return new(err, msg, TypeInternal, CodeInternal)
}

// NewValidation creates a validation error for a rejected argument.
func NewValidation(err error, msg string, code Code) error {
	return new(err, msg, TypeValidation, code)
}

// NewFilesystem creates an error for a missing or unreachable file.
func NewFilesystem(err error, msg string, code Code) error {
	return new(err, msg, TypeFilesystem, code)
}

// NewParse creates an error for content that could not be parsed.
func NewParse(err error, msg string, code Code) error {
	return new(err, msg, TypeParse, code)
}

// NewLookup creates an error for a missing section or option.
func NewLookup(err error, msg string, code Code) error {
	return new(err, msg, TypeLookup, code)
}

// CodeOf returns the code of the first *Error in err's chain, or CodeInternal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}
	return CodeInternal
}

// HasCode reports whether err's chain holds an *Error with the given code.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.code == code
}

// ExitCodeOf returns the exit status for err; nil maps to ExitOK.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.ExitCode()
	}
	return ExitInternal
}
