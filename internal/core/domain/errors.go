package domain

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// CommandError is a request rejection produced before execution.
// Error returns the exact text sent back in the Error reply.
type CommandError struct {
	Code    string // Stable identifier, used as a metric label
	Message string // Reply text without the "ERR " prefix; "%s" marks the command name
	Command string // Offending command as sent by the client (may be empty)
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return "ERR " + strings.Replace(e.Message, "%s", e.Command, 1)
}

// Is implements errors.Is() support by comparing codes.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewCommandError creates a new CommandError.
func NewCommandError(code, message string) *CommandError {
	return &CommandError{
		Code:    code,
		Message: message,
	}
}

// WithCommand returns a copy of the error naming the given command.
func (e *CommandError) WithCommand(name []byte) *CommandError {
	return &CommandError{
		Code:    e.Code,
		Message: e.Message,
		Command: displayName(name),
	}
}

// IsCommandError checks if an error is a CommandError with the given code.
// If code is empty, it only checks if the error is a CommandError.
func IsCommandError(err error, code string) bool {
	var ce *CommandError
	if errors.As(err, &ce) {
		return code == "" || ce.Code == code
	}
	return false
}

// ErrorCode extracts the code from a CommandError, or "" for other errors.
func ErrorCode(err error) string {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// displayName renders a client-supplied command name for an error reply.
// Invalid UTF-8 renders as empty and line breaks are blanked so the reply
// stays a single line.
func displayName(name []byte) string {
	if !utf8.Valid(name) {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, string(name))
}

// Error codes.
const (
	CodeProtocol       = "protocol"
	CodeUnknownCommand = "unknown_command"
	CodeWrongArity     = "wrong_arity"
	CodeKeyType        = "key_type"
	CodeRateLimited    = "rate_limited"
)

var (
	// ErrProtocol indicates the request is not a non-empty array of bulk strings.
	ErrProtocol = NewCommandError(CodeProtocol, "Protocol error")

	// ErrUnknownCommand indicates the command name is not in the table.
	ErrUnknownCommand = NewCommandError(CodeUnknownCommand, "unknown command '%s'")

	// ErrWrongArity indicates the request length differs from the command arity.
	ErrWrongArity = NewCommandError(CodeWrongArity, "wrong number of arguments for '%s' command")

	// ErrKeyType indicates the key is not valid UTF-8.
	ErrKeyType = NewCommandError(CodeKeyType, "key type wrong")

	// ErrRateLimited indicates the client exceeded its command rate.
	ErrRateLimited = NewCommandError(CodeRateLimited, "rate limit exceeded")
)
