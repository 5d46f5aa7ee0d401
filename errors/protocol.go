package errors

import "fmt"

// ErrorCode represents a class of accumulation protocol violation
type ErrorCode int

const (
	DRIVE ErrorCode = iota
	SEND
)

// String converts ErrorCode enum into a string value
func (c ErrorCode) String() string {
	return [...]string{
		"DRIVE",
		"SEND",
	}[c]
}

// Message converts ErrorCode enum into a human-readable message
func (c ErrorCode) Message(msg string) string {
	return fmt.Sprintf(
		"accumulate %s protocol violation (code: %d, message: %s)", c.String(), c, msg,
	)
}

// Error is implemented by all accumulators errors.
type Error interface {
	error
	Code() ErrorCode
}

// ProtocolError reports misuse of the accumulation protocol: a guarded
// source driven while already running or ended, or a source that keeps
// sending after its sequence ended. These indicate a bug in a source
// implementation and are surfaced as panics at the violation point.
type ProtocolError struct {
	code    ErrorCode
	message string
}

func newError(code ErrorCode, msg string) *ProtocolError {
	return &ProtocolError{
		code:    code,
		message: code.Message(msg),
	}
}

// NewDrive reports an accumulation attempted while the source was already
// running or already ended.
func NewDrive(msg string) *ProtocolError {
	return newError(DRIVE, msg)
}

// NewSend reports a step sent after the sequence already ended.
func NewSend(msg string) *ProtocolError {
	return newError(SEND, msg)
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	return e.message
}

// Code returns the violation class
func (e *ProtocolError) Code() ErrorCode {
	return e.code
}
