// Package errors provides the coded errors shared by every ideapadctl
// package. Codes that belong to one domain are declared next to the code
// that raises them and register their messages here.
package errors

// ErrorCode identifies an error kind. Callers test for it with HasCode.
type ErrorCode string

// Error is a coded error that may carry a cause, a message override and
// arbitrary data such as an exit status.
type Error interface {
	error
	Code() ErrorCode
	WithMessage(msg string) Error
	WithData(data any) Error
	GetData() any
	Unwrap() error
}

// Factory builds coded errors.
type Factory interface {
	New(code ErrorCode) Error
	Wrap(code ErrorCode, err error) Error
	WithMessage(code ErrorCode, msg string) Error
	WithData(code ErrorCode, data any) Error
}
