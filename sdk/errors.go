package sdk

import (
	"errors"
	"fmt"
)

// Error is a coded contract failure. The host surfaces it to the caller as
// a named revert: the symbol is machine-readable, the detail is for humans,
// and the code slots the failure into a contract-defined numbered range.
type Error struct {
	Code   uint32
	Symbol string
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s (%d)", e.Symbol, e.Code)
	}
	return fmt.Sprintf("%s (%d): %s", e.Symbol, e.Code, e.Detail)
}

// Errorf builds a coded error with a formatted detail message.
func Errorf(code uint32, symbol, format string, args ...interface{}) *Error {
	return &Error{
		Code:   code,
		Symbol: symbol,
		Detail: fmt.Sprintf(format, args...),
	}
}

// AsError unwraps err into a coded error if it carries one.
func AsError(err error) (*Error, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}
