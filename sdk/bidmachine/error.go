package bidmachine

import "fmt"

// Error codes reported by the BidMachine SDK.
const (
	ErrorCodeNoConnection   = 100
	ErrorCodeHTTPBadRequest = 101
	ErrorCodeServer         = 102
	ErrorCodeNoContent      = 103
	ErrorCodeBadContent     = 104
	ErrorCodeTimeout        = 105
	ErrorCodeInternal       = 106
	ErrorCodeExpired        = 107
	ErrorCodeAlreadyShown   = 108
	ErrorCodeNotLoaded      = 109
	ErrorCodeDestroyed      = 110
)

// Error is the diagnostic the SDK attaches to failed loads and shows.
type Error struct {
	code    int
	message string
}

func NewError(code int, message string) *Error {
	return &Error{code: code, message: message}
}

func (e *Error) Code() int {
	return e.code
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Error() string {
	return fmt.Sprintf("BMError{code=%d, message=%q}", e.code, e.message)
}
