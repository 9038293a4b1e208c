package status

import "fmt"

// ParseErrorKind enumerates every way reading a request may fail.
type ParseErrorKind uint8

const (
	ConnectionClosed ParseErrorKind = iota + 1
	InvalidMethod
	InvalidRequestLine
	OversizedBody
	IOError
	IntegerParseError
	UTF8Error
)

// ParseError is returned by the request parser. Err holds the underlying failure for the
// IOError and IntegerParseError kinds and is nil otherwise.
type ParseError struct {
	Kind ParseErrorKind
	Err  error
}

var (
	ErrConnectionClosed   = ParseError{Kind: ConnectionClosed}
	ErrInvalidMethod      = ParseError{Kind: InvalidMethod}
	ErrInvalidRequestLine = ParseError{Kind: InvalidRequestLine}
	ErrOversizedBody      = ParseError{Kind: OversizedBody}
	ErrUTF8               = ParseError{Kind: UTF8Error}
)

// NewIOError wraps a transport failure.
func NewIOError(err error) error {
	return ParseError{Kind: IOError, Err: err}
}

// NewIntegerParseError wraps a failure to parse the Content-Length value.
func NewIntegerParseError(err error) error {
	return ParseError{Kind: IntegerParseError, Err: err}
}

func (p ParseError) Error() string {
	switch p.Kind {
	case ConnectionClosed:
		return "connection closed before the request was complete"
	case InvalidMethod:
		return "invalid HTTP method"
	case InvalidRequestLine:
		return "invalid request line"
	case OversizedBody:
		return "request body is too large"
	case IOError:
		return fmt.Sprintf("i/o error: %v", p.Err)
	case IntegerParseError:
		return fmt.Sprintf("invalid Content-Length: %v", p.Err)
	case UTF8Error:
		return "request body is not valid UTF-8"
	default:
		return "unknown parse error"
	}
}

func (p ParseError) Unwrap() error {
	return p.Err
}

// Is reports kinds as equal regardless of the wrapped error, so errors.Is(err, ErrOversizedBody)
// and friends work on any instance.
func (p ParseError) Is(target error) bool {
	t, ok := target.(ParseError)
	return ok && t.Kind == p.Kind
}

// Code maps the error onto the response status: transport failures are the server's problem,
// everything else is the client's.
func (p ParseError) Code() Code {
	if p.Kind == IOError {
		return InternalServerError
	}

	return BadRequest
}
