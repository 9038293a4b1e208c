package status

import "strconv"

type (
	Code   uint16
	Status string
)

// HTTP status codes as registered with IANA, limited to the ones the service ever responds with.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK Code = 200 // RFC 9110, 15.3.1

	Found    Code = 302 // RFC 9110, 15.4.3
	SeeOther Code = 303 // RFC 9110, 15.4.4

	BadRequest   Code = 400 // RFC 9110, 15.5.1
	Unauthorized Code = 401 // RFC 9110, 15.5.2

	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

var KnownCodes = []Code{OK, Found, SeeOther, BadRequest, Unauthorized, InternalServerError}

// Text returns a text for the HTTP status code.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Found:
		return "Found"
	case SeeOther:
		return "See Other"
	case BadRequest:
		return "Bad Request"
	case Unauthorized:
		return "Unauthorized"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown Status Code"
	}
}

// StringCode returns the decimal representation of the code.
func StringCode(code Code) string {
	return strconv.Itoa(int(code))
}
