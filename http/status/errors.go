package status

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	ErrShutdown = NewError(InternalServerError, "shutdown")

	ErrBadURL            = NewError(BadRequest, "request body must be a JSON object with an http(s) \"url\" field")
	ErrUnauthorized      = NewError(Unauthorized, "unauthorized")
	ErrAuthNotConfigured = NewError(InternalServerError, "server credentials are not configured")
	ErrCollisionLimit    = NewError(InternalServerError, "failed to allocate a short code")
)
