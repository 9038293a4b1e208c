package http

import (
	"errors"

	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/internal/response"
	"github.com/indigo-web/snip/kv"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// why 3? Location or WWW-Authenticate is the most a response here ever carries.
const preallocRespHeaders = 3

type Response struct {
	fields *response.Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// pre-allocated space for response headers and text/plain content-type.
// NOTE: it's recommended to use Request.Respond() method inside of handlers, if there's no
// clear reason otherwise
func NewResponse() *Response {
	return &Response{
		&response.Fields{
			Code:        status.OK,
			Headers:     make([]kv.Pair, 0, preallocRespHeaders),
			ContentType: response.DefaultContentType,
		},
	}
}

// Code sets a Response code.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// ContentType sets a custom Content-Type header value. It's sent only along with a body.
func (r *Response) ContentType(value string) *Response {
	r.fields.ContentType = value
	return r
}

// Header adds a header. Content-Type is redirected to ContentType, while Content-Length and
// Connection are always computed by the serializer and therefore ignored.
func (r *Response) Header(key, value string) *Response {
	switch {
	case strcomp.EqualFold(key, "content-type"):
		return r.ContentType(value)
	case strcomp.EqualFold(key, "content-length"), strcomp.EqualFold(key, "connection"):
		return r
	}

	r.fields.Headers = append(r.fields.Headers, kv.Pair{
		Key:   key,
		Value: value,
	})

	return r
}

// Redirect sets the code and the Location header.
func (r *Response) Redirect(code status.Code, location string) *Response {
	return r.Code(code).Header("Location", location)
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Error returns a response builder with an error set. If passed err is nil, nothing will happen.
// Instances of status.HTTPError and status.ParseError define the code on their own, anything
// else results in 500 Internal Server Error. The error message becomes the body.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	var (
		httpErr  status.HTTPError
		parseErr status.ParseError
	)

	switch {
	case errors.As(err, &httpErr):
		r.Code(httpErr.Code)
	case errors.As(err, &parseErr):
		r.Code(parseErr.Code())
	default:
		r.Code(status.InternalServerError)
	}

	return r.String(err.Error())
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *response.Fields {
	return r.fields
}

// Clear discards everything was done with Response object before
func (r *Response) Clear() *Response {
	r.fields.Clear()
	return r
}

// Respond is a predicate to request.Respond(). May be used as a dummy handler
func Respond(request *Request) *Response {
	return request.Respond()
}

// Code is a predicate to request.Respond().Code(...)
func Code(request *Request, code status.Code) *Response {
	return request.Respond().Code(code)
}

// String is a predicate to request.Respond().String(...)
func String(request *Request, str string) *Response {
	return request.Respond().String(str)
}

// Redirect is a predicate to request.Respond().Redirect(...)
func Redirect(request *Request, code status.Code, location string) *Response {
	return request.Respond().Redirect(code, location)
}

// Error is a predicate to request.Respond().Error(...)
func Error(request *Request, err error) *Response {
	return request.Respond().Error(err)
}
