package http

import (
	"net"

	"github.com/indigo-web/snip/http/method"
	"github.com/indigo-web/snip/kv"
	"github.com/rs/zerolog"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents HTTP request. It's filled once by the parser and is read-only afterwards.
type Request struct {
	// Method is either method.GET or method.POST, anything else is rejected by the parser.
	Method method.Method
	// Path is the request target exactly as it was received: neither decoded nor split.
	Path string
	// Headers holds non-normalized header pairs, even though lookup is case-insensitive.
	Headers Headers
	// Body is exactly Content-Length bytes, guaranteed to be valid UTF-8.
	Body []byte
	// Remote holds the remote address.
	Remote net.Addr
	// Log is the connection-scoped logger.
	Log      zerolog.Logger
	response *Response
}

func NewRequest(headers *kv.Storage, response *Response, remote net.Addr, log zerolog.Logger) *Request {
	return &Request{
		Method:   method.Unknown,
		Headers:  headers,
		Remote:   remote,
		Log:      log,
		response: response,
	}
}

// Respond returns Response object.
//
// WARNING: this method clears the response builder under the hood. As it is passed
// by reference, it'll be cleared EVERYWHERE along a handler
func (r *Request) Respond() *Response {
	return r.response.Clear()
}
