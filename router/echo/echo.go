// Package echo provides a router reflecting requests back: the path on GET, the body on POST.
// It's handy for probing the parser against real clients.
package echo

import (
	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/http/method"
	"github.com/indigo-web/snip/router"
	"github.com/indigo-web/snip/router/simple"
)

func New() router.Router {
	return simple.New(handle, nil)
}

func handle(request *http.Request) *http.Response {
	switch request.Method {
	case method.POST:
		return http.Respond(request).Bytes(request.Body)
	default:
		return http.String(request, "Path requested: "+request.Path)
	}
}
