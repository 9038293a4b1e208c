package router

import (
	"github.com/indigo-web/snip/http"
)

// Router decides the response for every request. OnError receives whatever the parser
// managed to fill before failing, so the request may lack everything but the logger.
type Router interface {
	OnRequest(request *http.Request) *http.Response
	OnError(request *http.Request, err error) *http.Response
}
