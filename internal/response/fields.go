package response

import (
	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/kv"
)

const DefaultContentType = "text/plain"

type Fields struct {
	ContentType string
	Headers     []kv.Pair
	Body        []byte
	Code        status.Code
}

func (f *Fields) Clear() {
	f.Code = status.OK
	f.ContentType = DefaultContentType
	f.Headers = f.Headers[:0]
	f.Body = nil
}
