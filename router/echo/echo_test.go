package echo

import (
	"testing"

	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/http/method"
	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/kv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newRequest(m method.Method, path, body string) *http.Request {
	request := http.NewRequest(kv.New(), http.NewResponse(), nil, zerolog.Nop())
	request.Method = m
	request.Path = path
	request.Body = []byte(body)

	return request
}

func TestEcho(t *testing.T) {
	r := New()

	t.Run("GET", func(t *testing.T) {
		resp := r.OnRequest(newRequest(method.GET, "/some/path?with=query", "")).Reveal()
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "Path requested: /some/path?with=query", string(resp.Body))
	})

	t.Run("POST", func(t *testing.T) {
		resp := r.OnRequest(newRequest(method.POST, "/", "Hello, world!")).Reveal()
		require.Equal(t, status.OK, resp.Code)
		require.Equal(t, "Hello, world!", string(resp.Body))
	})

	t.Run("errors", func(t *testing.T) {
		resp := r.OnError(newRequest(method.Unknown, "", ""), status.ErrOversizedBody).Reveal()
		require.Equal(t, status.BadRequest, resp.Code)
		require.Equal(t, status.ErrOversizedBody.Error(), string(resp.Body))
	})
}
