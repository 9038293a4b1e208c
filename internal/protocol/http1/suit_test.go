package http1

import (
	"strings"
	"testing"

	"github.com/indigo-web/snip/config"
	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/router/simple"
	"github.com/indigo-web/snip/transport/dummy"
	"github.com/stretchr/testify/require"
)

func serveOnce(t *testing.T, handler simple.Handler, raw ...string) (ok bool, written string) {
	data := make([][]byte, len(raw))
	for i, chunk := range raw {
		data[i] = []byte(chunk)
	}

	client := dummy.NewMockClient(data...)
	suit := New(config.Default(), simple.New(handler, nil), client, newRequest())
	ok = suit.ServeOnce()
	require.True(t, client.Closed())

	return ok, client.Written()
}

func TestSuit(t *testing.T) {
	t.Run("request", func(t *testing.T) {
		ok, written := serveOnce(t, func(request *http.Request) *http.Response {
			return request.Respond().String("Path requested: " + request.Path)
		}, "GET /hello HTTP/1.1\r\n\r\n")

		require.True(t, ok)
		require.True(t, strings.HasPrefix(written, "HTTP/1.1 200 OK\r\n"))
		require.True(t, strings.HasSuffix(written, "\r\n\r\nPath requested: /hello"))
	})

	t.Run("nil response", func(t *testing.T) {
		ok, written := serveOnce(t, func(*http.Request) *http.Response {
			return nil
		}, "GET / HTTP/1.1\r\n\r\n")

		require.True(t, ok)
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 0\r\nConnection: close\r\n\r\n", written)
	})

	t.Run("malformed request", func(t *testing.T) {
		ok, written := serveOnce(t, func(*http.Request) *http.Response {
			require.FailNow(t, "handler must not be called")
			return nil
		}, "GET\r\n\r\n")

		require.False(t, ok)
		require.True(t, strings.HasPrefix(written, "HTTP/1.1 400 Bad Request\r\n"))
		require.True(t, strings.HasSuffix(written, "\r\n\r\ninvalid request line"))
	})

	t.Run("short body", func(t *testing.T) {
		ok, written := serveOnce(t, func(*http.Request) *http.Response {
			require.FailNow(t, "handler must not be called")
			return nil
		}, "POST / HTTP/1.1\r\nContent-Length: 100\r\n\r\nnot enough")

		require.False(t, ok)
		require.True(t, strings.HasPrefix(written, "HTTP/1.1 500 Internal Server Error\r\n"))
	})
}
