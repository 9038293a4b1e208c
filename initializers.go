package snip

import (
	"net"

	"github.com/google/uuid"
	"github.com/indigo-web/snip/config"
	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/kv"
	"github.com/indigo-web/snip/transport"
	"github.com/rs/zerolog"
)

// why 8? Requests to the shortener carry a handful of headers at most.
const preallocHeaders = 8

func newClient(cfg config.NET, conn net.Conn) transport.Client {
	readBuff := make([]byte, cfg.ReadBufferSize)

	return transport.NewClient(conn, cfg.ReadTimeout, readBuff)
}

func newConnLogger(log zerolog.Logger, conn net.Conn) zerolog.Logger {
	return log.With().
		Str("conn", uuid.NewString()).
		Stringer("remote", conn.RemoteAddr()).
		Logger()
}

func newRequest(conn net.Conn, log zerolog.Logger) *http.Request {
	return http.NewRequest(kv.NewPrealloc(preallocHeaders), http.NewResponse(), conn.RemoteAddr(), log)
}
