package http1

import (
	"errors"

	"github.com/indigo-web/snip/config"
	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/http/method"
	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/router"
	"github.com/indigo-web/snip/transport"
)

// Suit binds the parser and the serializer of a single connection together with the router.
type Suit struct {
	*Parser
	*Serializer
	router  router.Router
	client  transport.Client
	request *http.Request
}

func New(cfg *config.Config, r router.Router, client transport.Client, request *http.Request) *Suit {
	return &Suit{
		Parser:     NewParser(cfg, client, request),
		Serializer: NewSerializer(client),
		router:     r,
		client:     client,
		request:    request,
	}
}

// ServeOnce reads one request, writes the response and closes the connection. It reports
// whether the request was parsed successfully.
func (s *Suit) ServeOnce() (ok bool) {
	defer func() {
		_ = s.client.Close()
	}()

	req := s.request
	_, err := s.Parse()
	if err != nil {
		s.logParseError(err)
		s.write(notNil(req, s.router.OnError(req, err)))
		return false
	}

	resp := notNil(req, s.router.OnRequest(req))
	req.Log.Info().
		Stringer("method", req.Method).
		Str("path", req.Path).
		Uint16("status", uint16(resp.Reveal().Code)).
		Msg("served")
	s.write(resp)

	return true
}

// write is best-effort: once the response failed to get through, there's nothing left to do
// but to close the connection.
func (s *Suit) write(resp *http.Response) {
	if err := s.Write(resp); err != nil {
		s.request.Log.Error().Err(err).Msg("failed to write the response")
	}
}

func (s *Suit) logParseError(err error) {
	log := s.request.Log

	var perr status.ParseError
	switch {
	case errors.As(err, &perr) && perr.Kind == status.IOError:
		log.Error().Err(err).Msg("failed to read the request")
	case errors.Is(err, status.ErrConnectionClosed) && s.request.Method == method.Unknown:
		log.Debug().Msg("connection closed without a request")
	default:
		log.Debug().Err(err).Msg("malformed request")
	}
}

func notNil(req *http.Request, resp *http.Response) *http.Response {
	if resp != nil {
		return resp
	}

	return http.Respond(req)
}
