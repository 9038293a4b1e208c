package http1

import (
	"strconv"

	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/internal/response"
	"github.com/indigo-web/snip/kv"
	"github.com/indigo-web/snip/transport"
	"github.com/valyala/bytebufferpool"
)

const crlf = "\r\n"

// Serializer renders a response completely before a single byte of it is written, so the
// client never receives a partial one.
type Serializer struct {
	client transport.Client
	buff   *bytebufferpool.ByteBuffer
}

func NewSerializer(client transport.Client) *Serializer {
	return &Serializer{
		client: client,
	}
}

// Write renders the response and writes it at once. Every response closes the connection.
func (s *Serializer) Write(resp *http.Response) error {
	s.buff = bytebufferpool.Get()
	defer func() {
		bytebufferpool.Put(s.buff)
		s.buff = nil
	}()

	fields := resp.Reveal()
	s.appendStatus(fields)
	s.appendHeaders(fields)
	s.appendBody(fields)

	_, err := s.client.Write(s.buff.B)
	return err
}

func (s *Serializer) appendStatus(fields *response.Fields) {
	s.buff.B = append(s.buff.B, "HTTP/1.1 "...)
	s.buff.B = append(s.buff.B, status.StringCode(fields.Code)...)
	s.buff.B = append(s.buff.B, ' ')
	s.buff.B = append(s.buff.B, status.Text(fields.Code)...)
	s.crlf()
}

func (s *Serializer) appendHeaders(fields *response.Fields) {
	for _, header := range fields.Headers {
		s.appendHeader(header)
	}

	if len(fields.Body) > 0 {
		s.appendKnownHeader("Content-Type: ", fields.ContentType)
	}

	s.buff.B = append(s.buff.B, "Content-Length: "...)
	s.buff.B = strconv.AppendInt(s.buff.B, int64(len(fields.Body)), 10)
	s.crlf()
	s.appendKnownHeader("Connection: ", "close")
	s.crlf()
}

func (s *Serializer) appendBody(fields *response.Fields) {
	s.buff.B = append(s.buff.B, fields.Body...)
}

// appendHeader writes a complete header field line.
func (s *Serializer) appendHeader(header kv.Pair) {
	s.buff.B = append(s.buff.B, header.Key...)
	s.buff.B = append(s.buff.B, ':', ' ')
	s.buff.B = append(s.buff.B, header.Value...)
	s.crlf()
}

// appendKnownHeader differs from appendHeader only by the fact that the key is known to already
// have a colon and a space included.
func (s *Serializer) appendKnownHeader(key, value string) {
	s.buff.B = append(s.buff.B, key...)
	s.buff.B = append(s.buff.B, value...)
	s.crlf()
}

func (s *Serializer) crlf() {
	s.buff.B = append(s.buff.B, crlf...)
}
