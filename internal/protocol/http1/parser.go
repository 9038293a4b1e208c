package http1

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/snip/config"
	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/http/method"
	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/internal/buffer"
	"github.com/indigo-web/snip/transport"
	"github.com/indigo-web/utils/uf"
)

// most requests fit into this without growing
const initialRegionSize = 512

// Parser reads exactly one request from the client. The request line and the headers are
// read line by line into a buffer capped by config.Headers.MaxRegionSize, the body is then read
// in one go, as long as Content-Length allows it.
type Parser struct {
	cfg     *config.Config
	client  transport.Client
	request *http.Request
	region  buffer.Buffer
	// exhausted is set once either the peer or the header region ran out of bytes. Every
	// following line read is going to fail.
	exhausted bool
}

func NewParser(cfg *config.Config, client transport.Client, request *http.Request) *Parser {
	return &Parser{
		cfg:     cfg,
		client:  client,
		request: request,
		region:  buffer.New(initialRegionSize, cfg.Headers.MaxRegionSize),
	}
}

// Parse fills the request. The returned error is always a status.ParseError.
func (p *Parser) Parse() (*http.Request, error) {
	line, err := p.readLine()
	if err != nil {
		return nil, err
	}

	if err = p.parseRequestLine(line); err != nil {
		return nil, err
	}

	if err = p.readHeaders(); err != nil {
		return nil, err
	}

	length, err := p.contentLength()
	if err != nil {
		return nil, err
	}

	body, err := p.readBody(length)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(body) {
		return nil, status.ErrUTF8
	}

	p.request.Body = body

	return p.request, nil
}

func (p *Parser) parseRequestLine(line string) error {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return status.ErrInvalidRequestLine
	}

	p.request.Method = method.Parse(tokens[0])
	if p.request.Method == method.Unknown {
		return status.ErrInvalidMethod
	}

	p.request.Path = tokens[1]

	return nil
}

func (p *Parser) readHeaders() error {
	for {
		line, err := p.readLine()
		if err != nil {
			return err
		}

		if line == "\r\n" {
			return nil
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		p.request.Headers.Add(strings.TrimSpace(key), strings.TrimSpace(value))
	}
}

func (p *Parser) contentLength() (uint64, error) {
	value := p.request.Headers.ValueOr("content-length", "0")
	// a single explicit plus sign is tolerated, a minus sign never is
	length, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, 64)
	if err != nil {
		return 0, status.NewIntegerParseError(err)
	}

	if length > p.cfg.Body.MaxSize {
		return 0, status.ErrOversizedBody
	}

	return length, nil
}

// readLine returns the next line including its terminator. A line cut short by the end of
// the stream or by the region limit is returned as it is, and the next call fails.
func (p *Parser) readLine() (string, error) {
	if p.exhausted {
		return "", status.ErrConnectionClosed
	}

	for {
		data, err := p.client.Read()
		if len(data) > 0 {
			chunk := data
			lf := bytes.IndexByte(data, '\n')
			if lf != -1 {
				chunk = data[:lf+1]
			}

			if n := p.region.AppendUpTo(chunk); n < len(chunk) {
				p.exhausted = true
				return p.finishLine()
			}

			if lf != -1 {
				p.client.Pushback(data[lf+1:])
				return uf.B2S(p.region.Finish()), nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				p.exhausted = true
				return p.finishLine()
			}

			return "", status.NewIOError(err)
		}
	}
}

func (p *Parser) finishLine() (string, error) {
	if p.region.SegmentLength() == 0 {
		return "", status.ErrConnectionClosed
	}

	return uf.B2S(p.region.Finish()), nil
}

// readBody reads exactly n bytes. Anything the client sent past them is dropped, as only one
// request per connection is served.
func (p *Parser) readBody(n uint64) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}

	body := make([]byte, 0, n)

	for uint64(len(body)) < n {
		data, err := p.client.Read()
		if rest := n - uint64(len(body)); uint64(len(data)) > rest {
			data = data[:rest]
		}

		body = append(body, data...)

		if err != nil && uint64(len(body)) < n {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return nil, status.NewIOError(err)
		}
	}

	return body, nil
}
