package links

import (
	"strings"

	"github.com/indigo-web/snip/auth"
	"github.com/indigo-web/snip/config"
	"github.com/indigo-web/snip/http"
	"github.com/indigo-web/snip/http/method"
	"github.com/indigo-web/snip/http/status"
	"github.com/indigo-web/snip/router"
	"github.com/indigo-web/snip/shorten"
	"github.com/indigo-web/snip/store"
	"github.com/indigo-web/utils/uf"
)

// Hint is the body of GET /.
const Hint = "POST {\"url\": \"https://...\"} with Basic credentials to get a short code, " +
	"then GET /<code> to follow it\n"

// Store is the part of store.Memory the router depends on.
type Store interface {
	Lookup(code string) (url string, found bool)
	Shorten(url string, maxRetries int, candidate store.CandidateFunc) (string, error)
}

var _ Store = new(store.Memory)

type Router struct {
	store      Store
	encoder    shorten.Encoder
	secret     auth.Secret
	maxRetries int
}

var _ router.Router = new(Router)

func New(cfg *config.Config, store Store, encoder shorten.Encoder, secret auth.Secret) *Router {
	return &Router{
		store:      store,
		encoder:    encoder,
		secret:     secret,
		maxRetries: cfg.Shortener.MaxAttempts,
	}
}

func (r *Router) OnRequest(request *http.Request) *http.Response {
	switch request.Method {
	case method.GET:
		return r.follow(request)
	case method.POST:
		return r.shorten(request)
	default:
		// the parser lets nothing else through
		return http.Code(request, status.BadRequest)
	}
}

func (r *Router) OnError(request *http.Request, err error) *http.Response {
	return http.Error(request, err)
}

func (r *Router) follow(request *http.Request) *http.Response {
	if request.Path == "/" {
		return http.String(request, Hint)
	}

	code, ok := strings.CutPrefix(request.Path, "/")
	if !ok || !shorten.IsCode(code, r.encoder.Length()) {
		return http.Redirect(request, status.SeeOther, "/")
	}

	url, found := r.store.Lookup(code)
	if !found {
		return http.Redirect(request, status.SeeOther, "/")
	}

	return http.Redirect(request, status.Found, url)
}

func (r *Router) shorten(request *http.Request) *http.Response {
	url, ok := ExtractURL(uf.B2S(request.Body))
	if !ok {
		return http.Error(request, status.ErrBadURL)
	}

	secret := r.secret.Secret()
	if len(secret) == 0 {
		request.Log.Error().Msg("refusing to shorten: no secret configured")
		return http.Error(request, status.ErrAuthNotConfigured)
	}

	if !auth.Basic(request.Headers, secret) {
		return http.Error(request, status.ErrUnauthorized).
			Header("WWW-Authenticate", auth.Challenge)
	}

	// the url points into the request body, which mustn't be retained
	url = strings.Clone(url)

	code, err := r.store.Shorten(url, r.maxRetries, r.encoder.Candidate)
	if err != nil {
		request.Log.Error().Err(err).Str("url", url).Msg("failed to shorten")
		return http.Error(request, err)
	}

	return http.String(request, code)
}

// ExtractURL finds the value of the "url" field in a JSON-like text. It isn't a JSON parser:
// the value is everything between the opening quote and the next one, escapes included.
// Only http:// and https:// values free of control characters are accepted.
func ExtractURL(body string) (url string, ok bool) {
	const field = `"url":`

	idx := strings.Index(body, field)
	if idx == -1 {
		return "", false
	}

	rest := strings.TrimLeft(body[idx+len(field):], " \t\r\n")
	if len(rest) == 0 || rest[0] != '"' {
		return "", false
	}

	url, _, ok = strings.Cut(rest[1:], `"`)
	if !ok {
		return "", false
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", false
	}

	for i := 0; i < len(url); i++ {
		if url[i] < 0x20 || url[i] == 0x7f {
			// would otherwise end up in the Location header verbatim
			return "", false
		}
	}

	return url, true
}
