package config

import (
	"time"
)

type Mode string

const (
	// Links serves the shortener: redirects on GET, new links on POST.
	Links Mode = "links"
	// Echo answers GET with the requested path and POST with the request body.
	Echo Mode = "echo"
)

type (
	Headers struct {
		// MaxRegionSize limits the request line together with all the header lines. Reaching it
		// is indistinguishable from the peer closing the connection.
		MaxRegionSize int
	}

	Body struct {
		// MaxSize is the largest Content-Length accepted. Requests declaring more are rejected
		// before a single byte of the body is read.
		MaxSize uint64
	}

	NET struct {
		// ReadBufferSize is a size of buffer in bytes which will be used to read from
		// socket
		ReadBufferSize int
		// ReadTimeout sets a deadline for every read from a client. Zero disables deadlines,
		// so a silent client holds its connection open indefinitely.
		ReadTimeout time.Duration `test:"nullable"`
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop.
		AcceptLoopInterruptPeriod time.Duration
	}

	Shortener struct {
		// Hash names the hash function the codes are derived from. See shorten.Hashes.
		Hash string
		// MaxAttempts is how many salted retries follow the unsalted one before giving up.
		MaxAttempts int
		// CodeLength is the length codes are truncated to.
		CodeLength int
	}

	Auth struct {
		// Secret is the expected "user:password" pair. Empty secret rejects every write.
		Secret string `test:"nullable"`
		// SecretFile, if set, overrides Secret with the file contents and is reloaded on change.
		SecretFile string `test:"nullable"`
	}
)

// Config holds settings used across the service, mainly restrictions and limitations.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually.
type Config struct {
	Mode      Mode
	Headers   Headers
	Body      Body
	NET       NET
	Shortener Shortener
	Auth      Auth
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Mode: Links,
		Headers: Headers{
			MaxRegionSize: 8 * 1024,
		},
		Body: Body{
			// links are short, so 100kb leaves plenty of room for anything but abuse.
			MaxSize: 100 * 1024,
		},
		NET: NET{
			ReadBufferSize:            2 * 1024,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
		Shortener: Shortener{
			Hash:        "sha256",
			MaxAttempts: 10,
			CodeLength:  7,
		},
	}
}
