package config

import (
	"fmt"
	"strconv"
	"time"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv overlays environment variables onto the defaults. The listen address is returned
// separately, as it isn't a part of the config.
func FromEnv(lookup LookupFunc) (cfg *Config, addr string, err error) {
	cfg = Default()
	addr = "127.0.0.1:8080"

	if value, ok := lookup("SNIP_ADDR"); ok && len(value) > 0 {
		addr = value
	}

	if value, ok := lookup("SNIP_AUTH"); ok {
		cfg.Auth.Secret = value
	}

	if value, ok := lookup("SNIP_AUTH_FILE"); ok {
		cfg.Auth.SecretFile = value
	}

	if value, ok := lookup("SNIP_HASH"); ok && len(value) > 0 {
		cfg.Shortener.Hash = value
	}

	if value, ok := lookup("SNIP_MODE"); ok && len(value) > 0 {
		switch mode := Mode(value); mode {
		case Links, Echo:
			cfg.Mode = mode
		default:
			return nil, "", fmt.Errorf("SNIP_MODE: unknown mode %q", value)
		}
	}

	if value, ok := lookup("SNIP_BODY_LIMIT"); ok && len(value) > 0 {
		cfg.Body.MaxSize, err = strconv.ParseUint(value, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("SNIP_BODY_LIMIT: %w", err)
		}
	}

	if value, ok := lookup("SNIP_READ_TIMEOUT"); ok && len(value) > 0 {
		cfg.NET.ReadTimeout, err = time.ParseDuration(value)
		if err != nil {
			return nil, "", fmt.Errorf("SNIP_READ_TIMEOUT: %w", err)
		}
	}

	return cfg, addr, nil
}
