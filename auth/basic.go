package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/indigo-web/snip/kv"
	"github.com/indigo-web/utils/uf"
)

const basicPrefix = "Basic "

// Challenge is the WWW-Authenticate value sent alongside 401 responses.
const Challenge = "Basic"

// Basic reports whether the Authorization header carries Basic credentials equal to
// expected. Decoding stops at the first padding character. Anything outside the standard
// alphabet before it fails the check, as does an empty expected or decoded value.
func Basic(headers *kv.Storage, expected string) bool {
	if len(expected) == 0 {
		return false
	}

	value, found := headers.Get("authorization")
	if !found || !strings.HasPrefix(value, basicPrefix) {
		return false
	}

	encoded, _, _ := strings.Cut(value[len(basicPrefix):], "=")
	if strings.ContainsAny(encoded, "\r\n") {
		// the decoder skips line breaks instead of failing on them
		return false
	}

	decoded, err := base64.RawStdEncoding.DecodeString(encoded)
	if err != nil || len(decoded) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare(decoded, uf.S2B(expected)) == 1
}
