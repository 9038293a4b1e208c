package shorten

import (
	"strconv"

	"github.com/indigo-web/utils/uf"
)

// Encoder derives short codes from texts.
type Encoder struct {
	hash   Hash
	length int
}

// New returns an encoder truncating codes to length characters.
func New(hash Hash, length int) Encoder {
	return Encoder{
		hash:   hash,
		length: length,
	}
}

// Encode hashes the text and renders the hash in Base62, truncated (never padded) to the
// code length.
func (e Encoder) Encode(text string) string {
	code := Base62(e.hash(uf.S2B(text)) & mask48)
	if len(code) > e.length {
		code = code[:e.length]
	}

	return code
}

// Candidate returns the code to try at the given attempt. The first attempt hashes the url
// alone, each following one salts it with ":<attempt>".
func (e Encoder) Candidate(url string, attempt int) string {
	if attempt == 0 {
		return e.Encode(url)
	}

	return e.Encode(url + ":" + strconv.Itoa(attempt))
}

// Length is the maximal length of the produced codes.
func (e Encoder) Length() int {
	return e.length
}
