package shorten

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/twmb/murmur3"
	"golang.org/x/crypto/blake2b"
)

const mask48 = 1<<48 - 1

// Hash maps bytes onto a deterministic 48-bit value.
type Hash func(data []byte) uint64

// Hashes are all the known hash functions by their names, as used in config.Shortener.Hash.
var Hashes = map[string]Hash{
	"sha256":  SHA256,
	"blake2b": BLAKE2b,
	"xxhash":  XXHash,
	"murmur3": Murmur3,
}

// Lookup returns the hash function by its name.
func Lookup(name string) (Hash, error) {
	hash, found := Hashes[name]
	if !found {
		return nil, fmt.Errorf("unknown hash function: %q", name)
	}

	return hash, nil
}

// SHA256 takes the first 6 bytes of the digest as a big-endian number.
func SHA256(data []byte) uint64 {
	digest := sha256.Sum256(data)
	return prefix48(digest[:])
}

// BLAKE2b does the same as SHA256 does, but over a BLAKE2b-256 digest.
func BLAKE2b(data []byte) uint64 {
	digest := blake2b.Sum256(data)
	return prefix48(digest[:])
}

func XXHash(data []byte) uint64 {
	return xxhash.Sum64(data) & mask48
}

func Murmur3(data []byte) uint64 {
	return murmur3.Sum64(data) & mask48
}

func prefix48(digest []byte) uint64 {
	var buff [8]byte
	copy(buff[2:], digest[:6])

	return binary.BigEndian.Uint64(buff[:])
}
