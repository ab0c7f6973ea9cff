// Package tournamentid generates sortable tournament identifiers:
// UUIDv7 values rendered as 26-character Crockford base32 strings.
// Lexicographic order follows creation time, so log lines and result
// files sort chronologically by ID.
package tournamentid

import (
	"crypto/rand"
	"fmt"
	"time"
)

// Crockford's base32 alphabet. No i, l, o or u, so IDs survive being
// read aloud or retyped.
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// RandSource supplies the random tail of an ID. Injected in tests for
// reproducible values; nil means crypto/rand.
type RandSource interface {
	IntN(n int) int
}

// Generator produces tournament IDs from a configurable random source.
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a generator. Pass nil to use crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// New creates a tournament ID using crypto/rand.
func New() string {
	return NewGenerator(nil).Generate()
}

// Generate creates a tournament ID from the generator's random source.
func (g *Generator) Generate() string {
	return encodeBase32(g.newUUIDv7())
}

// newUUIDv7 builds a 128-bit UUIDv7: a 48-bit millisecond timestamp,
// then random bits with the version and variant fields forced.
func (g *Generator) newUUIDv7() [16]byte {
	var uuid [16]byte

	now := time.Now().UnixMilli()
	uuid[0] = byte(now >> 40)
	uuid[1] = byte(now >> 32)
	uuid[2] = byte(now >> 24)
	uuid[3] = byte(now >> 16)
	uuid[4] = byte(now >> 8)
	uuid[5] = byte(now)

	if g.randSource != nil {
		for i := 6; i < 16; i++ {
			uuid[i] = byte(g.randSource.IntN(256))
		}
	} else {
		if _, err := rand.Read(uuid[6:]); err != nil {
			panic("failed to generate random bytes: " + err.Error())
		}
	}

	// Version 7, variant 10.
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}

// encodeBase32 renders 128 bits as 26 base32 characters, five bits per
// character, reading the bytes big-endian.
func encodeBase32(data [16]byte) string {
	result := make([]byte, 26)
	for i := 0; i < 26; i++ {
		bitOffset := i * 5
		byteIndex := bitOffset / 8
		bitIndex := bitOffset % 8

		var value uint8
		if byteIndex < 16 {
			if bitIndex <= 3 {
				value = (data[byteIndex] >> (3 - bitIndex)) & 0x1f
			} else {
				value = (data[byteIndex] << (bitIndex - 3)) & 0x1f
				if byteIndex+1 < 16 {
					value |= data[byteIndex+1] >> (11 - bitIndex)
				}
			}
		}
		result[i] = alphabet[value]
	}
	return string(result)
}

// Validate checks that id is a well-formed tournament ID.
func Validate(id string) error {
	if len(id) != 26 {
		return fmt.Errorf("tournament ID must be exactly 26 characters, got %d", len(id))
	}

	// 26 base32 characters hold 130 bits; the first character must stay
	// within 0-7 so the value fits in 128.
	if id[0] > '7' {
		return fmt.Errorf("tournament ID first character must be 0-7, got %c", id[0])
	}

	for i, char := range id {
		valid := false
		for _, validChar := range alphabet {
			if char == validChar {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
