// Package strgen generates random strings by sampling characters from
// an ordered pool.
package strgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
)

// ErrRandomSource is returned when the random byte source fails. It
// wraps the underlying read error.
var ErrRandomSource = errors.New("random source failure")

// Generate creates a string of `length` characters, each drawn
// independently from `pool` using the OS random source. A zero length
// or an empty pool yields the empty string.
func Generate(pool []rune, length int) (string, error) {
	return GenerateFrom(rand.Reader, pool, length)
}

// GenerateFrom is Generate with an explicit random byte source.
//
// Each random byte b selects pool index round(b * (len(pool)-1) / 255),
// rounding half away from zero. The mapping is exactly uniform only
// when the 256 byte values divide evenly across the pool; otherwise the
// first and last indices cover roughly half-width byte ranges, a
// bounded bias that is accepted here.
func GenerateFrom(src io.Reader, pool []rune, length int) (string, error) {
	if length <= 0 || len(pool) == 0 {
		return "", nil
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRandomSource, err)
	}

	scale := float64(len(pool)-1) / 255.0
	out := make([]rune, length)
	for i, b := range buf {
		out[i] = pool[int(math.Round(float64(b)*scale))]
	}
	return string(out), nil
}
