package entropy

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"

	"hacspec/internal/util/memzero"
)

// ErrEmptySeed is returned by Deterministic for a zero-length seed.
var ErrEmptySeed = errors.New("entropy: empty seed")

const infoPrefix = "hacspec|entropy|"

// System returns the operating system's cryptographically secure source.
func System() io.Reader { return rand.Reader }

// Deterministic returns a reader whose output depends only on seed and label.
// Different labels give independent streams for the same seed.
//
// The returned reader is not safe for concurrent use.
func Deterministic(seed []byte, label string) (io.Reader, error) {
	if len(seed) == 0 {
		return nil, ErrEmptySeed
	}

	okm := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	defer memzero.Zero(okm)
	r := hkdf.New(sha256.New, seed, nil, []byte(infoPrefix+label))
	if _, err := io.ReadFull(r, okm); err != nil {
		return nil, fmt.Errorf("derive stream key: %w", err)
	}

	c, err := chacha20.NewUnauthenticatedCipher(okm[:chacha20.KeySize], okm[chacha20.KeySize:])
	if err != nil {
		return nil, fmt.Errorf("init stream: %w", err)
	}
	return &stream{c: c}, nil
}

type stream struct {
	c *chacha20.Cipher
}

// Read fills p with keystream bytes. It never returns an error.
func (s *stream) Read(p []byte) (int, error) {
	memzero.Zero(p)
	s.c.XORKeyStream(p, p)
	return len(p), nil
}
