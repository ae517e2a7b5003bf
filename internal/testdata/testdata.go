// Package testdata provides deterministic inputs for tests and benchmarks.
package testdata

import (
	"bytes"
	"crypto/sha3"
)

// DRBG is a deterministic random bit generator based on SHAKE128.
type DRBG struct {
	h *sha3.SHAKE
}

// New returns a new DRBG instance initialized with the given customization string.
func New(customization string) *DRBG {
	h := sha3.NewSHAKE128()
	_, _ = h.Write([]byte(customization))
	return &DRBG{h}
}

// Data returns n bytes of deterministic data from the DRBG.
func (d *DRBG) Data(n int) []byte {
	b := make([]byte, n)
	_, _ = d.h.Read(b)
	return b
}

// Intn returns a deterministic value in [0, n).
func (d *DRBG) Intn(n int) int {
	var b [4]byte
	_, _ = d.h.Read(b[:])
	return int(uint32(b[0])|uint32(b[1])<<8|uint32(b[2])<<16|uint32(b[3])<<24) % n
}

// A3 returns the 1600-bit message of repeated 0xA3 bytes used by the NIST SHA3 examples.
func A3() []byte {
	return bytes.Repeat([]byte{0xA3}, 200)
}
