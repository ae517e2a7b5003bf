// Package fips202 implements the SHA3-224, SHA3-256, SHA3-384, and SHA3-512 hash functions of FIPS 202, plus raw
// Keccak (no domain separation) for conformance testing against the Keccak known-answer tests.
//
// A [Context] is driven through Begin, any number of Update calls, and a single End. The [hash.Hash] constructors and
// Sum functions wrap that lifecycle for ordinary use.
package fips202

import (
	"errors"
	"fmt"
)

// ErrInsufficientOutputBuffer is returned by [Context.End] when the output buffer is smaller than the digest. Nothing
// is written and the context is left unchanged.
var ErrInsufficientOutputBuffer = errors.New("fips202: insufficient output buffer")

// ErrInvalidCheckpoint is returned by [Context.UnmarshalBinary] when the input is not a checkpoint of a context that is
// still absorbing, and by the hash.Hash UnmarshalBinary when the checkpoint is of a different function.
var ErrInvalidCheckpoint = errors.New("fips202: invalid checkpoint")

// ErrNotAbsorbing is returned by [Context.MarshalBinary] when the context was never begun or has already ended.
var ErrNotAbsorbing = errors.New("fips202: context is not absorbing")

// Variant selects a hash function.
type Variant int

const (
	// Keccak is raw Keccak with a caller-chosen digest size. It is only reachable through [Context.BeginRaw] and
	// [NewKeccak].
	Keccak Variant = 0

	SHA3_224 Variant = 224 //nolint:revive // matches crypto.SHA3_224
	SHA3_256 Variant = 256 //nolint:revive // matches crypto.SHA3_256
	SHA3_384 Variant = 384 //nolint:revive // matches crypto.SHA3_384
	SHA3_512 Variant = 512 //nolint:revive // matches crypto.SHA3_512
)

// Size returns the digest size of v in bytes, or 0 for raw Keccak, whose size is chosen at Begin.
func (v Variant) Size() int {
	if p, ok := lookup(v); ok {
		return p.size
	}
	return 0
}

// BlockSize returns the rate of v in bytes, or 0 for raw Keccak.
func (v Variant) BlockSize() int {
	if p, ok := lookup(v); ok {
		return p.rate
	}
	return 0
}

func (v Variant) String() string {
	switch v {
	case Keccak:
		return "Keccak"
	case SHA3_224, SHA3_256, SHA3_384, SHA3_512:
		return fmt.Sprintf("SHA3-%d", int(v))
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}
