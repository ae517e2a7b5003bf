package fips202

import (
	"encoding"
	"hash"
)

// New returns a new hash.Hash computing the given SHA3 variant. It panics if v is not a SHA3 variant.
func New(v Variant) hash.Hash {
	d := new(digest)
	d.c.Begin(v)
	return d
}

// New224 returns a new hash.Hash computing SHA3-224.
func New224() hash.Hash { return New(SHA3_224) }

// New256 returns a new hash.Hash computing SHA3-256.
func New256() hash.Hash { return New(SHA3_256) }

// New384 returns a new hash.Hash computing SHA3-384.
func New384() hash.Hash { return New(SHA3_384) }

// New512 returns a new hash.Hash computing SHA3-512.
func New512() hash.Hash { return New(SHA3_512) }

// NewKeccak returns a new hash.Hash computing raw Keccak with a size-byte digest. NewKeccak(32) is the legacy
// Keccak-256 used by Ethereum. It panics unless 1 <= size <= 66.
func NewKeccak(size int) hash.Hash {
	d := new(digest)
	d.c.BeginRaw(size)
	return d
}

// Sum224 returns the SHA3-224 digest of data.
func Sum224(data []byte) (sum [28]byte) {
	oneShot(sha3Row(SHA3_224), data, sum[:])
	return sum
}

// Sum256 returns the SHA3-256 digest of data.
func Sum256(data []byte) (sum [32]byte) {
	oneShot(sha3Row(SHA3_256), data, sum[:])
	return sum
}

// Sum384 returns the SHA3-384 digest of data.
func Sum384(data []byte) (sum [48]byte) {
	oneShot(sha3Row(SHA3_384), data, sum[:])
	return sum
}

// Sum512 returns the SHA3-512 digest of data.
func Sum512(data []byte) (sum [64]byte) {
	oneShot(sha3Row(SHA3_512), data, sum[:])
	return sum
}

// SumKeccak256 returns the raw Keccak-256 digest of data.
func SumKeccak256(data []byte) (sum [32]byte) {
	p, _ := raw(len(sum))
	oneShot(p, data, sum[:])
	return sum
}

func sha3Row(v Variant) params {
	p, _ := lookup(v)
	return p
}

func oneShot(p params, data, out []byte) {
	var c Context
	c.reset(p)
	c.Update(data)
	_, _ = c.End(out)
	c.Destroy()
}

// digest adapts a Context to hash.Hash. Sum finalizes a copy, so the running hash can keep absorbing.
type digest struct {
	c Context
}

var (
	_ hash.Hash                  = (*digest)(nil)
	_ encoding.BinaryMarshaler   = (*digest)(nil)
	_ encoding.BinaryUnmarshaler = (*digest)(nil)
)

func (d *digest) Write(p []byte) (int, error) {
	d.c.Update(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	dup := d.c
	var out [maxRawSize]byte
	n, _ := dup.End(out[:])
	dup.Destroy()
	return append(b, out[:n]...)
}

func (d *digest) Reset() {
	d.c.reset(d.c.p)
}

func (d *digest) Size() int {
	return d.c.Size()
}

func (d *digest) BlockSize() int {
	return d.c.BlockSize()
}

func (d *digest) MarshalBinary() ([]byte, error) {
	return d.c.MarshalBinary()
}

// UnmarshalBinary restores a checkpoint of the same function. A checkpoint of any other variant or digest size is
// rejected with ErrInvalidCheckpoint.
func (d *digest) UnmarshalBinary(b []byte) error {
	var c Context
	if err := c.UnmarshalBinary(b); err != nil {
		return err
	}

	if c.p != d.c.p {
		return ErrInvalidCheckpoint
	}

	d.c = c
	return nil
}
