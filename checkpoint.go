package fips202

import (
	"encoding"
	"encoding/binary"
)

// The checkpoint encoding is an exact copy of the context and carries no compatibility guarantee across builds.
const (
	magic          = "fips202\x01"
	headerSize     = len(magic) + 2 + 6
	checkpointSize = headerSize + 2*stateSize
)

var (
	_ encoding.BinaryMarshaler   = (*Context)(nil)
	_ encoding.BinaryAppender    = (*Context)(nil)
	_ encoding.BinaryUnmarshaler = (*Context)(nil)
)

// MarshalBinary checkpoints a context which is still absorbing. It returns ErrNotAbsorbing before Begin or after End.
func (c *Context) MarshalBinary() ([]byte, error) {
	return c.AppendBinary(make([]byte, 0, checkpointSize))
}

// AppendBinary appends a checkpoint of an absorbing context to b.
func (c *Context) AppendBinary(b []byte) ([]byte, error) {
	if c.p.rate == 0 || c.done {
		return b, ErrNotAbsorbing
	}

	b = append(b, magic...)
	b = binary.BigEndian.AppendUint16(b, uint16(c.p.variant))
	b = append(b, byte(c.p.rate), byte(c.p.size), c.p.domain, c.p.domainBits, 0, byte(c.n))
	b = append(b, c.state[:]...)
	b = append(b, c.buf[:]...)
	return b, nil
}

// UnmarshalBinary restores a checkpoint produced by [Context.MarshalBinary]. On error the context is unchanged.
func (c *Context) UnmarshalBinary(b []byte) error {
	if len(b) != checkpointSize || string(b[:len(magic)]) != magic {
		return ErrInvalidCheckpoint
	}
	b = b[len(magic):]

	p := params{
		variant:    Variant(binary.BigEndian.Uint16(b)),
		rate:       int(b[2]),
		size:       int(b[3]),
		domain:     b[4],
		domainBits: b[5],
	}
	done, n := b[6], int(b[7])
	if !p.valid() || done != 0 || n >= p.rate {
		return ErrInvalidCheckpoint
	}
	b = b[8:]

	c.p = p
	c.done = false
	c.n = n
	copy(c.state[:], b[:stateSize])
	copy(c.buf[:], b[stateSize:])
	return nil
}
