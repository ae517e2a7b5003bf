package fips202

import "fmt"

// Context is an incremental hash computation. The zero value is ready for [Context.Begin].
//
// A Context must not be used concurrently. After a successful [Context.End] it must be begun again before further use.
type Context struct {
	state [stateSize]byte
	buf   [stateSize]byte // pending input, always less than one rate
	n     int             // pending length
	p     params
	done  bool
}

// NewContext returns a new, zeroed context.
func NewContext() *Context {
	return new(Context)
}

// Begin resets the context to compute the given SHA3 variant. It panics if v is not one of SHA3_224, SHA3_256,
// SHA3_384, or SHA3_512.
func (c *Context) Begin(v Variant) {
	p, ok := lookup(v)
	if !ok {
		panic(fmt.Sprintf("fips202: unknown variant %d", int(v)))
	}
	c.reset(p)
}

// BeginRaw resets the context to compute raw Keccak with a d-byte digest and a rate of 200-2d bytes, with no domain
// separation. It panics unless 1 <= d <= 66.
func (c *Context) BeginRaw(d int) {
	p, ok := raw(d)
	if !ok {
		panic(fmt.Sprintf("fips202: invalid raw Keccak digest size %d", d))
	}
	c.reset(p)
}

func (c *Context) reset(p params) {
	clear(c.state[:])
	clear(c.buf[:])
	c.n = 0
	c.p = p
	c.done = false
}

// Update absorbs p. Chunk boundaries do not affect the digest.
func (c *Context) Update(p []byte) {
	c.mustBeAbsorbing()

	r := c.p.rate
	if c.n+len(p) < r {
		c.n += copy(c.buf[c.n:r], p)
		return
	}

	// Complete the pending block.
	used := copy(c.buf[c.n:r], p)
	c.absorb(c.buf[:r])
	p = p[used:]

	// Absorb whole blocks directly from the input.
	for len(p) >= r {
		c.absorb(p[:r])
		p = p[r:]
	}

	c.n = copy(c.buf[:r], p)
}

// End pads and absorbs the pending input and writes the digest into out, returning its length. If out is shorter than
// the digest, End returns ErrInsufficientOutputBuffer, leaving both out and the context untouched.
func (c *Context) End(out []byte) (int, error) {
	c.mustBeAbsorbing()

	if len(out) < c.p.size {
		return 0, ErrInsufficientOutputBuffer
	}

	c.pad()
	c.absorb(c.buf[:c.p.rate])
	c.squeeze(out)
	c.done = true

	return c.p.size, nil
}

// Destroy zeroes the context, including any partial state and pending input. The context must be begun again before
// further use.
func (c *Context) Destroy() {
	clear(c.state[:])
	clear(c.buf[:])
	c.n = 0
	c.p = params{}
	c.done = false
}

// Variant returns the variant the context was begun with.
func (c *Context) Variant() Variant {
	return c.p.variant
}

// Size returns the digest size in bytes.
func (c *Context) Size() int {
	return c.p.size
}

// BlockSize returns the rate in bytes.
func (c *Context) BlockSize() int {
	return c.p.rate
}

// Clone returns an independent copy of the context.
func (c *Context) Clone() *Context {
	d := *c
	return &d
}

func (c *Context) mustBeAbsorbing() {
	if c.p.rate == 0 {
		panic("fips202: context used before Begin")
	}

	if c.done {
		panic("fips202: context used after End")
	}
}
