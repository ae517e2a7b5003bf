package fips202

import (
	"github.com/codahale/fips202/hazmat/keccak"
	"github.com/codahale/fips202/internal/mem"
)

// absorb XORs the first rate bytes of block into the state and permutes it. The capacity is never touched.
func (c *Context) absorb(block []byte) {
	mem.XORInPlace(c.state[:c.p.rate], block[:c.p.rate])
	keccak.F1600(&c.state)
}

// pad turns the pending bytes into the final block: the domain suffix, the first pad10*1 bit directly above it, zeros,
// and the last pad10*1 bit at the end of the rate. The pending length is always less than the rate, so the suffix byte
// fits; when it is the last byte of the block, both pad bits land in it.
func (c *Context) pad() {
	clear(c.buf[c.n:c.p.rate])
	c.buf[c.n] = c.p.domain
	c.buf[c.n] |= 1 << c.p.domainBits
	c.buf[c.p.rate-1] |= 0x80
}

// squeeze copies the digest out of the state. The digest always fits in one block.
func (c *Context) squeeze(out []byte) {
	copy(out[:c.p.size], c.state[:c.p.size])
}
