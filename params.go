package fips202

const (
	// stateSize is the size of the Keccak-f[1600] state in bytes.
	stateSize = 200

	// maxRawSize is the largest digest which fits in a single squeezed block (d <= 200 - 2d).
	maxRawSize = 66

	// dsSHA3 is the SHA3 domain suffix "01", packed LSB-first.
	dsSHA3     = 0x02
	dsSHA3Bits = 2
)

// params is one row of the parameter table.
type params struct {
	variant    Variant
	rate       int   // bytes absorbed per permutation
	size       int   // digest bytes
	domain     byte  // domain suffix bits, LSB-first
	domainBits uint8 // number of domain suffix bits
}

var table = [...]params{
	{variant: SHA3_224, rate: 144, size: 28, domain: dsSHA3, domainBits: dsSHA3Bits},
	{variant: SHA3_256, rate: 136, size: 32, domain: dsSHA3, domainBits: dsSHA3Bits},
	{variant: SHA3_384, rate: 104, size: 48, domain: dsSHA3, domainBits: dsSHA3Bits},
	{variant: SHA3_512, rate: 72, size: 64, domain: dsSHA3, domainBits: dsSHA3Bits},
}

// lookup returns the parameter row for a SHA3 variant.
func lookup(v Variant) (params, bool) {
	for _, p := range table {
		if p.variant == v {
			return p, true
		}
	}
	return params{}, false
}

// raw returns the parameter row for raw Keccak with a d-byte digest, or false if d is out of range.
func raw(d int) (params, bool) {
	if d < 1 || d > maxRawSize {
		return params{}, false
	}
	return params{variant: Keccak, rate: stateSize - 2*d, size: d}, true
}

// valid reports whether p is a row this package would install.
func (p params) valid() bool {
	var want params
	var ok bool
	if p.variant == Keccak {
		want, ok = raw(p.size)
	} else {
		want, ok = lookup(p.variant)
	}
	return ok && p == want
}
