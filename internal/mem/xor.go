// Package mem provides byte-slice helpers for the sponge.
package mem

// XORInPlace sets dst[i] ^= src[i] for each i. src must be at least as long as dst.
func XORInPlace(dst, src []byte) {
	for i, s := range src[:len(dst)] {
		dst[i] ^= s
	}
}
