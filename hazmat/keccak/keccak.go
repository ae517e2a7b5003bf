// Package keccak provides the Keccak-f[1600] permutation.
//
// The state is 200 bytes holding 25 64-bit lanes in little-endian order, lane (x, y) at byte offset 8*(x+5y). The
// permutation loads the lanes into canonical word order, runs the rounds, and stores them back, so callers can XOR
// input into and copy output out of the byte view on any host.
package keccak

import "encoding/binary"

// Rounds is the number of rounds of Keccak-f[1600].
const Rounds = 24

// F1600 applies the Keccak-f[1600] permutation to the state.
func F1600(state *[200]byte) {
	f1600Generic(state, Rounds)
}

// f1600Generic applies the last n rounds of Keccak-f[1600] (Keccak-p[1600, n]) to the state.
func f1600Generic(state *[200]byte, n int) {
	var a [25]uint64
	load(&a, state)
	permute(&a, n)
	store(state, &a)
}

// load reads the lanes of b into canonical word order.
func load(a *[25]uint64, b *[200]byte) {
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(b[8*i:])
	}
}

// store writes the lanes of a back into their byte positions.
func store(b *[200]byte, a *[25]uint64) {
	for i := range a {
		binary.LittleEndian.PutUint64(b[8*i:], a[i])
	}
}
