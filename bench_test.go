package fips202_test

import (
	"testing"

	"github.com/codahale/fips202"
	"github.com/codahale/fips202/internal/testdata"
	"golang.org/x/crypto/sha3"
)

func BenchmarkContext(b *testing.B) {
	for _, v := range variants {
		b.Run(v.String(), func(b *testing.B) {
			for _, size := range testdata.Sizes {
				b.Run(size.Name, func(b *testing.B) {
					input := make([]byte, size.N)
					out := make([]byte, v.Size())
					c := fips202.NewContext()

					b.ReportAllocs()
					b.SetBytes(int64(size.N))
					for b.Loop() {
						c.Begin(v)
						c.Update(input)
						_, _ = c.End(out)
					}
				})
			}
		})
	}
}

func BenchmarkSum256(b *testing.B) {
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			input := make([]byte, size.N)

			b.ReportAllocs()
			b.SetBytes(int64(size.N))
			for b.Loop() {
				fips202.Sum256(input)
			}
		})
	}
}

func BenchmarkXCrypto256(b *testing.B) {
	for _, size := range testdata.Sizes {
		b.Run(size.Name, func(b *testing.B) {
			input := make([]byte, size.N)
			h := sha3.New256()

			b.ReportAllocs()
			b.SetBytes(int64(size.N))
			for b.Loop() {
				h.Reset()
				_, _ = h.Write(input)
				h.Sum(nil)
			}
		})
	}
}

func BenchmarkUpdateSmallChunks(b *testing.B) {
	input := make([]byte, 64*1024)
	out := make([]byte, 32)
	c := fips202.NewContext()

	b.ReportAllocs()
	b.SetBytes(int64(len(input)))
	for b.Loop() {
		c.Begin(fips202.SHA3_256)
		for i := 0; i < len(input); i += 13 {
			c.Update(input[i:min(i+13, len(input))])
		}
		_, _ = c.End(out)
	}
}
