package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/codahale/fips202"
)

var errMalformedLine = errors.New("malformed checksum line")

// algorithm is a digest selected on the command line.
type algorithm struct {
	bits   int
	keccak bool
}

func newAlgorithm(bits int, keccak bool) (algorithm, error) {
	switch bits {
	case 224, 256, 384, 512:
		return algorithm{bits: bits, keccak: keccak}, nil
	default:
		return algorithm{}, fmt.Errorf("unsupported digest size %d", bits)
	}
}

func (a algorithm) New() hash.Hash {
	if a.keccak {
		return fips202.NewKeccak(a.bits / 8)
	}
	return fips202.New(fips202.Variant(a.bits))
}

func (a algorithm) String() string {
	if a.keccak {
		return fmt.Sprintf("Keccak-%d", a.bits)
	}
	return fips202.Variant(a.bits).String()
}

// sumReader hashes everything read from r, returning the digest and the number of bytes read.
func sumReader(h hash.Hash, r io.Reader) ([]byte, int64, error) {
	n, err := io.Copy(h, r)
	if err != nil {
		return nil, n, err
	}
	return h.Sum(nil), n, nil
}

// formatLine renders a digest in the coreutils "<hex>  <name>" format.
func formatLine(sum []byte, name string) string {
	return hex.EncodeToString(sum) + "  " + name
}

// parseLine parses a line written by formatLine, accepting the binary-mode "*" marker before the name.
func parseLine(line string, size int) ([]byte, string, error) {
	digest, name, ok := strings.Cut(line, " ")
	if !ok || len(digest) != 2*size {
		return nil, "", errMalformedLine
	}

	name, ok = strings.CutPrefix(name, " ")
	if !ok {
		name, ok = strings.CutPrefix(name, "*")
	}
	if !ok || name == "" {
		return nil, "", errMalformedLine
	}

	sum, err := hex.DecodeString(digest)
	if err != nil {
		return nil, "", errMalformedLine
	}
	return sum, name, nil
}

// check verifies each checksum line read from r, reporting "<name>: OK" or "<name>: FAILED" to out. It returns the
// number of mismatched or unreadable files.
func check(alg algorithm, r io.Reader, sumOf func(name string) ([]byte, error), out io.Writer) (int, error) {
	size := alg.bits / 8
	failed := 0

	s := bufio.NewScanner(r)
	for line := 1; s.Scan(); line++ {
		text := strings.TrimRight(s.Text(), "\r")
		if text == "" {
			continue
		}

		want, name, err := parseLine(text, size)
		if err != nil {
			return failed, fmt.Errorf("line %d: %w", line, err)
		}

		status := "OK"
		got, err := sumOf(name)
		if err != nil || !bytes.Equal(got, want) {
			status = "FAILED"
			failed++
		}

		if _, err := fmt.Fprintf(out, "%s: %s\n", name, status); err != nil {
			return failed, err
		}
	}

	return failed, s.Err()
}
