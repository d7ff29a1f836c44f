package minhash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Digest is the first eight bytes of a hash output read as a big-endian
// unsigned integer. Digests are ordered numerically.
type Digest uint64

// Infinity is the minimum of an empty collection.
const Infinity = Digest(math.MaxUint64)

// String renders d as 16 lowercase hex digits.
func (d Digest) String() string {
	return fmt.Sprintf("%016x", uint64(d))
}

// Signature holds one minimum digest per salt index 0..K-1.
type Signature []Digest

// ErrSignatureMismatch reports signatures that were not built with the same K.
var ErrSignatureMismatch = errors.New("minhash: signatures differ in length")

const digestSize = 8

// Compare returns the fraction of positions on which a and b agree. Two empty
// signatures compare as 0.
func Compare(a, b Signature) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrSignatureMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	matches := 0
	for i := range a {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(len(a)), nil
}

// EncodeSignature packs sig as consecutive big-endian uint64 values.
func EncodeSignature(sig Signature) []byte {
	b := make([]byte, len(sig)*digestSize)
	for i, d := range sig {
		binary.BigEndian.PutUint64(b[i*digestSize:], uint64(d))
	}
	return b
}

// DecodeSignature reverses EncodeSignature.
func DecodeSignature(b []byte) (Signature, error) {
	if len(b)%digestSize != 0 {
		return nil, fmt.Errorf("minhash: invalid signature blob length %d (not multiple of %d)", len(b), digestSize)
	}
	sig := make(Signature, len(b)/digestSize)
	for i := range sig {
		sig[i] = Digest(binary.BigEndian.Uint64(b[i*digestSize:]))
	}
	return sig, nil
}
