package minhash

import (
	"crypto"
	_ "crypto/md5" // link the default hash
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"strconv"
)

// DefaultHashes is the default signature length. The estimator's standard
// error is 1/sqrt(K), about 5% at 400.
const DefaultHashes = 400

// MaxHashes bounds signature lengths accepted from SQL, flags and config.
const MaxHashes = 1 << 16

// ErrHashUnavailable reports a hash function that is not linked into the
// binary or whose output is too short to yield a Digest.
var ErrHashUnavailable = errors.New("minhash: hash function unavailable")

// Option configures a Hasher.
type Option func(*Hasher)

// WithHash selects the underlying hash function. The package providing it
// must be linked into the binary (e.g. import _ "crypto/sha256").
func WithHash(h crypto.Hash) Option {
	return func(hs *Hasher) { hs.hash = h }
}

// Hasher computes MinHash digests and signatures. It is immutable and safe
// for concurrent use; every call creates its own hash state.
type Hasher struct {
	hash crypto.Hash
}

// New returns a Hasher, failing when the selected hash cannot be used.
func New(opts ...Option) (*Hasher, error) {
	h := &Hasher{hash: crypto.MD5}
	for _, opt := range opts {
		opt(h)
	}
	if !h.hash.Available() {
		return nil, fmt.Errorf("%w: %v", ErrHashUnavailable, h.hash)
	}
	if h.hash.Size() < digestSize {
		return nil, fmt.Errorf("%w: %v digest is %d bytes, need at least %d", ErrHashUnavailable, h.hash, h.hash.Size(), digestSize)
	}
	return h, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Hasher {
	h, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// Hash returns the underlying hash function.
func (h *Hasher) Hash() crypto.Hash { return h.hash }

// Once returns the minimum digest of Canonical(element)+Canonical(salt) over
// all elements, or Infinity when elements is empty.
func (h *Hasher) Once(elements []any, salt any) Digest {
	return h.once(Strings(elements), Canonical(salt))
}

// Signature returns the minimum digests for salts "0".."k-1". A non-positive
// k yields an empty signature.
func (h *Hasher) Signature(elements []any, k int) Signature {
	return h.signature(Strings(elements), k)
}

// Similarity estimates the Jaccard similarity of a and b from two signatures
// of length k. A non-positive k yields 0.
func (h *Hasher) Similarity(a, b []any, k int) float64 {
	if k <= 0 {
		return 0
	}
	sim, _ := Compare(h.Signature(a, k), h.Signature(b, k))
	return sim
}

func (h *Hasher) signature(elements []string, k int) Signature {
	if k <= 0 {
		return Signature{}
	}
	sig := make(Signature, k)
	state := h.hash.New()
	buf := make([]byte, 0, h.hash.Size())
	for i := range sig {
		sig[i] = minDigest(state, buf, elements, strconv.Itoa(i))
	}
	return sig
}

func (h *Hasher) once(elements []string, salt string) Digest {
	return minDigest(h.hash.New(), make([]byte, 0, h.hash.Size()), elements, salt)
}

// minDigest resets state before every element so no input leaks between
// digests.
func minDigest(state hash.Hash, buf []byte, elements []string, salt string) Digest {
	least := Infinity
	for _, e := range elements {
		state.Reset()
		state.Write([]byte(e))
		state.Write([]byte(salt))
		sum := state.Sum(buf[:0])
		if d := Digest(binary.BigEndian.Uint64(sum[:digestSize])); d < least {
			least = d
		}
	}
	return least
}

var defaultHasher = MustNew()

// Once calls Hasher.Once on the default MD5 hasher.
func Once(elements []any, salt any) Digest { return defaultHasher.Once(elements, salt) }

// MinSignature calls Hasher.Signature on the default MD5 hasher.
func MinSignature(elements []any, k int) Signature { return defaultHasher.Signature(elements, k) }

// Similarity calls Hasher.Similarity on the default MD5 hasher.
func Similarity(a, b []any, k int) float64 { return defaultHasher.Similarity(a, b, k) }
