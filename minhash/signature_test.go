package minhash

import (
	"errors"
	"math"
	"testing"
)

func TestCompare(t *testing.T) {
	a := Signature{1, 2, 3, 4}
	b := Signature{1, 9, 3, 8}
	got, err := Compare(a, b)
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if got != 0.5 {
		t.Fatalf("Compare = %v, want 0.5", got)
	}

	if _, err := Compare(a, b[:3]); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("Compare(len 4, len 3) err = %v, want ErrSignatureMismatch", err)
	}
	if got, err := Compare(Signature{}, nil); err != nil || got != 0 {
		t.Fatalf("Compare(empty, empty) = %v, %v; want 0, nil", got, err)
	}
}

func TestDigestString(t *testing.T) {
	cases := map[Digest]string{
		0:        "0000000000000000",
		0xabc:    "0000000000000abc",
		Infinity: "ffffffffffffffff",
	}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Errorf("Digest(%d).String() = %q, want %q", uint64(d), got, want)
		}
	}
}

func TestDecodeSignature(t *testing.T) {
	sig := Signature{0, 1, math.MaxUint64, 0x0102030405060708}
	blob := EncodeSignature(sig)
	if len(blob) != 32 {
		t.Fatalf("blob length = %d, want 32", len(blob))
	}
	if blob[31] != 0x08 || blob[24] != 0x01 {
		t.Fatalf("blob is not big-endian: % x", blob[24:])
	}
	got, err := DecodeSignature(blob)
	if err != nil {
		t.Fatalf("DecodeSignature failed: %v", err)
	}
	if sim, err := Compare(sig, got); err != nil || sim != 1 {
		t.Fatalf("decoded signature differs: %v (%v)", got, err)
	}

	if _, err := DecodeSignature(make([]byte, 9)); err == nil {
		t.Fatalf("expected error for 9-byte blob")
	}
	if empty, err := DecodeSignature(nil); err != nil || len(empty) != 0 {
		t.Fatalf("DecodeSignature(nil) = %v, %v; want empty, nil", empty, err)
	}
}
