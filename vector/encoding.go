package vector

import (
	"encoding/binary"
	"fmt"
	"math"
)

const float32Size = 4

// EncodeEmbedding packs vec as little-endian IEEE 754 float32 values without
// a length prefix; the dimension is implied by the BLOB size.
func EncodeEmbedding(vec []float32) ([]byte, error) {
	if len(vec) == 0 {
		return nil, nil
	}
	b := make([]byte, len(vec)*float32Size)
	for i, v := range vec {
		binary.LittleEndian.PutUint32(b[i*float32Size:], math.Float32bits(v))
	}
	return b, nil
}

// DecodeEmbedding reverses EncodeEmbedding. An empty BLOB decodes to a nil
// vector.
func DecodeEmbedding(b []byte) ([]float32, error) {
	if len(b) == 0 {
		return nil, nil
	}
	if len(b)%float32Size != 0 {
		return nil, fmt.Errorf("vector: invalid embedding blob length %d (not multiple of %d)", len(b), float32Size)
	}
	vec := make([]float32, len(b)/float32Size)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*float32Size:]))
	}
	return vec, nil
}
