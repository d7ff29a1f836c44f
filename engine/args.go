package engine

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/viant/sqlite-sim/minhash"
	"github.com/viant/sqlite-sim/vector"
)

// numbers decodes a vector argument: a JSON array of numbers (TEXT) or a
// float32 embedding (BLOB). A nil result with nil error means SQL NULL.
func numbers(arg driver.Value) ([]float64, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case string:
		return jsonNumbers([]byte(v))
	case []byte:
		emb, err := vector.DecodeEmbedding(v)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(emb))
		for i, f := range emb {
			out[i] = float64(f)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported vector argument type %T; want JSON array TEXT or BLOB", arg)
	}
}

func jsonNumbers(text []byte) ([]float64, error) {
	var raw []*float64
	if err := json.Unmarshal(text, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON number array: %w", err)
	}
	if raw == nil {
		return nil, errors.New("invalid JSON number array: got null")
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		if v == nil {
			return nil, fmt.Errorf("invalid JSON number array: element %d is null", i)
		}
		out[i] = *v
	}
	return out, nil
}

// embedding decodes a float32 BLOB argument; nil means SQL NULL.
func embedding(arg driver.Value) ([]float32, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		emb, err := vector.DecodeEmbedding(v)
		if emb == nil && err == nil {
			emb = []float32{}
		}
		return emb, err
	default:
		return nil, fmt.Errorf("unsupported argument type %T for embedding; want BLOB", arg)
	}
}

// elements decodes a JSON array of arbitrary values. Numbers keep their
// literal text so that 1 and 1.0 remain distinct elements.
func elements(arg driver.Value) ([]any, bool, error) {
	var text []byte
	switch v := arg.(type) {
	case nil:
		return nil, false, nil
	case string:
		text = []byte(v)
	case []byte:
		text = v
	default:
		return nil, false, fmt.Errorf("unsupported list argument type %T; want JSON array", arg)
	}
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	out := []any{}
	if err := dec.Decode(&out); err != nil {
		return nil, false, fmt.Errorf("invalid JSON array: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false, errors.New("invalid JSON array: trailing data after array")
	}
	for i, e := range out {
		switch e.(type) {
		case map[string]any, []any:
			// nested values hash by their compact JSON text
			b, err := json.Marshal(e)
			if err != nil {
				return nil, false, err
			}
			out[i] = string(b)
		}
	}
	return out, true, nil
}

// hashes decodes the optional K argument, bounded by minhash.MaxHashes.
func hashes(args []driver.Value, pos int) (int, error) {
	if len(args) <= pos || args[pos] == nil {
		return minhash.DefaultHashes, nil
	}
	var k int64
	switch v := args[pos].(type) {
	case int64:
		k = v
	case float64:
		if v != math.Trunc(v) || math.Abs(v) > minhash.MaxHashes {
			return 0, fmt.Errorf("hashes must be an integer of at most %d, got %v", minhash.MaxHashes, v)
		}
		k = int64(v)
	default:
		return 0, fmt.Errorf("unsupported hashes argument type %T; want INTEGER", args[pos])
	}
	if k > minhash.MaxHashes {
		return 0, fmt.Errorf("hashes must be at most %d, got %d", minhash.MaxHashes, k)
	}
	return int(k), nil
}

// realValue converts a metric result to a SQL value; NaN has no REAL
// representation and becomes NULL.
func realValue(f float64) driver.Value {
	if math.IsNaN(f) {
		return nil
	}
	return f
}
