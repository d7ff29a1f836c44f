package engine

import (
	"database/sql/driver"
	"fmt"
	"sync"

	"github.com/viant/sqlite-sim/minhash"
	"github.com/viant/sqlite-sim/vector"
	sqlite "modernc.org/sqlite"
)

// Names of the scalar functions installed by RegisterSimilarityFunctions.
const (
	FuncCosineSimilarity    = "cosine_similarity"
	FuncEuclideanDistance   = "euclidean_distance"
	FuncEuclideanSimilarity = "euclidean_similarity"
	FuncVecCosine           = "vec_cosine"
	FuncVecL2               = "vec_l2"
	FuncMinHashOnce         = "minhash_once"
	FuncMinHashSignature    = "minhash_signature"
	FuncMinHashSimilarity   = "minhash_similarity"
	FuncMinHashCompare      = "minhash_compare"
)

type scalarFunc = func(*sqlite.FunctionContext, []driver.Value) (driver.Value, error)

// variadic registrations accept an optional trailing argument; the driver
// keys functions by name, so an arity cannot be registered twice.
const variadic = -1

type registration struct {
	name  string
	nArgs int32
	fn    scalarFunc
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSimilarityFunctions registers the similarity functions with the
// driver so they are available on connections opened after this call. The
// MinHash functions use h, or an MD5 hasher when h is nil.
//
// Registration is process-wide and happens once: later calls return the
// first call's result and their hasher is ignored.
func RegisterSimilarityFunctions(h *minhash.Hasher) error {
	registerOnce.Do(func() {
		if h == nil {
			if h, registerErr = minhash.New(); registerErr != nil {
				return
			}
		}
		registerErr = register(functions(h))
	})
	return registerErr
}

func register(regs []registration) error {
	for _, r := range regs {
		if err := sqlite.RegisterDeterministicScalarFunction(r.name, r.nArgs, r.fn); err != nil {
			return fmt.Errorf("engine: register %s/%d: %w", r.name, r.nArgs, err)
		}
	}
	return nil
}

func functions(h *minhash.Hasher) []registration {
	m := &minHashFuncs{hasher: h}
	return []registration{
		{FuncCosineSimilarity, 2, vectorFunc(FuncCosineSimilarity, vector.CosineSimilarity[float64])},
		{FuncEuclideanDistance, 2, vectorFunc(FuncEuclideanDistance, vector.EuclideanDistance[float64])},
		{FuncEuclideanSimilarity, 2, vectorFunc(FuncEuclideanSimilarity, vector.EuclideanSimilarity[float64])},
		{FuncVecCosine, 2, embeddingFunc(FuncVecCosine, vector.CosineSimilarity32)},
		{FuncVecL2, 2, embeddingFunc(FuncVecL2, vector.L2Distance32)},
		{FuncMinHashOnce, 2, m.once},
		{FuncMinHashSignature, variadic, m.signature},
		{FuncMinHashSimilarity, variadic, m.similarity},
		{FuncMinHashCompare, 2, compareFunc},
	}
}

func vectorFunc(name string, metric func(a, b []float64) (float64, error)) scalarFunc {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, err := numbers(args[0])
		if err != nil {
			return nil, fmt.Errorf("engine: %s: %w", name, err)
		}
		b, err := numbers(args[1])
		if err != nil {
			return nil, fmt.Errorf("engine: %s: %w", name, err)
		}
		if a == nil || b == nil {
			return nil, nil
		}
		v, err := metric(a, b)
		if err != nil {
			return nil, fmt.Errorf("engine: %s: %w", name, err)
		}
		return realValue(v), nil
	}
}

func embeddingFunc(name string, metric func(a, b []float32) (float64, error)) scalarFunc {
	return func(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
		a, err := embedding(args[0])
		if err != nil {
			return nil, fmt.Errorf("engine: %s: %w", name, err)
		}
		b, err := embedding(args[1])
		if err != nil {
			return nil, fmt.Errorf("engine: %s: %w", name, err)
		}
		if a == nil || b == nil {
			return nil, nil
		}
		v, err := metric(a, b)
		if err != nil {
			return nil, fmt.Errorf("engine: %s: %w", name, err)
		}
		return realValue(v), nil
	}
}

type minHashFuncs struct {
	hasher *minhash.Hasher
}

func (m *minHashFuncs) once(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	list, ok, err := elements(args[0])
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", FuncMinHashOnce, err)
	}
	if !ok {
		return nil, nil
	}
	return m.hasher.Once(list, args[1]).String(), nil
}

func (m *minHashFuncs) signature(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if err := arity(FuncMinHashSignature, args, 1, 2); err != nil {
		return nil, err
	}
	list, ok, err := elements(args[0])
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", FuncMinHashSignature, err)
	}
	if !ok {
		return nil, nil
	}
	k, err := hashes(args, 1)
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", FuncMinHashSignature, err)
	}
	return minhash.EncodeSignature(m.hasher.Signature(list, k)), nil
}

func (m *minHashFuncs) similarity(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	if err := arity(FuncMinHashSimilarity, args, 2, 3); err != nil {
		return nil, err
	}
	a, okA, err := elements(args[0])
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", FuncMinHashSimilarity, err)
	}
	b, okB, err := elements(args[1])
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", FuncMinHashSimilarity, err)
	}
	if !okA || !okB {
		return nil, nil
	}
	k, err := hashes(args, 2)
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", FuncMinHashSimilarity, err)
	}
	return m.hasher.Similarity(a, b, k), nil
}

func compareFunc(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	var sigs [2]minhash.Signature
	for i := range sigs {
		switch v := args[i].(type) {
		case nil:
			return nil, nil
		case []byte:
			sig, err := minhash.DecodeSignature(v)
			if err != nil {
				return nil, fmt.Errorf("engine: %s: %w", FuncMinHashCompare, err)
			}
			sigs[i] = sig
		default:
			return nil, fmt.Errorf("engine: %s: unsupported argument type %T; want signature BLOB", FuncMinHashCompare, v)
		}
	}
	sim, err := minhash.Compare(sigs[0], sigs[1])
	if err != nil {
		return nil, fmt.Errorf("engine: %s: %w", FuncMinHashCompare, err)
	}
	return sim, nil
}

func arity(name string, args []driver.Value, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		return fmt.Errorf("engine: %s: expected %d to %d arguments, got %d", name, lo, hi, len(args))
	}
	return nil
}
