// Package vector compares numeric vectors. It includes:
//   - CosineSimilarity, EuclideanDistance and EuclideanSimilarity over any
//     integer or floating point element type, accumulated in float64
//   - float32 embedding variants backed by github.com/viant/vec
//   - Embedding encoding (BLOB) used by the SQL functions in package engine
//
// Every function is a pure computation over its arguments; two vectors must
// have the same, non-zero length or ErrInvalidArgument is returned.
package vector
