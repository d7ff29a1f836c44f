// Package minhash estimates the Jaccard similarity of two collections
// without materializing their intersection.
//
// A Hasher simulates K independent hash functions by salting a single
// cryptographic hash (MD5 by default) with the decimal salt index. For each
// salt the minimum digest over a collection is one signature slot; the
// fraction of slots on which two signatures agree is an unbiased estimate of
// the Jaccard similarity, with standard error about 1/sqrt(K).
//
// Elements may be of any type; only their canonical string form (see
// Canonical) takes part in hashing, so 1 and "1" are the same element.
package minhash
