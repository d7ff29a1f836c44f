// Package engine hosts the similarity functions inside SQLite through the
// modernc.org/sqlite driver: opening connections and registering the vector
// and MinHash scalar functions so they can be used from plain SQL. It keeps
// a thin surface so other packages share the same driver instance.
package engine
