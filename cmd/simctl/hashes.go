package main

// Hash functions selectable through minhash.algorithm. MD5 is linked by the
// minhash package.
import (
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
)
