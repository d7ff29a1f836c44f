package minhash

// Jaccard computes the exact Jaccard similarity of the canonical string
// sets of a and b. Two empty collections are identical and score 1.
func Jaccard(a, b []any) float64 {
	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[Canonical(v)] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[Canonical(v)] = struct{}{}
	}
	union := len(setA) + len(setB)
	if union == 0 {
		return 1
	}
	intersection := 0
	for s := range setA {
		if _, ok := setB[s]; ok {
			intersection++
		}
	}
	union -= intersection
	return float64(intersection) / float64(union)
}
