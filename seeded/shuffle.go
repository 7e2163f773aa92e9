package seeded

// Shuffle returns a permutation of seq; seq itself is left untouched.
//
// Indices are visited in ascending order and every swap target is
// IntUpTo(i, seed) with the same seed, so this is not the textbook descending
// Durstenfeld shuffle. Existing seeded outputs depend on this exact order;
// switching to the canonical algorithm would change all of them.
func Shuffle[S ~[]E, E any](seq S, seed float64) S {
	if seq == nil {
		return nil
	}
	shuffled := make(S, len(seq))
	copy(shuffled, seq)
	for i := range shuffled {
		j := IntUpTo(i, seed)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
