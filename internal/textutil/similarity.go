package textutil

// CosineSimilarity computes the cosine similarity between two fingerprints.
// Returns 0 if either fingerprint is nil or has zero norm.
func CosineSimilarity(a, b *Fingerprint) float64 {
	if a == nil || b == nil || a.norm == 0 || b.norm == 0 {
		return 0
	}
	var dot float64
	for token, count := range a.tokens {
		if other, ok := b.tokens[token]; ok {
			dot += count * other
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (a.norm * b.norm)
}

// TokenContainment returns the overlap coefficient of the two fingerprints'
// unique token sets: shared tokens divided by the smaller set's size. A short
// generic title fully contained in a longer one scores 1.0.
func TokenContainment(a, b *Fingerprint) float64 {
	if a == nil || b == nil || len(a.tokens) == 0 || len(b.tokens) == 0 {
		return 0
	}
	shared := 0
	for token := range a.tokens {
		if _, ok := b.tokens[token]; ok {
			shared++
		}
	}
	smaller := len(a.tokens)
	if len(b.tokens) < smaller {
		smaller = len(b.tokens)
	}
	return float64(shared) / float64(smaller)
}

// TitleSimilarity normalizes and fingerprints two titles and returns a
// token-set similarity in [0, 1]: the better of cosine similarity and token
// containment. Containment covers the common case where a channel publishes
// under a short procedural title ("Markup") while the registry lists every
// bill under consideration.
func TitleSimilarity(a, b string) float64 {
	fa, fb := NewFingerprint(a), NewFingerprint(b)
	cosine := CosineSimilarity(fa, fb)
	if containment := TokenContainment(fa, fb); containment > cosine {
		return containment
	}
	return cosine
}
