package scoring

import "math"

// RecencyWeights returns the per-sentence multiplier for n ordered sentences.
// The trailing ceil(fraction*n) sentences get the boost multiplier, everything
// else 1.0. Later-listed experience is assumed more recent, which is a
// documented heuristic rather than a learned weight. The cutoff never drops
// below 1, so the final sentence is boosted even for very short resumes.
func RecencyWeights(n int, fraction, boost float64) []float64 {
	if n <= 0 {
		return nil
	}

	cutoff := int(math.Ceil(fraction * float64(n)))
	if cutoff < 1 {
		cutoff = 1
	}
	if cutoff > n {
		cutoff = n
	}

	weights := make([]float64, n)
	for i := range weights {
		if i >= n-cutoff {
			weights[i] = boost
		} else {
			weights[i] = 1.0
		}
	}
	return weights
}
