package scoring

import (
	"fmt"
	"math"

	"github.com/DANNY1169/resume-role-classifier/internal/errors"
)

// CosineSimilarity computes dot(a,b) / (|a|*|b|). A zero-magnitude vector on
// either side yields 0 rather than dividing by zero; a well-formed embedding
// model should never produce one, but the guard keeps degenerate vectors from
// poisoning the aggregates.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, errors.NewScoringError(errors.ErrCodeScoringFailed,
			fmt.Sprintf("vector length mismatch: %d vs %d", len(a), len(b)), nil)
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}

	if magA == 0 || magB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}
