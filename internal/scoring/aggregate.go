package scoring

import (
	"fmt"
	"math"

	"github.com/DANNY1169/resume-role-classifier/internal/errors"
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// Normalize converts raw per-role aggregates into a probability distribution
// using temperature-scaled softmax: p_i = exp(s_i/T) / sum_j exp(s_j/T).
// Scores are shifted by max(s) before exponentiation for numerical stability.
// A temperature above 1 deliberately flattens the distribution so thin
// evidence cannot produce overconfident single-role classifications.
//
// If all aggregates are exactly equal the result is the exact uniform
// distribution. Any NaN or infinite aggregate outside that case is a defect
// and is raised loudly rather than masked.
func Normalize(aggregates map[types.Role]float64, temperature float64) (types.RoleDistribution, error) {
	if temperature <= 0 {
		return nil, errors.NewScoringError(errors.ErrCodeScoringFailed,
			fmt.Sprintf("softmax temperature must be positive, got %g", temperature), nil)
	}

	allEqual := true
	first := aggregates[types.Roles[0]]
	for _, role := range types.Roles {
		v := aggregates[role]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.NewScoringError(errors.ErrCodeScoringFailed,
				fmt.Sprintf("aggregate score for role %s is not finite: %g", role, v), nil)
		}
		if v != first {
			allEqual = false
		}
	}

	if allEqual {
		uniform := 1.0 / float64(len(types.Roles))
		dist := make(types.RoleDistribution, len(types.Roles))
		for _, role := range types.Roles {
			dist[role] = uniform
		}
		return dist, nil
	}

	maxScore := math.Inf(-1)
	for _, role := range types.Roles {
		if s := aggregates[role] / temperature; s > maxScore {
			maxScore = s
		}
	}

	var sum float64
	exps := make(map[types.Role]float64, len(types.Roles))
	for _, role := range types.Roles {
		e := math.Exp(aggregates[role]/temperature - maxScore)
		exps[role] = e
		sum += e
	}

	dist := make(types.RoleDistribution, len(types.Roles))
	for _, role := range types.Roles {
		dist[role] = exps[role] / sum
	}
	return dist, nil
}

// DominantRole returns the highest-probability role. Exact ties resolve to
// the earlier role in the fixed Builder > Enabler > Thriver > Supportee
// priority order; this is a documented design assumption, kept deterministic
// so repeated analyses of the same input never flip the winner.
func DominantRole(dist types.RoleDistribution) types.Role {
	best := types.Roles[0]
	for _, role := range types.Roles[1:] {
		if dist[role] > dist[best] {
			best = role
		}
	}
	return best
}
