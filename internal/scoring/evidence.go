package scoring

import (
	"sort"

	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// SelectEvidence returns up to k sentences ranked by their weighted
// similarity to the dominant role, descending. Ties keep original sentence
// order (stable sort), so the earlier sentence wins. Asking for more evidence
// than there are sentences returns everything available.
func SelectEvidence(sentences []Sentence, weightedScores []float64, k int) []types.Evidence {
	if k <= 0 || len(sentences) == 0 {
		return nil
	}

	order := make([]int, len(sentences))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weightedScores[order[a]] > weightedScores[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}

	evidence := make([]types.Evidence, 0, k)
	for _, idx := range order[:k] {
		evidence = append(evidence, types.Evidence{
			Sentence: sentences[idx].Text,
			Score:    weightedScores[idx],
			Position: sentences[idx].Index,
		})
	}
	return evidence
}
