package scoring

import (
	"testing"
)

func TestSelectEvidence(t *testing.T) {
	sentences := []Sentence{
		{Text: "first", Index: 0},
		{Text: "second", Index: 1},
		{Text: "third", Index: 2},
	}

	t.Run("ties keep original order", func(t *testing.T) {
		evidence := SelectEvidence(sentences, []float64{0.9, 0.9, 0.5}, 2)
		if len(evidence) != 2 {
			t.Fatalf("expected 2 evidence items, got %d", len(evidence))
		}
		if evidence[0].Position != 0 || evidence[1].Position != 1 {
			t.Errorf("expected positions [0 1] for tied scores, got [%d %d]",
				evidence[0].Position, evidence[1].Position)
		}
	})

	t.Run("ranked descending by score", func(t *testing.T) {
		evidence := SelectEvidence(sentences, []float64{0.2, 0.8, 0.5}, 3)
		if len(evidence) != 3 {
			t.Fatalf("expected 3 evidence items, got %d", len(evidence))
		}
		want := []string{"second", "third", "first"}
		for i, w := range want {
			if evidence[i].Sentence != w {
				t.Errorf("evidence[%d]: expected %q, got %q", i, w, evidence[i].Sentence)
			}
		}
	})

	t.Run("k larger than available returns fewer", func(t *testing.T) {
		evidence := SelectEvidence(sentences, []float64{0.2, 0.8, 0.5}, 10)
		if len(evidence) != 3 {
			t.Errorf("expected 3 evidence items, got %d", len(evidence))
		}
	})

	t.Run("non-positive k returns nothing", func(t *testing.T) {
		if got := SelectEvidence(sentences, []float64{0.2, 0.8, 0.5}, 0); got != nil {
			t.Errorf("expected nil for k=0, got %v", got)
		}
	})

	t.Run("scores carried through", func(t *testing.T) {
		evidence := SelectEvidence(sentences, []float64{0.2, 0.8, 0.5}, 1)
		if evidence[0].Score != 0.8 {
			t.Errorf("expected score 0.8, got %g", evidence[0].Score)
		}
	})
}
