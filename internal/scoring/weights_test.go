package scoring

import (
	"testing"
)

func TestRecencyWeights(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected []float64
	}{
		{
			name:     "ten sentences boost last three",
			n:        10,
			expected: []float64{1, 1, 1, 1, 1, 1, 1, 2, 2, 2},
		},
		{
			name:     "cutoff rounds up",
			n:        4, // ceil(1.2) = 2
			expected: []float64{1, 1, 2, 2},
		},
		{
			name:     "three sentences boost last one",
			n:        3, // ceil(0.9) = 1
			expected: []float64{1, 1, 2},
		},
		{
			name:     "two sentences boost last one",
			n:        2,
			expected: []float64{1, 2},
		},
		{
			name:     "single sentence is always boosted",
			n:        1,
			expected: []float64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecencyWeights(tt.n, 0.3, 2.0)
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %d weights, got %d", len(tt.expected), len(got))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("weight[%d]: expected %g, got %g", i, tt.expected[i], got[i])
				}
			}
		})
	}
}

func TestRecencyWeightsDegenerate(t *testing.T) {
	if got := RecencyWeights(0, 0.3, 2.0); got != nil {
		t.Errorf("expected nil for n=0, got %v", got)
	}
	if got := RecencyWeights(-1, 0.3, 2.0); got != nil {
		t.Errorf("expected nil for negative n, got %v", got)
	}
	// Minimum cutoff of one applies even when the fraction rounds to zero
	got := RecencyWeights(2, 0.0, 2.0)
	if got[0] != 1.0 || got[1] != 2.0 {
		t.Errorf("expected [1 2] with zero fraction, got %v", got)
	}
	// Fraction of one boosts everything
	got = RecencyWeights(3, 1.0, 2.0)
	for i, w := range got {
		if w != 2.0 {
			t.Errorf("weight[%d]: expected 2.0 with fraction 1, got %g", i, w)
		}
	}
}
