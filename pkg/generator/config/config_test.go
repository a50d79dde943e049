package config

import "testing"

func TestDifficultySpecs(t *testing.T) {
	expectedTiers := []string{"trivial", "easy", "medium", "hard", "extreme"}

	for _, tier := range expectedTiers {
		spec, ok := DifficultySpecs[tier]
		if !ok {
			t.Errorf("missing difficulty spec for tier: %s", tier)
			continue
		}
		if spec.WidthRange[0] > spec.WidthRange[1] {
			t.Errorf("invalid WidthRange for %s: %v", tier, spec.WidthRange)
		}
		if spec.HeightRange[0] > spec.HeightRange[1] {
			t.Errorf("invalid HeightRange for %s: %v", tier, spec.HeightRange)
		}
		if spec.DensityRange[0] <= 0 || spec.DensityRange[1] > 1 || spec.DensityRange[0] > spec.DensityRange[1] {
			t.Errorf("invalid DensityRange for %s: %v", tier, spec.DensityRange)
		}
		if spec.MaxDepth < 0 {
			t.Errorf("invalid MaxDepth for %s: %d", tier, spec.MaxDepth)
		}
	}
}

func TestDifficultiesEscalate(t *testing.T) {
	tiers := []string{"trivial", "easy", "medium", "hard", "extreme"}
	for i := 1; i < len(tiers); i++ {
		prev, cur := DifficultySpecs[tiers[i-1]], DifficultySpecs[tiers[i]]
		if cur.WidthRange[0] < prev.WidthRange[0] {
			t.Errorf("%s grid should not be narrower than %s", tiers[i], tiers[i-1])
		}
		if cur.MaxDepth < prev.MaxDepth {
			t.Errorf("%s should not require shallower search depth than %s", tiers[i], tiers[i-1])
		}
	}
}
