package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTrait(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already normalized", "low_shedding", "low_shedding"},
		{"spaces", "low shedding", "low_shedding"},
		{"mixed case", "Low Shedding", "low_shedding"},
		{"punctuation runs", "good,  with -- children!", "good_with_children"},
		{"leading and trailing junk", "  --high energy-- ", "high_energy"},
		{"digits kept", "top10 picks", "top10_picks"},
		{"only junk", "?!---", ""},
		{"empty", "", ""},
		{"unicode treated as separator", "café dog", "caf_dog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTrait(tt.input))
		})
	}
}

func TestNormalizeTrait_Idempotent(t *testing.T) {
	inputs := []string{
		"Low Shedding", "GOOD WITH CHILDREN", "  quiet  ", "a--b__c", "", "?!",
		"already_normal", "high energy",
	}

	for _, input := range inputs {
		once := NormalizeTrait(input)
		assert.Equal(t, once, NormalizeTrait(once), "normalize(normalize(%q))", input)
	}
}
