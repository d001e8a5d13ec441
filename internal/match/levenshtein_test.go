package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"source", "source", 0},
		{"skip", "skp", 1},
		{"with", "skip", 4},
		{"kitten", "sitting", 3},
		{"oneoffield", "oneofField", 1},
		{"serde", "serde_pb_convert", 11},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.want, Levenshtein(tt.b, tt.a))
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
}

func TestIdentSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, IdentSimilarity("serde_pb_convert", "SerdePbConvert"), 0)
	assert.InDelta(t, 1.0, IdentSimilarity("RequestTypeURL", "request_type_url"), 0)
	assert.GreaterOrEqual(t, IdentSimilarity("impl_from", "impl_from_trait"), 0.5)
	assert.Less(t, IdentSimilarity("skip", "source"), MinSuggestionScore)
}
