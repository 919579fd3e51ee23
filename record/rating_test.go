package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGradeClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rating      RatingRecord
		investment  bool
		speculative bool
	}{
		{"prime across the board", RatingRecord{MoodysRating: "Aaa", SandPRating: "AAA", FitchRating: "AAA"}, true, false},
		{"bottom of investment band", RatingRecord{MoodysRating: "Baa3", SandPRating: "BBB-"}, true, false},
		{"just below investment", RatingRecord{MoodysRating: "Ba1", SandPRating: "BB+"}, false, true},
		{"diverging agencies", RatingRecord{MoodysRating: "Baa3", SandPRating: "BB+"}, true, true},
		{"single speculative", RatingRecord{FitchRating: "CCC"}, false, true},
		{"empty", RatingRecord{}, false, false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.investment, tc.rating.InvestmentGrade())
			assert.Equal(t, tc.speculative, tc.rating.SpeculativeGrade())
		})
	}
}

func TestHasAny(t *testing.T) {
	t.Parallel()

	assert.False(t, (&RatingRecord{}).HasAny())
	assert.True(t, (&RatingRecord{FitchRating: "B"}).HasAny())
}
