package model

import (
	"math"
	"testing"
)

func TestGradeFor_levels(t *testing.T) {
	tests := map[string]struct {
		score   Score
		wantPct float64
		want    GradeLevel
	}{
		"well below":      {score: Score{Value: 10, MaxValue: 40}, wantPct: 25, want: GradeBelowExpectation},
		"just below 60":   {score: Score{Value: 59999, MaxValue: 100000}, wantPct: 59.999, want: GradeBelowExpectation},
		"exactly 60":      {score: Score{Value: 60, MaxValue: 100}, wantPct: 60, want: GradeAtCurrentLevel},
		"just below 70":   {score: Score{Value: 69999, MaxValue: 100000}, wantPct: 69.999, want: GradeAtCurrentLevel},
		"exactly 70":      {score: Score{Value: 70, MaxValue: 100}, wantPct: 70, want: GradeAboveExpectation},
		"full marks":      {score: Score{Value: 40, MaxValue: 40}, wantPct: 100, want: GradeAboveExpectation},
		"negative value":  {score: Score{Value: -3, MaxValue: 40}, wantPct: -7.5, want: GradeBelowExpectation},
		"zero max value":  {score: Score{Value: 0, MaxValue: 0}, wantPct: 0, want: GradeBelowExpectation},
		"value above max": {score: Score{Value: 45, MaxValue: 40}, wantPct: 112.5, want: GradeAboveExpectation},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			g := GradeFor(tc.score)
			if math.Abs(g.Percentage-tc.wantPct) > 1e-9 {
				t.Errorf("percentage incorrect, wanted: %v, got: %v", tc.wantPct, g.Percentage)
			}
			if g.Level != tc.want {
				t.Errorf("level incorrect, wanted: %s, got: %s", tc.want, g.Level)
			}
		})
	}
}
