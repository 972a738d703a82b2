package model

type GradeLevel string

const (
	GradeBelowExpectation GradeLevel = "BELOW_EXPECTATION"
	GradeAtCurrentLevel   GradeLevel = "AT_CURRENT_LEVEL"
	GradeAboveExpectation GradeLevel = "ABOVE_EXPECTATION"
)

// Score is the aggregate of all topic scores for one umpire's assessment.
// Value can be negative because answer options can carry negative points.
type Score struct {
	Value    int `json:"value"`
	MaxValue int `json:"maxValue"`
}

type Grade struct {
	Percentage float64    `json:"percentage"`
	Level      GradeLevel `json:"level"`
}

// GradeFor derives the grade from a score. A zero MaxValue has no defined
// percentage; it grades as 0% / BELOW_EXPECTATION for display purposes and
// ValidateForPublish blocks publishing such an assessment.
func GradeFor(s Score) Grade {
	if s.MaxValue == 0 {
		return Grade{Percentage: 0, Level: GradeBelowExpectation}
	}
	pct := float64(s.Value) / float64(s.MaxValue) * 100
	return Grade{Percentage: pct, Level: levelFor(pct)}
}

func levelFor(pct float64) GradeLevel {
	switch {
	case pct < 60:
		return GradeBelowExpectation
	case pct < 70:
		return GradeAtCurrentLevel
	default:
		return GradeAboveExpectation
	}
}
