package model

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

// A small rubric with two topics. Max scores: general 5+2=7, positioning 10.
func testConfig() *AssessmentConfig {
	return &AssessmentConfig{
		Level: "regional",
		Topics: []Topic{
			{
				Name:           "general",
				CollectRemarks: true,
				Questions: []Question{
					{
						ID:   "general.appearance",
						Text: "Appearance and presentation",
						Options: []AnswerOption{
							{Value: "excellent", Points: 5},
							{Value: "ok", Points: 3},
							{Value: "poor", Points: 0},
						},
					},
					{
						ID:   "general.arrival",
						Text: "Arrived on time",
						Options: []AnswerOption{
							{Value: "ok", Points: 2},
							{Value: "not ok", Points: -1},
						},
					},
				},
			},
			{
				Name: "positioning",
				Questions: []Question{
					{
						ID:   "positioning.circle",
						Text: "Positioning in the circle",
						Options: []AnswerOption{
							{Value: "excellent", Points: 10},
							{Value: "ok", Points: 6},
							{Value: "poor", Points: 2},
						},
					},
				},
			},
		},
	}
}

func fullInput(umpireID string) UmpireInput {
	return UmpireInput{
		UmpireID: umpireID,
		Topics: []TopicInput{
			{
				Name: "general",
				Answers: []AnswerInput{
					{QuestionID: "general.appearance", SelectedValue: "excellent"},
					{QuestionID: "general.arrival", SelectedValue: "not ok"},
				},
				Remarks: "smart but late",
			},
			{
				Name: "positioning",
				Answers: []AnswerInput{
					{QuestionID: "positioning.circle", SelectedValue: "ok"},
				},
			},
		},
		Conclusion: "solid game overall",
	}
}

func TestScoreOf(t *testing.T) {
	cfg := testConfig()

	tests := map[string]struct {
		questionID string
		value      string
		want       int
	}{
		"top option":       {questionID: "general.appearance", value: "excellent", want: 5},
		"negative option":  {questionID: "general.arrival", value: "not ok", want: -1},
		"second topic":     {questionID: "positioning.circle", value: "poor", want: 2},
		"unknown value":    {questionID: "general.appearance", value: "stellar", want: 0},
		"blank value":      {questionID: "general.appearance", value: "", want: 0},
		"unknown question": {questionID: "general.handshake", value: "ok", want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ScoreOf(cfg, tc.questionID, tc.value); got != tc.want {
				t.Errorf("wanted %d points, got %d", tc.want, got)
			}
		})
	}
}

func TestMaxScoreOfTopic(t *testing.T) {
	cfg := testConfig()

	tests := map[string]struct {
		topic string
		want  int
	}{
		"two questions": {topic: "general", want: 7},
		"one question":  {topic: "positioning", want: 10},
		"unknown topic": {topic: "communication", want: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := MaxScoreOfTopic(cfg, tc.topic); got != tc.want {
				t.Errorf("wanted max %d, got %d", tc.want, got)
			}
		})
	}
}

func TestNewAssessment(t *testing.T) {
	cfg := testConfig()
	now := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)

	a := NewAssessment("a1", "m1", "mgr1", cfg, fullInput("ump1"), fullInput("ump2"), now)

	if a.Status != StatusDraft {
		t.Errorf("expected new assessment to start as a draft, got %s", a.Status)
	}
	if a.Level != "regional" {
		t.Errorf("expected level to come from the rubric, got %s", a.Level)
	}
	if !a.Created.Equal(now) {
		t.Errorf("created time incorrect: %v", a.Created)
	}
	if !a.Updated.IsZero() {
		t.Errorf("expected no updated time on a fresh assessment")
	}

	// 5 + -1 + 6 = 10 out of 17
	if a.UmpireA.TotalScore != (Score{Value: 10, MaxValue: 17}) {
		t.Errorf("total score incorrect: %+v", a.UmpireA.TotalScore)
	}
	if a.UmpireA.Grade.Level != GradeBelowExpectation {
		t.Errorf("grade level incorrect: %s", a.UmpireA.Grade.Level)
	}

	// Every stored response must carry exactly the points the rubric assigns
	// to its selected value.
	for _, topic := range a.UmpireA.Topics {
		sum := 0
		for _, r := range topic.Responses {
			if r.Points != ScoreOf(cfg, r.QuestionID, r.SelectedValue) {
				t.Errorf("points for %s diverge from the rubric", r.QuestionID)
			}
			sum += r.Points
		}
		if topic.TotalScore != sum {
			t.Errorf("topic %s total %d != sum of responses %d", topic.TopicName, topic.TotalScore, sum)
		}
		if topic.MaxScore != MaxScoreOfTopic(cfg, topic.TopicName) {
			t.Errorf("topic %s max score diverges from the rubric", topic.TopicName)
		}
	}
}

func TestAssessmentUpdate(t *testing.T) {
	cfg := testConfig()
	created := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	updated := created.Add(2 * time.Hour)

	orig := NewAssessment("a1", "m1", "mgr1", cfg, fullInput("ump1"), fullInput("ump2"), created)
	origCopy := orig

	newTopics := []TopicInput{
		{
			Name: "positioning",
			Answers: []AnswerInput{
				{QuestionID: "positioning.circle", SelectedValue: "excellent"},
			},
		},
	}
	conclusion := "much improved"
	next := orig.Update(cfg, &UmpireUpdate{Topics: newTopics, Conclusion: &conclusion}, nil, updated)

	// The original must be untouched.
	if !reflect.DeepEqual(orig, origCopy) {
		t.Errorf("update mutated the original assessment")
	}

	if next.UmpireA.TotalScore != (Score{Value: 10, MaxValue: 10}) {
		t.Errorf("recomputed score incorrect: %+v", next.UmpireA.TotalScore)
	}
	if next.UmpireA.Grade.Level != GradeAboveExpectation {
		t.Errorf("recomputed grade incorrect: %s", next.UmpireA.Grade.Level)
	}
	if next.UmpireA.Conclusion != "much improved" {
		t.Errorf("conclusion not updated: %s", next.UmpireA.Conclusion)
	}
	if !next.Updated.Equal(updated) {
		t.Errorf("updated time incorrect: %v", next.Updated)
	}

	// Umpire B got a nil partial and must be unchanged.
	if !reflect.DeepEqual(next.UmpireB, orig.UmpireB) {
		t.Errorf("umpire B changed without an update")
	}

	// Applying the same partial twice yields the same result as once: scores
	// are recomputed from the topics, not accumulated.
	again := next.Update(cfg, &UmpireUpdate{Topics: newTopics, Conclusion: &conclusion}, nil, updated)
	if !reflect.DeepEqual(next, again) {
		t.Errorf("update is not idempotent")
	}
}

func TestValidateForPublish(t *testing.T) {
	cfg := testConfig()
	now := time.Now().UTC()

	t.Run("complete assessment passes", func(t *testing.T) {
		a := NewAssessment("a1", "m1", "mgr1", cfg, fullInput("ump1"), fullInput("ump2"), now)
		if err := a.ValidateForPublish(); err != nil {
			t.Errorf("expected a complete assessment to validate, got: %v", err)
		}
	})

	t.Run("unanswered question names umpire and question", func(t *testing.T) {
		in := fullInput("ump2")
		in.Topics[1].Answers[0].SelectedValue = ""
		a := NewAssessment("a1", "m1", "mgr1", cfg, fullInput("ump1"), in, now)

		err := a.ValidateForPublish()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected a ValidationError, got: %v", err)
		}
		if verr.UmpireID != "ump2" || verr.QuestionID != "positioning.circle" || verr.Field != FieldQuestion {
			t.Errorf("validation error did not name the offending field: %+v", verr)
		}
	})

	t.Run("empty conclusion", func(t *testing.T) {
		in := fullInput("ump1")
		in.Conclusion = "   "
		a := NewAssessment("a1", "m1", "mgr1", cfg, in, fullInput("ump2"), now)

		err := a.ValidateForPublish()
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected a ValidationError, got: %v", err)
		}
		if verr.UmpireID != "ump1" || verr.Field != FieldConclusion {
			t.Errorf("validation error did not name the conclusion: %+v", verr)
		}
	})

	t.Run("zero max score is refused", func(t *testing.T) {
		in := UmpireInput{UmpireID: "ump1", Conclusion: "nothing to score"}
		a := NewAssessment("a1", "m1", "mgr1", cfg, in, fullInput("ump2"), now)

		if err := a.ValidateForPublish(); !errors.Is(err, ErrZeroMaxScore) {
			t.Errorf("expected ErrZeroMaxScore, got: %v", err)
		}
	})
}
