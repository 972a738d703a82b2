package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type AssessmentStatus string

const (
	StatusDraft     AssessmentStatus = "DRAFT"
	StatusPublished AssessmentStatus = "PUBLISHED"
)

// ErrZeroMaxScore means an umpire assessment has no scorable questions, so
// its percentage is undefined. Publishing such an assessment is refused
// instead of fabricating a grade.
var ErrZeroMaxScore = errors.New("assessment has a max score of 0")

// QuestionResponse records the selected value for one rubric question along
// with the points it scored. Points are derived from the rubric but stored
// redundantly so a published report stays traceable even if the rubric
// changes later.
type QuestionResponse struct {
	QuestionID    string `json:"questionId"`
	SelectedValue string `json:"selectedValue"`
	Points        int    `json:"points"`
}

type TopicScore struct {
	TopicName  string             `json:"topicName"`
	Responses  []QuestionResponse `json:"responses"`
	Remarks    string             `json:"remarks,omitempty"`
	TotalScore int                `json:"totalScore"`
	MaxScore   int                `json:"maxScore"`
}

// UmpireAssessment is one umpire's scored rubric. TotalScore and Grade are
// always recomputed from Topics, never set by callers.
type UmpireAssessment struct {
	UmpireID   string       `json:"umpireId"`
	Topics     []TopicScore `json:"topics"`
	Conclusion string       `json:"conclusion"`
	TotalScore Score        `json:"totalScore"`
	Grade      Grade        `json:"grade"`
}

// Assessment is one manager's evaluation of the two umpires of one match.
// Instances are immutable snapshots: Update returns a new Assessment and
// leaves the receiver untouched.
type Assessment struct {
	ID         string           `json:"id"`
	MatchID    string           `json:"matchId"`
	AssessorID string           `json:"assessorId"`
	Level      string           `json:"level"`
	UmpireA    UmpireAssessment `json:"umpireA"`
	UmpireB    UmpireAssessment `json:"umpireB"`
	Status     AssessmentStatus `json:"status"`
	Created    time.Time        `json:"created"`
	Updated    time.Time        `json:"updated,omitempty"`
}

// AnswerInput is a raw form answer as submitted by the UI.
type AnswerInput struct {
	QuestionID    string `json:"questionId"`
	SelectedValue string `json:"selectedValue"`
}

type TopicInput struct {
	Name    string        `json:"name"`
	Answers []AnswerInput `json:"answers"`
	Remarks string        `json:"remarks,omitempty"`
}

type UmpireInput struct {
	UmpireID   string       `json:"umpireId"`
	Topics     []TopicInput `json:"topics"`
	Conclusion string       `json:"conclusion"`
}

// UmpireUpdate is a partial update of one umpire's assessment. A nil Topics
// slice leaves the topics unchanged; a nil Conclusion leaves the conclusion
// unchanged.
type UmpireUpdate struct {
	Topics     []TopicInput `json:"topics,omitempty"`
	Conclusion *string      `json:"conclusion,omitempty"`
}

// NewAssessment scores both umpires' raw answers against the rubric and
// computes their totals and grades. The caller decides, via the controller,
// whether the result is persisted as a draft or published directly.
func NewAssessment(id, matchID, assessorID string, cfg *AssessmentConfig, a, b UmpireInput, now time.Time) Assessment {
	return Assessment{
		ID:         id,
		MatchID:    matchID,
		AssessorID: assessorID,
		Level:      cfg.Level,
		UmpireA:    newUmpireAssessment(cfg, a),
		UmpireB:    newUmpireAssessment(cfg, b),
		Status:     StatusDraft,
		Created:    now,
	}
}

// Update merges the partial updates into a copy of the assessment. When a
// partial carries a new topics list the umpire's total and grade are
// recomputed from that list; a caller can never smuggle in its own totals.
func (a Assessment) Update(cfg *AssessmentConfig, ua, ub *UmpireUpdate, now time.Time) Assessment {
	a.UmpireA = a.UmpireA.apply(cfg, ua)
	a.UmpireB = a.UmpireB.apply(cfg, ub)
	a.Updated = now
	return a
}

// ValidateForPublish checks that every question has an answer and both
// conclusions are filled in. It reports the first offending umpire and field
// so the UI can focus it. Drafts are exempt from this check.
func (a *Assessment) ValidateForPublish() error {
	for _, u := range []*UmpireAssessment{&a.UmpireA, &a.UmpireB} {
		if u.TotalScore.MaxValue == 0 {
			return fmt.Errorf("umpire %s: %w", u.UmpireID, ErrZeroMaxScore)
		}
		for _, t := range u.Topics {
			for _, r := range t.Responses {
				if r.SelectedValue == "" {
					return &ValidationError{
						UmpireID:   u.UmpireID,
						TopicName:  t.TopicName,
						QuestionID: r.QuestionID,
						Field:      FieldQuestion,
					}
				}
			}
		}
		if strings.TrimSpace(u.Conclusion) == "" {
			return &ValidationError{UmpireID: u.UmpireID, Field: FieldConclusion}
		}
	}
	return nil
}

const (
	FieldQuestion   = "question"
	FieldConclusion = "conclusion"
)

// ValidationError names the first incomplete field found when publishing.
type ValidationError struct {
	UmpireID   string `json:"umpireId"`
	TopicName  string `json:"topicName,omitempty"`
	QuestionID string `json:"questionId,omitempty"`
	Field      string `json:"field"`
}

func (e *ValidationError) Error() string {
	if e.Field == FieldConclusion {
		return fmt.Sprintf("umpire %s: conclusion is empty", e.UmpireID)
	}
	return fmt.Sprintf("umpire %s: question %s in topic %q is unanswered", e.UmpireID, e.QuestionID, e.TopicName)
}

func newUmpireAssessment(cfg *AssessmentConfig, in UmpireInput) UmpireAssessment {
	u := UmpireAssessment{
		UmpireID:   in.UmpireID,
		Topics:     buildTopicScores(cfg, in.Topics),
		Conclusion: in.Conclusion,
	}
	u.recompute()
	return u
}

func (u UmpireAssessment) apply(cfg *AssessmentConfig, up *UmpireUpdate) UmpireAssessment {
	if up == nil {
		return u
	}
	if up.Topics != nil {
		u.Topics = buildTopicScores(cfg, up.Topics)
	}
	if up.Conclusion != nil {
		u.Conclusion = *up.Conclusion
	}
	u.recompute()
	return u
}

func (u *UmpireAssessment) recompute() {
	var s Score
	for _, t := range u.Topics {
		s.Value += t.TotalScore
		s.MaxValue += t.MaxScore
	}
	u.TotalScore = s
	u.Grade = GradeFor(s)
}

func buildTopicScores(cfg *AssessmentConfig, inputs []TopicInput) []TopicScore {
	topics := make([]TopicScore, 0, len(inputs))
	for _, in := range inputs {
		t := TopicScore{
			TopicName: in.Name,
			Responses: make([]QuestionResponse, 0, len(in.Answers)),
			Remarks:   in.Remarks,
			MaxScore:  MaxScoreOfTopic(cfg, in.Name),
		}
		for _, ans := range in.Answers {
			r := QuestionResponse{
				QuestionID:    ans.QuestionID,
				SelectedValue: ans.SelectedValue,
				Points:        ScoreOf(cfg, ans.QuestionID, ans.SelectedValue),
			}
			t.Responses = append(t.Responses, r)
			t.TotalScore += r.Points
		}
		topics = append(topics, t)
	}
	return topics
}
