package model

// AssessmentConfig is the rubric an assessment is scored against. It is
// external configuration: the core reads it but never modifies it.
type AssessmentConfig struct {
	Level  string  `json:"level"`
	Topics []Topic `json:"topics"`
}

// Topic is a named group of related questions, like "Positioning".
type Topic struct {
	Name           string     `json:"name"`
	CollectRemarks bool       `json:"collectRemarks"`
	Questions      []Question `json:"questions"`
}

type Question struct {
	ID      string         `json:"id"`
	Text    string         `json:"text"`
	Options []AnswerOption `json:"options"`
}

// AnswerOption is one selectable value for a question. Points may be
// negative, e.g. a "not ok" arrival-time answer scores -1.
type AnswerOption struct {
	Value  string `json:"value"`
	Points int    `json:"points"`
}

// ScoreOf returns the point value of the answer option matching selectedValue
// for the given question. Unknown questions or values score 0 rather than
// failing, so a blank or unrecognized form selection never breaks scoring.
func ScoreOf(cfg *AssessmentConfig, questionID, selectedValue string) int {
	for _, t := range cfg.Topics {
		for _, q := range t.Questions {
			if q.ID != questionID {
				continue
			}
			for _, o := range q.Options {
				if o.Value == selectedValue {
					return o.Points
				}
			}
			return 0
		}
	}
	return 0
}

// MaxScoreOfTopic returns the best achievable score for a topic: the sum over
// its questions of the highest point value among each question's options.
// An unknown topic name scores 0.
func MaxScoreOfTopic(cfg *AssessmentConfig, topicName string) int {
	for _, t := range cfg.Topics {
		if t.Name != topicName {
			continue
		}
		total := 0
		for _, q := range t.Questions {
			max := 0
			for i, o := range q.Options {
				if i == 0 || o.Points > max {
					max = o.Points
				}
			}
			total += max
		}
		return total
	}
	return 0
}
