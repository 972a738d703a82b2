package model

import "time"

// MatchReport is the durable published record of an assessment. It snapshots
// the match at publish time, so a later correction of the schedule does not
// retroactively alter what was reported.
type MatchReport struct {
	ID         string     `json:"id"`
	Match      MatchInfo  `json:"match"`
	Assessment Assessment `json:"assessment"`
	Submitted  time.Time  `json:"submitted"`
}

func NewMatchReport(id string, match MatchInfo, a Assessment, now time.Time) MatchReport {
	return MatchReport{
		ID:         id,
		Match:      match,
		Assessment: a,
		Submitted:  now,
	}
}

// ReportSummary flattens a report for list display, with the assessor's
// display name already resolved.
type ReportSummary struct {
	ReportID     string        `json:"reportId"`
	Match        MatchInfo     `json:"match"`
	AssessorID   string        `json:"assessorId"`
	AssessorName string        `json:"assessorName"`
	Submitted    time.Time     `json:"submitted"`
	UmpireA      UmpireSummary `json:"umpireA"`
	UmpireB      UmpireSummary `json:"umpireB"`
}

type UmpireSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Score      Score  `json:"score"`
	Grade      Grade  `json:"grade"`
	Conclusion string `json:"conclusion"`
}

// AssessedUmpire is a search hit for an umpire that has at least one
// published assessment.
type AssessedUmpire struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
