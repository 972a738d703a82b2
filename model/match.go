package model

// MatchInfo is a scheduled fixture as supplied by the schedule feed. Date and
// Time are kept as the raw strings from the feed; parsing happens at sort
// time because the feed mixes date shapes and sometimes produces garbage.
type MatchInfo struct {
	ID          string `json:"id"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	Division    string `json:"division"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	UmpireAID   string `json:"umpireAId"`
	UmpireAName string `json:"umpireAName"`
	UmpireBID   string `json:"umpireBId"`
	UmpireBName string `json:"umpireBName"`
	ManagerID   string `json:"managerId"`
}

type ReportStatus string

const (
	ReportStatusNone      ReportStatus = "NONE"
	ReportStatusDraft     ReportStatus = "DRAFT"
	ReportStatusPublished ReportStatus = "PUBLISHED"
)

// MatchWithReportStatus annotates a match with where its report stands for
// the current manager. It is derived on every query and never persisted, so
// it cannot drift from the assessments and reports it is computed from.
type MatchWithReportStatus struct {
	Match        MatchInfo    `json:"match"`
	ReportStatus ReportStatus `json:"reportStatus"`
	CanEdit      bool         `json:"canEdit"`
	AssessmentID string       `json:"assessmentId,omitempty"`
	ReportID     string       `json:"reportId,omitempty"`
}

// NewMatchWithReportStatus derives the report status of a match from the
// zero-or-one assessment and zero-or-one report known for it. CanEdit holds
// only for the manager the match is assigned to; reading another manager's
// report is a separate capability that this flag does not grant.
func NewMatchWithReportStatus(match MatchInfo, assessment *Assessment, report *MatchReport, managerID string) MatchWithReportStatus {
	m := MatchWithReportStatus{
		Match:        match,
		ReportStatus: ReportStatusNone,
		CanEdit:      match.ManagerID == managerID,
	}
	if assessment != nil {
		m.ReportStatus = ReportStatusDraft
		m.AssessmentID = assessment.ID
	}
	if report != nil {
		m.ReportStatus = ReportStatusPublished
		m.ReportID = report.ID
	}
	return m
}
