package controller

import (
	"context"
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"github.com/florentbo/umpire_manager/db"
	"github.com/florentbo/umpire_manager/model"
)

func (c *controller) GetMatchesWithStatus(ctx context.Context, managerID string) ([]model.MatchWithReportStatus, error) {
	matches, err := c.db.GetMatchesByManager(ctx, managerID)
	if err != nil {
		return nil, err
	}

	result := make([]model.MatchWithReportStatus, 0, len(matches))
	for _, m := range matches {
		var assessment *model.Assessment
		a, err := c.db.GetAssessmentForMatchByAssessor(ctx, m.ID, managerID)
		if err != nil && !errors.Is(err, db.ErrAssessmentNotFound) {
			return nil, err
		}
		assessment = a

		var report *model.MatchReport
		r, err := c.db.GetReportByMatch(ctx, m.ID)
		if err != nil && !errors.Is(err, db.ErrReportNotFound) {
			return nil, err
		}
		report = r

		result = append(result, model.NewMatchWithReportStatus(m, assessment, report, managerID))
	}

	SortMatches(result)
	return result, nil
}

var statusPriority = map[model.ReportStatus]int{
	model.ReportStatusNone:      1,
	model.ReportStatusDraft:     2,
	model.ReportStatusPublished: 3,
}

// SortMatches orders a worklist by urgency: matches still needing a report
// first, then drafts, then published ones. Unreported matches come soonest
// first; published ones most recent first. The sort is stable so equal dates
// keep their incoming order.
func SortMatches(matches []model.MatchWithReportStatus) {
	slices.SortStableFunc(matches, func(a, b model.MatchWithReportStatus) int {
		pa := statusPriority[a.ReportStatus]
		pb := statusPriority[b.ReportStatus]
		if pa != pb {
			return pa - pb
		}

		ta := ParseMatchDateTime(a.Match.Date, a.Match.Time)
		tb := ParseMatchDateTime(b.Match.Date, b.Match.Time)
		if a.ReportStatus == model.ReportStatusPublished {
			return tb.Compare(ta)
		}
		return ta.Compare(tb)
	})
}

// SortReports orders published reports chronologically by match date, with
// the most recently submitted first among reports for the same date.
func SortReports(reports []model.MatchReport) {
	slices.SortStableFunc(reports, func(a, b model.MatchReport) int {
		ta := ParseMatchDateTime(a.Match.Date, a.Match.Time)
		tb := ParseMatchDateTime(b.Match.Date, b.Match.Time)
		if c := ta.Compare(tb); c != 0 {
			return c
		}
		return b.Submitted.Compare(a.Submitted)
	})
}

// StatusAll is the passthrough value for FilterByStatus.
const StatusAll = "ALL"

func FilterByStatus(matches []model.MatchWithReportStatus, status string) []model.MatchWithReportStatus {
	if status == "" || status == StatusAll {
		return matches
	}
	result := make([]model.MatchWithReportStatus, 0, len(matches))
	for _, m := range matches {
		if string(m.ReportStatus) == status {
			result = append(result, m)
		}
	}
	return result
}

// ParseMatchDateTime parses the schedule feed's date and time strings. Dates
// arrive as either 2006-01-02 or 01/02/2006; times may carry fractional
// seconds, which are discarded. Garbage never fails a worklist: an
// unparseable date normalizes to the epoch, which sorts first ascending and
// last descending, and the bad input is logged.
func ParseMatchDateTime(date, timeOfDay string) time.Time {
	d, err := parseMatchDate(date)
	if err != nil {
		log.Printf("unparseable match date %q, using epoch", date)
		return time.Unix(0, 0).UTC()
	}

	t, err := parseMatchTime(timeOfDay)
	if err != nil {
		log.Printf("unparseable match time %q, using midnight", timeOfDay)
		return d
	}
	return d.Add(t)
}

func parseMatchDate(date string) (time.Time, error) {
	if d, err := time.Parse(time.DateOnly, date); err == nil {
		return d, nil
	}
	return time.Parse("01/02/2006", date)
}

func parseMatchTime(timeOfDay string) (time.Duration, error) {
	// Strip fractional seconds like 14:30:00.0000000.
	if i := strings.IndexByte(timeOfDay, '.'); i >= 0 {
		timeOfDay = timeOfDay[:i]
	}

	t, err := time.Parse(time.TimeOnly, timeOfDay)
	if err != nil {
		t, err = time.Parse("15:04", timeOfDay)
		if err != nil {
			return 0, err
		}
	}
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second, nil
}
