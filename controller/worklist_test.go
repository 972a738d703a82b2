package controller

import (
	"context"
	"testing"
	"time"

	"github.com/florentbo/umpire_manager/db"
	"github.com/florentbo/umpire_manager/model"
	"github.com/stretchr/testify/mock"
)

func statusMatch(id, date, timeOfDay string, status model.ReportStatus) model.MatchWithReportStatus {
	return model.MatchWithReportStatus{
		Match:        model.MatchInfo{ID: id, Date: date, Time: timeOfDay, ManagerID: "mgr1"},
		ReportStatus: status,
	}
}

func TestSortMatches_statusBeforeDate(t *testing.T) {
	// D1 < D2 < D3, but status priority must win regardless of dates.
	matches := []model.MatchWithReportStatus{
		statusMatch("published", "2025-03-01", "12:00", model.ReportStatusPublished),
		statusMatch("none", "2025-01-01", "12:00", model.ReportStatusNone),
		statusMatch("draft", "2025-02-01", "12:00", model.ReportStatusDraft),
	}

	SortMatches(matches)

	want := []string{"none", "draft", "published"}
	for i, id := range want {
		if matches[i].Match.ID != id {
			t.Errorf("position %d incorrect, wanted: %s, got: %s", i, id, matches[i].Match.ID)
		}
	}
}

func TestSortMatches_dateWithinStatus(t *testing.T) {
	matches := []model.MatchWithReportStatus{
		statusMatch("none-later", "2025-01-16", "12:00", model.ReportStatusNone),
		statusMatch("none-sooner", "2025-01-15", "12:00", model.ReportStatusNone),
		statusMatch("pub-older", "2025-01-15", "12:00", model.ReportStatusPublished),
		statusMatch("pub-newer", "2025-01-16", "12:00", model.ReportStatusPublished),
	}

	SortMatches(matches)

	want := []string{"none-sooner", "none-later", "pub-newer", "pub-older"}
	for i, id := range want {
		if matches[i].Match.ID != id {
			t.Errorf("position %d incorrect, wanted: %s, got: %s", i, id, matches[i].Match.ID)
		}
	}
}

func TestSortMatches_mixedDateShapes(t *testing.T) {
	matches := []model.MatchWithReportStatus{
		statusMatch("iso", "2025-01-16", "10:00", model.ReportStatusNone),
		statusMatch("us", "01/15/2025", "10:00", model.ReportStatusNone),
		statusMatch("garbage", "sometime", "10:00", model.ReportStatusNone),
	}

	SortMatches(matches)

	// The unparseable date normalizes to the epoch and sorts first ascending.
	want := []string{"garbage", "us", "iso"}
	for i, id := range want {
		if matches[i].Match.ID != id {
			t.Errorf("position %d incorrect, wanted: %s, got: %s", i, id, matches[i].Match.ID)
		}
	}
}

func TestSortReports(t *testing.T) {
	submittedEarly := time.Date(2025, 1, 20, 9, 0, 0, 0, time.UTC)
	submittedLate := time.Date(2025, 1, 21, 9, 0, 0, 0, time.UTC)

	report := func(id, date string, submitted time.Time) model.MatchReport {
		return model.MatchReport{
			ID:        id,
			Match:     model.MatchInfo{ID: "m-" + id, Date: date, Time: "14:00"},
			Submitted: submitted,
		}
	}

	reports := []model.MatchReport{
		report("r3", "2025-01-18", submittedEarly),
		report("r1", "2025-01-10", submittedEarly),
		report("r2", "2025-01-18", submittedLate),
	}

	SortReports(reports)

	// Chronological by match date; same date resolves to the most recently
	// submitted first.
	want := []string{"r1", "r2", "r3"}
	for i, id := range want {
		if reports[i].ID != id {
			t.Errorf("position %d incorrect, wanted: %s, got: %s", i, id, reports[i].ID)
		}
	}
}

func TestFilterByStatus(t *testing.T) {
	matches := []model.MatchWithReportStatus{
		statusMatch("a", "2025-01-15", "10:00", model.ReportStatusNone),
		statusMatch("b", "2025-01-16", "10:00", model.ReportStatusDraft),
		statusMatch("c", "2025-01-17", "10:00", model.ReportStatusPublished),
	}

	tests := map[string]struct {
		status string
		want   []string
	}{
		"all":        {status: "ALL", want: []string{"a", "b", "c"}},
		"empty":      {status: "", want: []string{"a", "b", "c"}},
		"none only":  {status: "NONE", want: []string{"a"}},
		"draft only": {status: "DRAFT", want: []string{"b"}},
		"published":  {status: "PUBLISHED", want: []string{"c"}},
		"no matches": {status: "UNKNOWN", want: []string{}},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := FilterByStatus(matches, tc.status)
			if len(got) != len(tc.want) {
				t.Fatalf("wanted %d matches, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].Match.ID != id {
					t.Errorf("position %d incorrect, wanted: %s, got: %s", i, id, got[i].Match.ID)
				}
			}
		})
	}
}

func TestParseMatchDateTime(t *testing.T) {
	tests := map[string]struct {
		date string
		time string
		want time.Time
	}{
		"iso date":           {date: "2025-01-15", time: "14:30:00", want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		"us date":            {date: "01/15/2025", time: "14:30:00", want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		"fractional seconds": {date: "2025-01-15", time: "14:30:00.0000000", want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		"short time":         {date: "2025-01-15", time: "14:30", want: time.Date(2025, 1, 15, 14, 30, 0, 0, time.UTC)},
		"invalid everything": {date: "invalid-date", time: "invalid-time", want: time.Unix(0, 0).UTC()},
		"invalid time only":  {date: "2025-01-15", time: "invalid-time", want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseMatchDateTime(tc.date, tc.time)
			if !got.Equal(tc.want) {
				t.Errorf("wanted %v, got %v", tc.want, got)
			}
		})
	}
}

func TestGetMatchesWithStatus(t *testing.T) {
	f := newTestFixture(t)

	m1 := model.MatchInfo{ID: "m1", Date: "2025-01-15", Time: "12:00", ManagerID: "mgr1"}
	m2 := model.MatchInfo{ID: "m2", Date: "2025-01-10", Time: "12:00", ManagerID: "mgr1"}
	draft := &model.Assessment{ID: "a2", MatchID: "m2", AssessorID: "mgr1", Status: model.StatusDraft}

	f.db.On("GetMatchesByManager", mock.Anything, "mgr1").Return([]model.MatchInfo{m1, m2}, nil)
	f.db.On("GetAssessmentForMatchByAssessor", mock.Anything, "m1", "mgr1").Return(nil, db.ErrAssessmentNotFound)
	f.db.On("GetReportByMatch", mock.Anything, "m1").Return(nil, db.ErrReportNotFound)
	f.db.On("GetAssessmentForMatchByAssessor", mock.Anything, "m2", "mgr1").Return(draft, nil)
	f.db.On("GetReportByMatch", mock.Anything, "m2").Return(nil, db.ErrReportNotFound)

	got, err := f.ctrl.GetMatchesWithStatus(context.Background(), "mgr1")
	if err != nil {
		t.Fatalf("error getting worklist: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("wanted 2 matches, got %d", len(got))
	}
	// The unreported match outranks the draft even though its date is later.
	if got[0].Match.ID != "m1" || got[0].ReportStatus != model.ReportStatusNone {
		t.Errorf("first entry incorrect: %+v", got[0])
	}
	if got[1].Match.ID != "m2" || got[1].ReportStatus != model.ReportStatusDraft {
		t.Errorf("second entry incorrect: %+v", got[1])
	}
	if got[1].AssessmentID != "a2" {
		t.Errorf("draft id not carried: %+v", got[1])
	}
	if !got[0].CanEdit || !got[1].CanEdit {
		t.Errorf("expected the owning manager to be able to edit")
	}

	f.db.AssertExpectations(t)
}
