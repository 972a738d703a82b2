package controller

import (
	"context"
	"fmt"

	"github.com/florentbo/umpire_manager/model"
)

func (c *controller) ListReports(ctx context.Context) ([]model.ReportSummary, error) {
	reports, err := c.db.ListReports(ctx)
	if err != nil {
		return nil, err
	}
	SortReports(reports)

	summaries := make([]model.ReportSummary, 0, len(reports))
	for i := range reports {
		s, err := c.summarize(ctx, &reports[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *s)
	}
	return summaries, nil
}

func (c *controller) GetReport(ctx context.Context, id string) (*model.MatchReport, error) {
	return c.db.GetReport(ctx, id)
}

func (c *controller) GetReportSummary(ctx context.Context, id string) (*model.ReportSummary, error) {
	r, err := c.db.GetReport(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.summarize(ctx, r)
}

func (c *controller) summarize(ctx context.Context, r *model.MatchReport) (*model.ReportSummary, error) {
	assessorName, err := c.directory.Resolve(ctx, r.Assessment.AssessorID)
	if err != nil {
		return nil, fmt.Errorf("error resolving assessor %s: %w", r.Assessment.AssessorID, err)
	}

	return &model.ReportSummary{
		ReportID:     r.ID,
		Match:        r.Match,
		AssessorID:   r.Assessment.AssessorID,
		AssessorName: assessorName,
		Submitted:    r.Submitted,
		UmpireA:      summarizeUmpire(&r.Assessment.UmpireA, r.Match.UmpireAName),
		UmpireB:      summarizeUmpire(&r.Assessment.UmpireB, r.Match.UmpireBName),
	}, nil
}

func summarizeUmpire(u *model.UmpireAssessment, name string) model.UmpireSummary {
	return model.UmpireSummary{
		ID:         u.UmpireID,
		Name:       name,
		Score:      u.TotalScore,
		Grade:      u.Grade,
		Conclusion: u.Conclusion,
	}
}
