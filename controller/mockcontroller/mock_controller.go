package mockcontroller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/florentbo/umpire_manager/controller"
	"github.com/florentbo/umpire_manager/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) CreateDraftAssessment(ctx context.Context, cmd controller.SaveAssessmentCommand) (*model.Assessment, error) {
	args := c.Called(ctx, cmd)

	var a *model.Assessment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Assessment)
	}
	return a, args.Error(1)
}

func (c *C) UpdateDraftAssessment(ctx context.Context, cmd controller.UpdateAssessmentCommand) (*model.Assessment, error) {
	args := c.Called(ctx, cmd)

	var a *model.Assessment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Assessment)
	}
	return a, args.Error(1)
}

func (c *C) PublishDraft(ctx context.Context, draftID string) (*model.MatchReport, error) {
	args := c.Called(ctx, draftID)

	var r *model.MatchReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.MatchReport)
	}
	return r, args.Error(1)
}

func (c *C) CreateAssessment(ctx context.Context, cmd controller.SaveAssessmentCommand) (*model.MatchReport, error) {
	args := c.Called(ctx, cmd)

	var r *model.MatchReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.MatchReport)
	}
	return r, args.Error(1)
}

func (c *C) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	args := c.Called(ctx, id)

	var a *model.Assessment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Assessment)
	}
	return a, args.Error(1)
}

func (c *C) FindDraftByMatchAndAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error) {
	args := c.Called(ctx, matchID, assessorID)

	var a *model.Assessment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Assessment)
	}
	return a, args.Error(1)
}

func (c *C) DeleteDraft(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) GetMatchesWithStatus(ctx context.Context, managerID string) ([]model.MatchWithReportStatus, error) {
	args := c.Called(ctx, managerID)

	var r []model.MatchWithReportStatus
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchWithReportStatus)
	}
	return r, args.Error(1)
}

func (c *C) ListReports(ctx context.Context) ([]model.ReportSummary, error) {
	args := c.Called(ctx)

	var r []model.ReportSummary
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ReportSummary)
	}
	return r, args.Error(1)
}

func (c *C) GetReport(ctx context.Context, id string) (*model.MatchReport, error) {
	args := c.Called(ctx, id)

	var r *model.MatchReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.MatchReport)
	}
	return r, args.Error(1)
}

func (c *C) GetReportSummary(ctx context.Context, id string) (*model.ReportSummary, error) {
	args := c.Called(ctx, id)

	var r *model.ReportSummary
	if args.Get(0) != nil {
		r = args.Get(0).(*model.ReportSummary)
	}
	return r, args.Error(1)
}

func (c *C) FindAssessedUmpiresByName(ctx context.Context, term string) ([]model.AssessedUmpire, error) {
	args := c.Called(ctx, term)

	var r []model.AssessedUmpire
	if args.Get(0) != nil {
		r = args.Get(0).([]model.AssessedUmpire)
	}
	return r, args.Error(1)
}

func (c *C) FindAssessedUmpiresByManagerAndName(ctx context.Context, managerID, term string) ([]model.AssessedUmpire, error) {
	args := c.Called(ctx, managerID, term)

	var r []model.AssessedUmpire
	if args.Get(0) != nil {
		r = args.Get(0).([]model.AssessedUmpire)
	}
	return r, args.Error(1)
}

func (c *C) FindAssessmentsByUmpire(ctx context.Context, umpireID string) ([]model.Assessment, error) {
	args := c.Called(ctx, umpireID)

	var r []model.Assessment
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Assessment)
	}
	return r, args.Error(1)
}

func (c *C) FindAssessmentsByManagerAndUmpire(ctx context.Context, managerID, umpireID string) ([]model.Assessment, error) {
	args := c.Called(ctx, managerID, umpireID)

	var r []model.Assessment
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Assessment)
	}
	return r, args.Error(1)
}

func (c *C) ImportMatches(ctx context.Context, r io.Reader) (int, error) {
	args := c.Called(ctx, r)
	return args.Int(0), args.Error(1)
}

func (c *C) SyncMatches(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicScheduleUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}
