package controller

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/florentbo/umpire_manager/db"
	"github.com/florentbo/umpire_manager/directory"
	"github.com/florentbo/umpire_manager/model"
	"github.com/florentbo/umpire_manager/rubric"
	"github.com/florentbo/umpire_manager/schedule"
	"github.com/itbasis/go-clock"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Draft/publish lifecycle. A (match, assessor) pair moves from no
	// assessment to a single draft to a published report, and publishing is
	// one way.
	CreateDraftAssessment(ctx context.Context, cmd SaveAssessmentCommand) (*model.Assessment, error)
	UpdateDraftAssessment(ctx context.Context, cmd UpdateAssessmentCommand) (*model.Assessment, error)
	// PublishDraft validates the draft, flips it to PUBLISHED and creates
	// the report snapshot in one unit.
	PublishDraft(ctx context.Context, draftID string) (*model.MatchReport, error)
	// CreateAssessment is the direct-publish path: score and publish in one
	// call, without an intermediate draft.
	CreateAssessment(ctx context.Context, cmd SaveAssessmentCommand) (*model.MatchReport, error)
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
	FindDraftByMatchAndAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error)
	DeleteDraft(ctx context.Context, id string) error

	// GetMatchesWithStatus derives the manager's worklist: every assigned
	// match annotated with its report status, in priority order.
	GetMatchesWithStatus(ctx context.Context, managerID string) ([]model.MatchWithReportStatus, error)

	ListReports(ctx context.Context) ([]model.ReportSummary, error)
	GetReport(ctx context.Context, id string) (*model.MatchReport, error)
	GetReportSummary(ctx context.Context, id string) (*model.ReportSummary, error)

	FindAssessedUmpiresByName(ctx context.Context, term string) ([]model.AssessedUmpire, error)
	FindAssessedUmpiresByManagerAndName(ctx context.Context, managerID, term string) ([]model.AssessedUmpire, error)
	FindAssessmentsByUmpire(ctx context.Context, umpireID string) ([]model.Assessment, error)
	FindAssessmentsByManagerAndUmpire(ctx context.Context, managerID, umpireID string) ([]model.Assessment, error)

	// ImportMatches parses a schedule CSV and upserts the fixtures it
	// contains. Returns the number of matches imported.
	ImportMatches(ctx context.Context, r io.Reader) (int, error)
	SyncMatches(ctx context.Context) error
	RunPeriodicScheduleUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)
}

type controller struct {
	clock     clock.Clock
	db        db.DB
	schedule  schedule.Client
	rubric    rubric.Provider
	directory directory.Resolver
}

func New(clock clock.Clock, db db.DB, schedule schedule.Client, rubric rubric.Provider, directory directory.Resolver) (C, error) {
	c := &controller{
		clock:     clock,
		db:        db,
		schedule:  schedule,
		rubric:    rubric,
		directory: directory,
	}
	return c, nil
}
