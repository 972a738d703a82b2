package db

import (
	"context"

	"github.com/florentbo/umpire_manager/model"
)

type DB interface {
	// Matches come from the schedule feed. SaveMatch upserts by match id.
	SaveMatch(ctx context.Context, m *model.MatchInfo) error
	GetMatch(ctx context.Context, id string) (*model.MatchInfo, error)
	GetMatchesByManager(ctx context.Context, managerID string) ([]model.MatchInfo, error)

	// SaveDraft inserts a new draft. At most one draft may exist per
	// (match, assessor) pair; a second insert fails with ErrDraftExists.
	SaveDraft(ctx context.Context, a *model.Assessment) error
	GetAssessment(ctx context.Context, id string) (*model.Assessment, error)
	GetAssessmentForMatchByAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error)
	GetDraftByMatchAndAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error)
	// UpdateDraft overwrites a draft in place. It fails with
	// ErrAssessmentNotFound when the id does not exist or is not a draft.
	UpdateDraft(ctx context.Context, a *model.Assessment) error
	DeleteDraft(ctx context.Context, id string) error
	ListPublishedAssessments(ctx context.Context) ([]model.Assessment, error)
	ListPublishedAssessmentsByAssessor(ctx context.Context, assessorID string) ([]model.Assessment, error)

	// PublishDraft flips the draft to PUBLISHED and stores the report in a
	// single transaction, so a published assessment can never exist without
	// its report. SavePublished is the direct-publish path with the same
	// guarantee.
	PublishDraft(ctx context.Context, a *model.Assessment, r *model.MatchReport) error
	SavePublished(ctx context.Context, a *model.Assessment, r *model.MatchReport) error

	GetReport(ctx context.Context, id string) (*model.MatchReport, error)
	GetReportByMatch(ctx context.Context, matchID string) (*model.MatchReport, error)
	ListReports(ctx context.Context) ([]model.MatchReport, error)
	ListReportsByAssessor(ctx context.Context, assessorID string) ([]model.MatchReport, error)
}
