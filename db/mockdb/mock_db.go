package mockdb

import (
	"context"

	"github.com/florentbo/umpire_manager/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) SaveMatch(ctx context.Context, m *model.MatchInfo) error {
	args := db.Called(ctx, m)
	return args.Error(0)
}

func (db *DB) GetMatch(ctx context.Context, id string) (*model.MatchInfo, error) {
	args := db.Called(ctx, id)

	var m *model.MatchInfo
	if args.Get(0) != nil {
		m = args.Get(0).(*model.MatchInfo)
	}
	return m, args.Error(1)
}

func (db *DB) GetMatchesByManager(ctx context.Context, managerID string) ([]model.MatchInfo, error) {
	args := db.Called(ctx, managerID)

	var r []model.MatchInfo
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchInfo)
	}
	return r, args.Error(1)
}

func (db *DB) SaveDraft(ctx context.Context, a *model.Assessment) error {
	args := db.Called(ctx, a)
	return args.Error(0)
}

func (db *DB) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	args := db.Called(ctx, id)

	var a *model.Assessment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Assessment)
	}
	return a, args.Error(1)
}

func (db *DB) GetAssessmentForMatchByAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error) {
	args := db.Called(ctx, matchID, assessorID)

	var a *model.Assessment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Assessment)
	}
	return a, args.Error(1)
}

func (db *DB) GetDraftByMatchAndAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error) {
	args := db.Called(ctx, matchID, assessorID)

	var a *model.Assessment
	if args.Get(0) != nil {
		a = args.Get(0).(*model.Assessment)
	}
	return a, args.Error(1)
}

func (db *DB) UpdateDraft(ctx context.Context, a *model.Assessment) error {
	args := db.Called(ctx, a)
	return args.Error(0)
}

func (db *DB) DeleteDraft(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) ListPublishedAssessments(ctx context.Context) ([]model.Assessment, error) {
	args := db.Called(ctx)

	var r []model.Assessment
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Assessment)
	}
	return r, args.Error(1)
}

func (db *DB) ListPublishedAssessmentsByAssessor(ctx context.Context, assessorID string) ([]model.Assessment, error) {
	args := db.Called(ctx, assessorID)

	var r []model.Assessment
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Assessment)
	}
	return r, args.Error(1)
}

func (db *DB) PublishDraft(ctx context.Context, a *model.Assessment, r *model.MatchReport) error {
	args := db.Called(ctx, a, r)
	return args.Error(0)
}

func (db *DB) SavePublished(ctx context.Context, a *model.Assessment, r *model.MatchReport) error {
	args := db.Called(ctx, a, r)
	return args.Error(0)
}

func (db *DB) GetReport(ctx context.Context, id string) (*model.MatchReport, error) {
	args := db.Called(ctx, id)

	var r *model.MatchReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.MatchReport)
	}
	return r, args.Error(1)
}

func (db *DB) GetReportByMatch(ctx context.Context, matchID string) (*model.MatchReport, error) {
	args := db.Called(ctx, matchID)

	var r *model.MatchReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.MatchReport)
	}
	return r, args.Error(1)
}

func (db *DB) ListReports(ctx context.Context) ([]model.MatchReport, error) {
	args := db.Called(ctx)

	var r []model.MatchReport
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchReport)
	}
	return r, args.Error(1)
}

func (db *DB) ListReportsByAssessor(ctx context.Context, assessorID string) ([]model.MatchReport, error) {
	args := db.Called(ctx, assessorID)

	var r []model.MatchReport
	if args.Get(0) != nil {
		r = args.Get(0).([]model.MatchReport)
	}
	return r, args.Error(1)
}
