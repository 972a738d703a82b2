package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/florentbo/umpire_manager/db"
	"github.com/florentbo/umpire_manager/model"
	"github.com/google/uuid"
)

// ErrAlreadyPublished means the targeted assessment left the draft state, so
// the requested draft operation can never succeed. Unlike a not-found error
// this is not fixable by retrying.
var ErrAlreadyPublished = errors.New("assessment is already published")

// SaveAssessmentCommand carries the raw form answers for both umpires of one
// match. Level selects the rubric; when empty the match's division is used.
type SaveAssessmentCommand struct {
	MatchID    string            `json:"matchId"`
	AssessorID string            `json:"assessorId"`
	Level      string            `json:"level,omitempty"`
	UmpireA    model.UmpireInput `json:"umpireA"`
	UmpireB    model.UmpireInput `json:"umpireB"`
}

type UpdateAssessmentCommand struct {
	ID      string              `json:"id"`
	UmpireA *model.UmpireUpdate `json:"umpireA,omitempty"`
	UmpireB *model.UmpireUpdate `json:"umpireB,omitempty"`
}

func (c *controller) CreateDraftAssessment(ctx context.Context, cmd SaveAssessmentCommand) (*model.Assessment, error) {
	a, err := c.newAssessment(ctx, cmd)
	if err != nil {
		return nil, err
	}

	// The storage layer enforces the one-draft invariant with a unique
	// index, but checking first gives a clean error without burning an id.
	if _, err := c.db.GetDraftByMatchAndAssessor(ctx, cmd.MatchID, cmd.AssessorID); err == nil {
		return nil, db.ErrDraftExists
	} else if !errors.Is(err, db.ErrAssessmentNotFound) {
		return nil, err
	}

	if err := c.db.SaveDraft(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (c *controller) UpdateDraftAssessment(ctx context.Context, cmd UpdateAssessmentCommand) (*model.Assessment, error) {
	a, err := c.db.GetAssessment(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if a.Status != model.StatusDraft {
		return nil, ErrAlreadyPublished
	}

	cfg, err := c.rubric.Get(a.Level)
	if err != nil {
		return nil, fmt.Errorf("error loading rubric for level %s: %w", a.Level, err)
	}

	next := a.Update(cfg, cmd.UmpireA, cmd.UmpireB, c.clock.Now().UTC())
	if err := c.db.UpdateDraft(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

func (c *controller) PublishDraft(ctx context.Context, draftID string) (*model.MatchReport, error) {
	a, err := c.db.GetAssessment(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if a.Status != model.StatusDraft {
		return nil, ErrAlreadyPublished
	}
	if err := a.ValidateForPublish(); err != nil {
		return nil, err
	}

	match, err := c.db.GetMatch(ctx, a.MatchID)
	if err != nil {
		return nil, fmt.Errorf("error loading match %s for publish: %w", a.MatchID, err)
	}
	if err := c.checkMatchUnreported(ctx, a.MatchID); err != nil {
		return nil, err
	}

	now := c.clock.Now().UTC()
	published := *a
	published.Status = model.StatusPublished
	published.Updated = now

	report := model.NewMatchReport(uuid.NewString(), *match, published, now)
	if err := c.db.PublishDraft(ctx, &published, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *controller) CreateAssessment(ctx context.Context, cmd SaveAssessmentCommand) (*model.MatchReport, error) {
	a, err := c.newAssessment(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if err := a.ValidateForPublish(); err != nil {
		return nil, err
	}

	match, err := c.db.GetMatch(ctx, cmd.MatchID)
	if err != nil {
		return nil, fmt.Errorf("error loading match %s for publish: %w", cmd.MatchID, err)
	}
	if err := c.checkMatchUnreported(ctx, cmd.MatchID); err != nil {
		return nil, err
	}

	a.Status = model.StatusPublished
	report := model.NewMatchReport(uuid.NewString(), *match, *a, a.Created)
	if err := c.db.SavePublished(ctx, a, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *controller) GetAssessment(ctx context.Context, id string) (*model.Assessment, error) {
	return c.db.GetAssessment(ctx, id)
}

func (c *controller) FindDraftByMatchAndAssessor(ctx context.Context, matchID, assessorID string) (*model.Assessment, error) {
	return c.db.GetDraftByMatchAndAssessor(ctx, matchID, assessorID)
}

func (c *controller) DeleteDraft(ctx context.Context, id string) error {
	return c.db.DeleteDraft(ctx, id)
}

// checkMatchUnreported rejects a publish when the match already has a
// published assessment. The storage layer backs this with a unique index, the
// pre-check gives a clean error before a report id is minted.
func (c *controller) checkMatchUnreported(ctx context.Context, matchID string) error {
	if _, err := c.db.GetReportByMatch(ctx, matchID); err == nil {
		return db.ErrReportExists
	} else if !errors.Is(err, db.ErrReportNotFound) {
		return err
	}
	return nil
}

func (c *controller) newAssessment(ctx context.Context, cmd SaveAssessmentCommand) (*model.Assessment, error) {
	match, err := c.db.GetMatch(ctx, cmd.MatchID)
	if err != nil {
		return nil, err
	}

	level := cmd.Level
	if level == "" {
		level = match.Division
	}
	cfg, err := c.rubric.Get(level)
	if err != nil {
		return nil, fmt.Errorf("error loading rubric for level %s: %w", level, err)
	}

	a := model.NewAssessment(uuid.NewString(), cmd.MatchID, cmd.AssessorID, cfg, cmd.UmpireA, cmd.UmpireB, c.clock.Now().UTC())
	return &a, nil
}
