package controller

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/florentbo/umpire_manager/db"
	"github.com/florentbo/umpire_manager/model"
)

func (c *controller) FindAssessedUmpiresByName(ctx context.Context, term string) ([]model.AssessedUmpire, error) {
	assessments, err := c.db.ListPublishedAssessments(ctx)
	if err != nil {
		return nil, err
	}
	return c.matchUmpires(ctx, assessments, term)
}

func (c *controller) FindAssessedUmpiresByManagerAndName(ctx context.Context, managerID, term string) ([]model.AssessedUmpire, error) {
	assessments, err := c.db.ListPublishedAssessmentsByAssessor(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return c.matchUmpires(ctx, assessments, term)
}

func (c *controller) FindAssessmentsByUmpire(ctx context.Context, umpireID string) ([]model.Assessment, error) {
	assessments, err := c.db.ListPublishedAssessments(ctx)
	if err != nil {
		return nil, err
	}
	return filterByUmpire(assessments, umpireID), nil
}

func (c *controller) FindAssessmentsByManagerAndUmpire(ctx context.Context, managerID, umpireID string) ([]model.Assessment, error) {
	assessments, err := c.db.ListPublishedAssessmentsByAssessor(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return filterByUmpire(assessments, umpireID), nil
}

// matchUmpires joins each published assessment to its match to get umpire
// display names and collects the umpires whose name contains the term,
// case-insensitively. An empty term matches everything. Assessments whose
// match has disappeared are skipped, not fatal: a stale record must not take
// the whole search down.
func (c *controller) matchUmpires(ctx context.Context, assessments []model.Assessment, term string) ([]model.AssessedUmpire, error) {
	term = strings.ToLower(strings.TrimSpace(term))

	seen := make(map[string]bool)
	result := make([]model.AssessedUmpire, 0, 8)
	for _, a := range assessments {
		m, err := c.db.GetMatch(ctx, a.MatchID)
		if err != nil {
			if errors.Is(err, db.ErrMatchNotFound) {
				log.Printf("no match %s for assessment %s, skipping", a.MatchID, a.ID)
				continue
			}
			return nil, err
		}

		for _, u := range []model.AssessedUmpire{
			{ID: a.UmpireA.UmpireID, Name: m.UmpireAName},
			{ID: a.UmpireB.UmpireID, Name: m.UmpireBName},
		} {
			if u.ID == "" || seen[u.ID] {
				continue
			}
			if term != "" && !strings.Contains(strings.ToLower(u.Name), term) {
				continue
			}
			seen[u.ID] = true
			result = append(result, u)
		}
	}
	return result, nil
}

func filterByUmpire(assessments []model.Assessment, umpireID string) []model.Assessment {
	result := make([]model.Assessment, 0, len(assessments))
	for _, a := range assessments {
		if a.UmpireA.UmpireID == umpireID || a.UmpireB.UmpireID == umpireID {
			result = append(result, a)
		}
	}
	return result
}
