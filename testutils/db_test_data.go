package testutils

import (
	"context"
	"log"

	"github.com/florentbo/umpire_manager/containers"
	"github.com/florentbo/umpire_manager/db"
	"github.com/florentbo/umpire_manager/model"
)

var (
	DerbyMatch = &model.MatchInfo{
		ID:          "match-derby",
		HomeTeam:    "Antwerp",
		AwayTeam:    "Brussels",
		Division:    "regional",
		Date:        "2025-01-18",
		Time:        "14:30:00",
		UmpireAID:   "ump-smith",
		UmpireAName: "John Smith",
		UmpireBID:   "ump-peeters",
		UmpireBName: "Ann Peeters",
		ManagerID:   "mgr-janssens",
	}
	CupFinal = &model.MatchInfo{
		ID:          "match-cup-final",
		HomeTeam:    "Gent",
		AwayTeam:    "Leuven",
		Division:    "national",
		Date:        "2025-01-25",
		Time:        "11:00:00",
		UmpireAID:   "ump-claes",
		UmpireAName: "Johan Claes",
		UmpireBID:   "ump-dubois",
		UmpireBName: "Marie Dubois",
		ManagerID:   "mgr-janssens",
	}
	// LegacyMatch uses the old export's date and time formats.
	LegacyMatch = &model.MatchInfo{
		ID:          "match-legacy",
		HomeTeam:    "Liege",
		AwayTeam:    "Namur",
		Division:    "regional",
		Date:        "11/30/2024",
		Time:        "19:00",
		UmpireAID:   "ump-smith",
		UmpireAName: "John Smith",
		UmpireBID:   "ump-claes",
		UmpireBName: "Johan Claes",
		ManagerID:   "mgr-maes",
	}
)

type TestDB struct {
	container *containers.DBContainer
	DB        db.DB
}

func NewTestDB() *TestDB {
	container := containers.NewDBContainer()

	db, err := db.New(context.Background(), container.ConnectionString())
	if err != nil {
		log.Fatalf("error connecting to db in test container: %v", err)
	}

	if err := InsertTestMatches(db); err != nil {
		log.Fatalf("error populating db in test container: %v", err)
	}

	return &TestDB{
		container: container,
		DB:        db,
	}
}

func (db *TestDB) Shutdown() {
	db.container.Shutdown()
}

func InsertTestMatches(db db.DB) error {
	matches := []*model.MatchInfo{
		DerbyMatch,
		CupFinal,
		LegacyMatch,
	}
	for _, m := range matches {
		if err := db.SaveMatch(context.Background(), m); err != nil {
			return err
		}
	}
	return nil
}
