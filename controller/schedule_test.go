package controller

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/florentbo/umpire_manager/model"
	"github.com/stretchr/testify/mock"
)

const scheduleCSV = `MATCH ID,DATE,TIME,HOME TEAM,AWAY TEAM,DIVISION,UMPIRE 1 ID,UMPIRE 1 NAME,UMPIRE 2 ID,UMPIRE 2 NAME,MANAGER ID
m1,2025-01-18,14:30:00,Antwerp,Brussels,regional,ump1,John Smith,ump2,Ann Peeters,mgr1
m2,2025-01-25,11:00:00,Gent,Leuven,national,ump3,Johan Claes,ump4,Marie Dubois,mgr2
`

func TestImportMatches(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestFixture(t)
		var saved []string
		f.db.On("SaveMatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = append(saved, args.Get(1).(*model.MatchInfo).ID)
		}).Return(nil)

		count, err := f.ctrl.ImportMatches(context.Background(), strings.NewReader(scheduleCSV))
		if err != nil {
			t.Fatalf("error importing matches: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2 imported matches, got %d", count)
		}
		if len(saved) != 2 || saved[0] != "m1" || saved[1] != "m2" {
			t.Errorf("wrong matches saved: %v", saved)
		}
	})

	t.Run("reordered columns", func(t *testing.T) {
		f := newTestFixture(t)
		var got *model.MatchInfo
		f.db.On("SaveMatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			got = args.Get(1).(*model.MatchInfo)
		}).Return(nil)

		csv := `MANAGER ID,MATCH ID,HOME TEAM,AWAY TEAM,DATE,TIME,DIVISION,UMPIRE 1 ID,UMPIRE 1 NAME,UMPIRE 2 ID,UMPIRE 2 NAME
mgr1,m1,Antwerp,Brussels,2025-01-18,14:30:00,regional,ump1,John Smith,ump2,Ann Peeters
`
		if _, err := f.ctrl.ImportMatches(context.Background(), strings.NewReader(csv)); err != nil {
			t.Fatalf("error importing matches: %v", err)
		}
		if got.ID != "m1" || got.ManagerID != "mgr1" || got.HomeTeam != "Antwerp" {
			t.Errorf("columns mapped incorrectly: %+v", got)
		}
	})

	t.Run("missing required column", func(t *testing.T) {
		f := newTestFixture(t)
		csv := `MATCH ID,DATE,TIME,HOME TEAM,AWAY TEAM,DIVISION,UMPIRE 1 ID,UMPIRE 1 NAME,UMPIRE 2 ID,UMPIRE 2 NAME
m1,2025-01-18,14:30:00,Antwerp,Brussels,regional,ump1,John Smith,ump2,Ann Peeters
`
		_, err := f.ctrl.ImportMatches(context.Background(), strings.NewReader(csv))
		if err == nil || !strings.Contains(err.Error(), "MANAGER ID") {
			t.Errorf("expected a missing column error, got: %v", err)
		}

		f.db.AssertNotCalled(t, "SaveMatch", mock.Anything, mock.Anything)
	})

	t.Run("line without a match id", func(t *testing.T) {
		f := newTestFixture(t)
		csv := `MATCH ID,DATE,TIME,HOME TEAM,AWAY TEAM,DIVISION,UMPIRE 1 ID,UMPIRE 1 NAME,UMPIRE 2 ID,UMPIRE 2 NAME,MANAGER ID
,2025-01-18,14:30:00,Antwerp,Brussels,regional,ump1,John Smith,ump2,Ann Peeters,mgr1
`
		_, err := f.ctrl.ImportMatches(context.Background(), strings.NewReader(csv))
		if err == nil {
			t.Errorf("expected an error for a line without a match id")
		}
	})
}

func TestSyncMatches(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newTestFixture(t)
		f.schedule.On("LoadMatches").Return([]model.MatchInfo{*testMatch()}, nil)
		f.db.On("SaveMatch", mock.Anything, mock.Anything).Return(nil)

		if err := f.ctrl.SyncMatches(context.Background()); err != nil {
			t.Fatalf("error syncing matches: %v", err)
		}

		f.db.AssertExpectations(t)
	})

	t.Run("schedule failure", func(t *testing.T) {
		f := newTestFixture(t)
		loadErr := errors.New("schedule api down")
		f.schedule.On("LoadMatches").Return(nil, loadErr)

		if err := f.ctrl.SyncMatches(context.Background()); !errors.Is(err, loadErr) {
			t.Errorf("expected the load error, got: %v", err)
		}

		f.db.AssertNotCalled(t, "SaveMatch", mock.Anything, mock.Anything)
	})
}

func TestRunPeriodicScheduleUpdates(t *testing.T) {
	f := newTestFixture(t)

	var mu sync.Mutex
	syncs := 0
	f.schedule.On("LoadMatches").Run(func(args mock.Arguments) {
		mu.Lock()
		defer mu.Unlock()
		syncs++
	}).Return([]model.MatchInfo{}, nil)

	shutdown := make(chan bool)
	var wg sync.WaitGroup
	wg.Add(1)
	go f.ctrl.RunPeriodicScheduleUpdates(50*time.Millisecond, shutdown, &wg)

	time.Sleep(160 * time.Millisecond)
	close(shutdown)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if syncs < 2 || syncs > 4 {
		t.Errorf("expected around 3 syncs, got %d", syncs)
	}
}
