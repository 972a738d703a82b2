package controller

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/florentbo/umpire_manager/model"
)

// ImportMatches parses the federation's schedule export (CSV) and upserts
// every fixture it contains. Returns the number of matches imported.
func (c *controller) ImportMatches(ctx context.Context, r io.Reader) (int, error) {
	reader, err := newScheduleCSVReader(r)
	if err != nil {
		return 0, err
	}

	count := 0
	for {
		m, err := reader.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return count, err
		}

		if err := c.db.SaveMatch(ctx, m); err != nil {
			return count, fmt.Errorf("error importing match %s: %w", m.ID, err)
		}
		count++
	}

	return count, nil
}

func (c *controller) SyncMatches(ctx context.Context) error {
	start := time.Now()
	log.Printf("schedule sync starting at %v", start.Format(time.DateTime))

	matches, err := c.schedule.LoadMatches()
	if err != nil {
		return err
	}

	for _, m := range matches {
		if err := c.db.SaveMatch(ctx, &m); err != nil {
			return fmt.Errorf("error saving match (%s vs %s): %w", m.HomeTeam, m.AwayTeam, err)
		}
	}

	log.Printf("schedule sync finished, took %v", time.Since(start))
	return nil
}

func (c *controller) RunPeriodicScheduleUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	ticker := time.NewTicker(frequency)
	defer wg.Done()

	for {
		select {
		case <-shutdown:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := c.SyncMatches(ctx); err != nil {
				log.Printf("%v", err)
			}
		}
	}
}

type scheduleCSVReader struct {
	csvReader   *csv.Reader
	idIdx       int
	dateIdx     int
	timeIdx     int
	homeIdx     int
	awayIdx     int
	divisionIdx int
	umpAIDIdx   int
	umpANameIdx int
	umpBIDIdx   int
	umpBNameIdx int
	managerIdx  int
}

func newScheduleCSVReader(r io.Reader) (*scheduleCSVReader, error) {
	s := &scheduleCSVReader{csvReader: csv.NewReader(r)}

	header, err := s.csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading schedule CSV file header: %v", err)
	}

	cols := map[string]*int{
		"MATCH ID":      &s.idIdx,
		"DATE":          &s.dateIdx,
		"TIME":          &s.timeIdx,
		"HOME TEAM":     &s.homeIdx,
		"AWAY TEAM":     &s.awayIdx,
		"DIVISION":      &s.divisionIdx,
		"UMPIRE 1 ID":   &s.umpAIDIdx,
		"UMPIRE 1 NAME": &s.umpANameIdx,
		"UMPIRE 2 ID":   &s.umpBIDIdx,
		"UMPIRE 2 NAME": &s.umpBNameIdx,
		"MANAGER ID":    &s.managerIdx,
	}
	for p := range cols {
		*cols[p] = -1
	}
	for i, p := range header {
		if idx, found := cols[p]; found {
			*idx = i
		}
	}
	for p, idx := range cols {
		if *idx == -1 {
			return nil, fmt.Errorf("error finding required column %q in schedule CSV", p)
		}
	}

	return s, nil
}

func (s *scheduleCSVReader) readLine() (*model.MatchInfo, error) {
	record, err := s.csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("error reading line in schedule file (%v): %w", record, err)
	}

	m := &model.MatchInfo{
		ID:          record[s.idIdx],
		HomeTeam:    record[s.homeIdx],
		AwayTeam:    record[s.awayIdx],
		Division:    record[s.divisionIdx],
		Date:        record[s.dateIdx],
		Time:        record[s.timeIdx],
		UmpireAID:   record[s.umpAIDIdx],
		UmpireAName: record[s.umpANameIdx],
		UmpireBID:   record[s.umpBIDIdx],
		UmpireBName: record[s.umpBNameIdx],
		ManagerID:   record[s.managerIdx],
	}
	if m.ID == "" {
		return nil, fmt.Errorf("schedule line is missing a match id (%v)", record)
	}
	return m, nil
}
