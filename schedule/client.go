// Package schedule talks to the federation's fixtures feed. It only reads;
// the feed is the source of truth for match data.
package schedule

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/florentbo/umpire_manager/model"
)

type Client interface {
	LoadMatches() ([]model.MatchInfo, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(url string) (Client, error) {
	if url == "" {
		return nil, fmt.Errorf("schedule feed url is required")
	}
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

// NewForTest creates a client pointed at a fake server.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (c *client) LoadMatches() ([]model.MatchInfo, error) {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/v1/matches", c.url), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed []scheduleMatch
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("error parsing response from schedule feed: %w", err)
	}

	result := make([]model.MatchInfo, 0, len(parsed))
	for _, m := range parsed {
		// Fixtures without an assigned manager cannot be assessed yet.
		if m.ID == "" || m.ManagerID == "" {
			continue
		}
		result = append(result, *m.toMatchInfo())
	}
	return result, nil
}

type scheduleMatch struct {
	ID          string `json:"id"`
	HomeTeam    string `json:"homeTeam"`
	AwayTeam    string `json:"awayTeam"`
	Division    string `json:"division"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	UmpireAID   string `json:"umpire1Id"`
	UmpireAName string `json:"umpire1Name"`
	UmpireBID   string `json:"umpire2Id"`
	UmpireBName string `json:"umpire2Name"`
	ManagerID   string `json:"umpireManagerId"`
}

func (m *scheduleMatch) toMatchInfo() *model.MatchInfo {
	return &model.MatchInfo{
		ID:          m.ID,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		Division:    m.Division,
		Date:        m.Date,
		Time:        m.Time,
		UmpireAID:   m.UmpireAID,
		UmpireAName: m.UmpireAName,
		UmpireBID:   m.UmpireBID,
		UmpireBName: m.UmpireBName,
		ManagerID:   m.ManagerID,
	}
}
