package schedule

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/florentbo/umpire_manager/testutils"
)

func TestLoadMatches(t *testing.T) {
	fake := testutils.NewFakeScheduleServer()
	defer fake.Close()

	c := NewForTest(fake.URL())
	matches, err := c.LoadMatches()
	if err != nil {
		t.Fatalf("error loading matches: %v", err)
	}

	// The feed has three fixtures, one of them without an assigned manager.
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	m := matches[0]
	if m.ID != "match-derby" {
		t.Errorf("wrong match id: %s", m.ID)
	}
	if m.HomeTeam != "Antwerp" || m.AwayTeam != "Brussels" {
		t.Errorf("teams mapped incorrectly: %s vs %s", m.HomeTeam, m.AwayTeam)
	}
	if m.UmpireAID != "ump-smith" || m.UmpireBID != "ump-peeters" {
		t.Errorf("umpires mapped incorrectly: %s, %s", m.UmpireAID, m.UmpireBID)
	}
	if m.ManagerID != "mgr-janssens" {
		t.Errorf("manager mapped incorrectly: %s", m.ManagerID)
	}

	// Fractional seconds in the feed are kept verbatim and handled at sort
	// time.
	if matches[1].Time != "11:00:00.0000000" {
		t.Errorf("time altered during load: %s", matches[1].Time)
	}
}

func TestLoadMatches_serverError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewForTest(server.URL)
	if _, err := c.LoadMatches(); err == nil {
		t.Errorf("expected an error for a 500 response")
	}
}

func TestNew_requiresURL(t *testing.T) {
	if _, err := New(""); err == nil {
		t.Errorf("expected an error for an empty url")
	}
}
