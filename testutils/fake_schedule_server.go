package testutils

import (
	"embed"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed scheduledata
var scheduledata embed.FS

type FakeScheduleServer struct {
	s *httptest.Server
}

func NewFakeScheduleServer() *FakeScheduleServer {
	r := chi.NewRouter()
	r.Get("/v1/matches", matchesHandler)

	return &FakeScheduleServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeScheduleServer) Close() {
	f.s.Close()
}

func (f *FakeScheduleServer) URL() string {
	return f.s.URL
}

func matchesHandler(w http.ResponseWriter, r *http.Request) {
	data, err := scheduledata.ReadFile("scheduledata/matches.json")
	if err != nil {
		log.Printf("error reading matches.json: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
