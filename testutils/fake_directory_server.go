package testutils

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

var directoryPeople = map[string]string{
	"mgr-janssens": "Bart Janssens",
	"mgr-maes":     "Els Maes",
	"ump-smith":    "John Smith",
	"ump-peeters":  "Ann Peeters",
	"ump-claes":    "Johan Claes",
	"ump-dubois":   "Marie Dubois",
}

type FakeDirectoryServer struct {
	s        *httptest.Server
	requests atomic.Int64
}

func NewFakeDirectoryServer() *FakeDirectoryServer {
	f := &FakeDirectoryServer{}

	r := chi.NewRouter()
	r.Get("/v1/people/{personID}", f.personHandler)
	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeDirectoryServer) Close() {
	f.s.Close()
}

func (f *FakeDirectoryServer) URL() string {
	return f.s.URL
}

// RequestCount reports how many lookups reached the server, which lets tests
// verify the resolver's cache.
func (f *FakeDirectoryServer) RequestCount() int {
	return int(f.requests.Load())
}

func (f *FakeDirectoryServer) personHandler(w http.ResponseWriter, r *http.Request) {
	f.requests.Add(1)

	personID := chi.URLParam(r, "personID")
	name, found := directoryPeople[personID]
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"id": %q, "displayName": %q}`, personID, name)
}
