package web

import (
	"time"

	"github.com/florentbo/umpire_manager/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/matches", func(r chi.Router) {
		// The manager's worklist, optionally narrowed by report status.
		r.Get("/", worklistHandler(ctrl, render))
	})

	r.Route("/assessments", func(r chi.Router) {
		r.Post("/", createDraftHandler(ctrl, render))
		r.Get("/draft", findDraftHandler(ctrl, render))
		r.Get("/{assessmentID}", getAssessmentHandler(ctrl, render))
		r.Put("/{assessmentID}", updateDraftHandler(ctrl, render))
		r.Delete("/{assessmentID}", deleteDraftHandler(ctrl, render))
		r.Post("/{assessmentID}/publish", publishDraftHandler(ctrl, render))
	})

	r.Route("/reports", func(r chi.Router) {
		r.Get("/", listReportsHandler(ctrl, render))
		// Score and publish in one call, without an intermediate draft.
		r.Post("/", createReportHandler(ctrl, render))
		r.Get("/{reportID}", getReportHandler(ctrl, render))
	})

	r.Route("/umpires", func(r chi.Router) {
		r.Get("/", umpireSearchHandler(ctrl, render))
		r.Get("/{umpireID}/assessments", umpireAssessmentsHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("um", map[string]string{"admin": "pa55word"})) // TODO: read from DB instead
		r.Use(middleware.Timeout(30 * time.Second))                               // Set a longer timeout for /admin actions

		r.Post("/matches", importMatchesHandler(ctrl, render))
		r.Post("/sync", syncMatchesHandler(ctrl, render))
	})

	return r
}
