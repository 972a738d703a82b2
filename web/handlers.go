package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/florentbo/umpire_manager/controller"
	"github.com/florentbo/umpire_manager/db"
	"github.com/florentbo/umpire_manager/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "umpire manager")
	}
}

func worklistHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		managerID := r.URL.Query().Get("managerId")
		if managerID == "" {
			renderBadRequest(render, w, "managerId is required")
			return
		}

		matches, err := ctrl.GetMatchesWithStatus(r.Context(), managerID)
		if err != nil {
			renderError(render, w, err)
			return
		}

		matches = controller.FilterByStatus(matches, r.URL.Query().Get("status"))
		render.JSON(w, http.StatusOK, matches)
	}
}

func createDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd controller.SaveAssessmentCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			renderBadRequest(render, w, fmt.Sprintf("error parsing assessment: %v", err))
			return
		}

		a, err := ctrl.CreateDraftAssessment(r.Context(), cmd)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, a)
	}
}

func findDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matchID := r.URL.Query().Get("matchId")
		assessorID := r.URL.Query().Get("assessorId")
		if matchID == "" || assessorID == "" {
			renderBadRequest(render, w, "matchId and assessorId are required")
			return
		}

		a, err := ctrl.FindDraftByMatchAndAssessor(r.Context(), matchID, assessorID)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, a)
	}
}

func getAssessmentHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := ctrl.GetAssessment(r.Context(), chi.URLParam(r, "assessmentID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, a)
	}
}

func updateDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd controller.UpdateAssessmentCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			renderBadRequest(render, w, fmt.Sprintf("error parsing update: %v", err))
			return
		}
		cmd.ID = chi.URLParam(r, "assessmentID")

		a, err := ctrl.UpdateDraftAssessment(r.Context(), cmd)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, a)
	}
}

func deleteDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.DeleteDraft(r.Context(), chi.URLParam(r, "assessmentID")); err != nil {
			renderError(render, w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func publishDraftHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.PublishDraft(r.Context(), chi.URLParam(r, "assessmentID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

func listReportsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reports, err := ctrl.ListReports(r.Context())
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, reports)
	}
}

func createReportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cmd controller.SaveAssessmentCommand
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			renderBadRequest(render, w, fmt.Sprintf("error parsing assessment: %v", err))
			return
		}

		report, err := ctrl.CreateAssessment(r.Context(), cmd)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusCreated, report)
	}
}

func getReportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := ctrl.GetReportSummary(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, s)
	}
}

func umpireSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		term := r.URL.Query().Get("q")
		managerID := r.URL.Query().Get("managerId")

		var err error
		var results []model.AssessedUmpire
		if managerID != "" {
			results, err = ctrl.FindAssessedUmpiresByManagerAndName(r.Context(), managerID, term)
		} else {
			results, err = ctrl.FindAssessedUmpiresByName(r.Context(), term)
		}
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, results)
	}
}

func umpireAssessmentsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		umpireID := chi.URLParam(r, "umpireID")
		managerID := r.URL.Query().Get("managerId")

		var err error
		var results []model.Assessment
		if managerID != "" {
			results, err = ctrl.FindAssessmentsByManagerAndUmpire(r.Context(), managerID, umpireID)
		} else {
			results, err = ctrl.FindAssessmentsByUmpire(r.Context(), umpireID)
		}
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, results)
	}
}

func importMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse the multipart form. 5 << 20 specifies a maximum upload of 5 MB files.
		r.ParseMultipartForm(5 << 20)

		file, handler, err := r.FormFile("schedule-file")
		if err != nil {
			renderBadRequest(render, w, err.Error())
			return
		}
		defer file.Close()

		if handler.Header.Get("Content-Type") != "text/csv" {
			renderBadRequest(render, w, fmt.Sprintf("Only CSV files are supported. Got %s", handler.Header.Get("Content-Type")))
			return
		}

		count, err := ctrl.ImportMatches(r.Context(), file)
		if err != nil {
			renderError(render, w, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]int{"imported": count})
	}
}

func syncMatchesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.SyncMatches(r.Context()); err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error syncing matches: %v", err))
			return
		}

		render.Text(w, http.StatusOK, "schedule sync completed successfully")
	}
}

func renderBadRequest(render *render.Render, w http.ResponseWriter, msg string) {
	render.JSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// renderError maps controller and storage errors onto API status codes.
// Missing records are 404s, incomplete drafts are 422s, and lifecycle
// conflicts such as a second draft or a republish are 409s.
func renderError(render *render.Render, w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	switch {
	case errors.Is(err, db.ErrMatchNotFound),
		errors.Is(err, db.ErrAssessmentNotFound),
		errors.Is(err, db.ErrReportNotFound):
		render.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &verr):
		render.JSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":      verr.Error(),
			"validation": verr,
		})
	case errors.Is(err, db.ErrDraftExists),
		errors.Is(err, db.ErrReportExists),
		errors.Is(err, db.ErrAssessmentNotDraft),
		errors.Is(err, controller.ErrAlreadyPublished),
		errors.Is(err, model.ErrZeroMaxScore):
		render.JSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
