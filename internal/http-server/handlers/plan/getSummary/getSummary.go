package getSummary

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"floorPlanner/internal/floorplan"
	"floorPlanner/internal/lib/api/response"
	"floorPlanner/internal/lib/logger/sl"
	"floorPlanner/internal/models"
	"floorPlanner/internal/session"
)

// SummaryResponse carries the reconciliation view plus the unassigned
// pool, optionally filtered by the nationality query parameter.
type SummaryResponse struct {
	response.Response
	Summary    floorplan.Summary `json:"summary"`
	Unassigned []models.Guest    `json:"unassigned"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SummaryProvider
type SummaryProvider interface {
	Summary(eventID int) (floorplan.Summary, error)
	FilterUnassigned(eventID int, nationality string) ([]models.Guest, error)
}

func New(log *slog.Logger, plans SummaryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.getSummary.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		summary, err := plans.Summary(eventID)
		if err != nil {
			log.Error("failed to build summary", sl.Err(err))

			if errors.Is(err, session.ErrPlanNotLoaded) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build summary"))
			return
		}

		nationality := r.URL.Query().Get("nationality")

		unassigned, err := plans.FilterUnassigned(eventID, nationality)
		if err != nil {
			log.Error("failed to filter unassigned guests", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to build summary"))
			return
		}

		if unassigned == nil {
			unassigned = []models.Guest{}
		}

		log.Info("summary built",
			slog.Bool("mismatch", summary.Mismatch),
			slog.Int("unassigned", len(unassigned)),
		)

		render.JSON(w, r, SummaryResponse{
			Response:   response.OK(),
			Summary:    summary,
			Unassigned: unassigned,
		})
	}
}
