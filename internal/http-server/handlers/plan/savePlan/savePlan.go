package savePlan

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"floorPlanner/internal/lib/api/response"
	"floorPlanner/internal/lib/logger/sl"
	"floorPlanner/internal/models"
	"floorPlanner/internal/session"
)

type SaveResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Snapshotter
type Snapshotter interface {
	Snapshot(eventID int) (models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	SaveEvent(ctx context.Context, event models.Event) error
}

// New submits the full floor plan as one replacement of the event's
// stored layout. A failed save leaves the working copy untouched, so
// retrying is just calling save again.
func New(log *slog.Logger, plans Snapshotter, backend EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.savePlan.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, err := plans.Snapshot(eventID)
		if err != nil {
			log.Error("failed to snapshot floor plan", sl.Err(err))

			if errors.Is(err, session.ErrPlanNotLoaded) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save floor plan"))
			return
		}

		if err = backend.SaveEvent(r.Context(), event); err != nil {
			log.Error("failed to save floor plan", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to save floor plan"))
			return
		}

		log.Info("floor plan saved",
			slog.Int("tables", len(event.Tables)),
			slog.Int("unassigned", len(event.Guests)),
		)

		render.JSON(w, r, SaveResponse{Response: response.OK()})
	}
}
