package loadPlan

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"floorPlanner/internal/lib/api/response"
	"floorPlanner/internal/lib/logger/sl"
	"floorPlanner/internal/models"
)

type LoadResponse struct {
	response.Response
	Tables int `json:"tables"`
	Guests int `json:"guests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLoader
type EventLoader interface {
	GetEvent(ctx context.Context, eventID int) (models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PlanHydrator
type PlanHydrator interface {
	Hydrate(event models.Event)
}

// New hydrates the event's working copy from the back office,
// replacing any prior local state wholesale.
func New(log *slog.Logger, backend EventLoader, plans PlanHydrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.loadPlan.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		event, err := backend.GetEvent(r.Context(), eventID)
		if err != nil {
			log.Error("failed to fetch event", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to fetch event"))
			return
		}

		plans.Hydrate(event)

		guests := len(event.Guests)
		for _, t := range event.Tables {
			guests += len(t.Guests)
		}

		log.Info("floor plan loaded",
			slog.Int("tables", len(event.Tables)),
			slog.Int("guests", guests),
		)

		render.JSON(w, r, LoadResponse{
			Response: response.OK(),
			Tables:   len(event.Tables),
			Guests:   guests,
		})
	}
}
