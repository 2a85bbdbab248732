package deleteTable

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
	"floorPlanner/internal/session"
)

// DeleteResponse reports how many guests the deletion moved back to
// the unassigned pool; the UI surfaces the count as feedback.
type DeleteResponse struct {
	response.Response
	DisplacedGuests int `json:"displacedGuests"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableDeleter
type TableDeleter interface {
	DeleteTable(eventID, tableID int) (int, error)
}

func New(log *slog.Logger, plan TableDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.deleteTable.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		tableID, err := strconv.Atoi(chi.URLParam(r, "tableID"))
		if err != nil {
			log.Error("invalid table id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid table id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID), slog.Int("table_id", tableID))

		displaced, err := plan.DeleteTable(eventID, tableID)
		if err != nil {
			log.Error("failed to delete table", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrPlanNotLoaded):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
			case errors.Is(err, floorplan.ErrTableNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("table not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete table"))
			}
			return
		}

		log.Info("table deleted", slog.Int("displaced_guests", displaced))

		render.JSON(w, r, DeleteResponse{
			Response:        response.OK(),
			DisplacedGuests: displaced,
		})
	}
}
