package deleteGuest

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

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestDeleter
type GuestDeleter interface {
	DeleteGuest(eventID, guestID int) error
}

func New(log *slog.Logger, plan GuestDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.deleteGuest.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		guestID, err := strconv.Atoi(chi.URLParam(r, "guestID"))
		if err != nil {
			log.Error("invalid guest id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid guest id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID), slog.Int("guest_id", guestID))

		err = plan.DeleteGuest(eventID, guestID)
		if err != nil {
			log.Error("failed to delete guest", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrPlanNotLoaded):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
			case errors.Is(err, floorplan.ErrGuestNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("guest not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete guest"))
			}
			return
		}

		log.Info("guest deleted")

		render.JSON(w, r, DeleteResponse{Response: response.OK()})
	}
}
