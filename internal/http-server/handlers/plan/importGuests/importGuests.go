package importGuests

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"floorPlanner/internal/lib/api/response"
	"floorPlanner/internal/lib/logger/sl"
	"floorPlanner/internal/models"
	"floorPlanner/internal/session"
)

// ImportResponse reports how many guests the import appended. Zero is
// a success: a date without matching reservations simply adds nobody.
type ImportResponse struct {
	response.Response
	Imported int `json:"imported"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ReservationLister
type ReservationLister interface {
	ListReservations(ctx context.Context, date time.Time) ([]models.Reservation, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestImporter
type GuestImporter interface {
	EventDate(eventID int) (time.Time, error)
	ImportReservations(eventID int, reservations []models.Reservation) (int, error)
}

func New(log *slog.Logger, backend ReservationLister, plans GuestImporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.importGuests.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		date, err := plans.EventDate(eventID)
		if err != nil {
			log.Error("failed to resolve event date", sl.Err(err))

			if errors.Is(err, session.ErrPlanNotLoaded) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to import guests"))
			return
		}

		reservations, err := backend.ListReservations(r.Context(), date)
		if err != nil {
			log.Error("failed to fetch reservations", sl.Err(err))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error("failed to fetch reservations"))
			return
		}

		imported, err := plans.ImportReservations(eventID, reservations)
		if err != nil {
			log.Error("failed to import guests", sl.Err(err))

			if errors.Is(err, session.ErrPlanNotLoaded) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to import guests"))
			return
		}

		log.Info("guests imported", slog.Int("imported", imported))

		render.JSON(w, r, ImportResponse{
			Response: response.OK(),
			Imported: imported,
		})
	}
}
