package addGuest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"floorPlanner/internal/lib/api/response"
	"floorPlanner/internal/lib/logger/sl"
	"floorPlanner/internal/models"
	"floorPlanner/internal/session"
)

type GuestRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=adult child"`
	Nationality string `json:"nationality,omitempty"`
	Paid        bool   `json:"paid"`
}

type GuestResponse struct {
	response.Response
	Guest models.Guest `json:"guest"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestAdder
type GuestAdder interface {
	AddGuest(eventID int, name string, category models.GuestCategory, nationality string, paid bool) (models.Guest, error)
}

func New(log *slog.Logger, plan GuestAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.addGuest.New"

		log = log.With(slog.String("op", op))

		eventID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid event id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid event id format"))
			return
		}

		log = log.With(slog.Int("event_id", eventID))

		var req GuestRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		guest, err := plan.AddGuest(eventID, req.Name, models.GuestCategory(req.Category), req.Nationality, req.Paid)
		if err != nil {
			log.Error("failed to add guest", sl.Err(err))

			if errors.Is(err, session.ErrPlanNotLoaded) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add guest"))
			return
		}

		log.Info("guest added", slog.Int("guest_id", guest.ID))

		render.JSON(w, r, GuestResponse{
			Response: response.OK(),
			Guest:    guest,
		})
	}
}
