package moveGuest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"floorPlanner/internal/floorplan"
	"floorPlanner/internal/lib/api/response"
	"floorPlanner/internal/lib/logger/sl"
	"floorPlanner/internal/session"
)

// MoveRequest is the resolved drop event: what the guest was dropped
// on and, for table and guest targets, its id.
type MoveRequest struct {
	Target   string `json:"target" validate:"required,oneof=table guest unassigned"`
	TargetID int    `json:"targetId,omitempty"`
}

type MoveResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=GuestMover
type GuestMover interface {
	MoveGuest(eventID, guestID int, target floorplan.DropTarget) error
}

func New(log *slog.Logger, plan GuestMover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.moveGuest.New"

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

		var req MoveRequest

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

		err = plan.MoveGuest(eventID, guestID, resolveTarget(req))
		if err != nil {
			log.Error("failed to move guest", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrPlanNotLoaded):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
			case errors.Is(err, floorplan.ErrGuestNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("guest not found"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to move guest"))
			}
			return
		}

		log.Info("guest moved", slog.String("target", req.Target))

		render.JSON(w, r, MoveResponse{Response: response.OK()})
	}
}

func resolveTarget(req MoveRequest) floorplan.DropTarget {
	switch req.Target {
	case "table":
		return floorplan.DropOnTable(req.TargetID)
	case "guest":
		return floorplan.DropOnGuest(req.TargetID)
	case "unassigned":
		return floorplan.DropOnUnassigned()
	}
	return floorplan.DropTarget{}
}
