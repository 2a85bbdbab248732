package updateTable

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
	"floorPlanner/internal/models"
	"floorPlanner/internal/session"
)

type TableRequest struct {
	Name     string `json:"tableName" validate:"required"`
	Room     string `json:"room" validate:"required,oneof=roubenka stodola salonek zahrada"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
}

type TableResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TableUpdater
type TableUpdater interface {
	UpdateTable(eventID, tableID int, name string, room models.Room, capacity int) error
}

func New(log *slog.Logger, plan TableUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.updateTable.New"

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

		var req TableRequest

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

		err = plan.UpdateTable(eventID, tableID, req.Name, models.Room(req.Room), req.Capacity)
		if err != nil {
			log.Error("failed to update table", sl.Err(err))

			switch {
			case errors.Is(err, session.ErrPlanNotLoaded):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("floor plan not loaded"))
			case errors.Is(err, floorplan.ErrTableNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("table not found"))
			case errors.Is(err, floorplan.ErrUnknownRoom):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unknown room"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update table"))
			}
			return
		}

		log.Info("table updated")

		render.JSON(w, r, TableResponse{Response: response.OK()})
	}
}
