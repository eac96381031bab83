package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/lib/normalize"
	"eventhub/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Price is a pointer so a missing price and an explicit 0 can be told
// apart: 0 is a valid price.
type EventRequest struct {
	Title       string   `json:"title" validate:"required"`
	City        string   `json:"city" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Venue       string   `json:"venue" validate:"required"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
}

type EventResponse struct {
	response.Response
	Event models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventSaver
type EventSaver interface {
	SaveEvent(event *models.Event) error
}

func New(log *slog.Logger, saver EventSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		req.Title = normalize.Text(req.Title, normalize.MaxTitleLen)
		req.City = normalize.Text(req.City, normalize.MaxCityLen)
		req.Date = normalize.Text(req.Date, normalize.MaxTitleLen)
		req.Venue = normalize.Text(req.Venue, normalize.MaxTitleLen)
		req.Image = normalize.Text(req.Image, normalize.MaxImageLen)
		req.Description = normalize.Text(req.Description, normalize.MaxDescriptionLen)

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		event := models.Event{
			ID:          uuid.New().String(),
			Title:       req.Title,
			City:        req.City,
			Date:        req.Date,
			Price:       *req.Price,
			Venue:       req.Venue,
			Image:       req.Image,
			Description: req.Description,
			Status:      models.EventStatusActive,
			CreatedAt:   time.Now().UTC(),
		}

		if err = saver.SaveEvent(&event); err != nil {
			log.Error("failed to save event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save event"))

			return
		}

		log.Info("event created", slog.String("id", event.ID))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		Event:    event,
	})
}
