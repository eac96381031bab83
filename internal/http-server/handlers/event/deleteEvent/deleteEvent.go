package deleteEvent

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

const (
	ModeSoft = "soft"
	ModeHard = "hard"
)

type DeleteResponse struct {
	response.Response
	EventID string `json:"event_id"`
	Mode    string `json:"mode"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	GetEventByID(id string) (*models.Event, error)
	MarkEventDeleted(id string) error
	RemoveEvent(id string) error
	CancelBookingsForEvent(eventID, eventTitle string) error
	RemoveBookingsForEvent(eventID, eventTitle string) error
}

// New deletes an event and cascades into its bookings. The cascade matches
// bookings by event id OR by denormalized title, so bookings created before
// the event existed are still caught. The event change and the booking
// cascade are two independent store operations, not one transaction.
func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		mode := r.URL.Query().Get("mode")
		if mode == "" {
			mode = ModeSoft
		}
		if mode != ModeSoft && mode != ModeHard {
			log.Error("invalid delete mode", slog.String("mode", mode))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("mode must be soft or hard"))
			return
		}

		log = log.With(slog.String("event_id", id), slog.String("mode", mode))

		event, err := deleter.GetEventByID(id)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to get event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		// an already soft-deleted event cannot be deleted again, hard mode included
		if event.Status == models.EventStatusDeleted {
			log.Info("event already deleted")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}

		if mode == ModeHard {
			err = deleter.RemoveEvent(id)
		} else {
			err = deleter.MarkEventDeleted(id)
		}
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				log.Info("event not found")
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to delete event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		if mode == ModeHard {
			err = deleter.RemoveBookingsForEvent(event.ID, event.Title)
		} else {
			err = deleter.CancelBookingsForEvent(event.ID, event.Title)
		}
		if err != nil {
			log.Error("failed to cascade into bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete event"))
			return
		}

		log.Info("event deleted")

		responseOK(w, r, id, mode)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, id, mode string) {
	render.JSON(w, r, DeleteResponse{
		Response: response.OK(),
		EventID:  id,
		Mode:     mode,
	})
}
