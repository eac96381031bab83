package cancelBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/lib/normalize"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CancelResponse struct {
	response.Response
	Booking *models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCanceller
type BookingCanceller interface {
	CancelBookingByID(id string) (*models.Booking, error)
	CancelBookingByUserAndTitle(userEmail, eventTitle string) (*models.Booking, error)
}

// New cancels a booking addressed by path id. Cancelling by id is
// idempotent: an already-cancelled booking is returned unchanged.
func New(log *slog.Logger, canceller BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		cancelByID(w, r, log.With(slog.String("booking_id", id)), canceller, id)
	}
}

// ByFilter cancels a booking addressed either by bookingId or by the
// userEmail+eventTitle pair. DELETE requests carry the filter in query
// parameters, POST requests in the JSON body. The user+title variant skips
// already-cancelled bookings, so repeating it fails with 404 once nothing
// non-cancelled is left.
func ByFilter(log *slog.Logger, canceller BookingCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.cancelBooking.ByFilter"

		log = log.With(slog.String("op", op))

		var bookingID, userEmail, eventTitle string

		if r.Method == http.MethodPost {
			var fields map[string]any

			if err := render.DecodeJSON(r.Body, &fields); err != nil {
				log.Error("failed to decode request body", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to decode request"))
				return
			}

			bookingID = normalize.Text(fields["bookingId"], normalize.MaxTitleLen)
			userEmail = normalize.Email(fields["userEmail"])
			eventTitle = normalize.Text(fields["eventTitle"], normalize.MaxTitleLen)
		} else {
			query := r.URL.Query()

			bookingID = normalize.Text(query.Get("bookingId"), normalize.MaxTitleLen)
			userEmail = normalize.Email(query.Get("userEmail"))
			eventTitle = normalize.Text(query.Get("eventTitle"), normalize.MaxTitleLen)
		}

		switch {
		case bookingID != "":
			cancelByID(w, r, log.With(slog.String("booking_id", bookingID)), canceller, bookingID)
		case userEmail != "" && eventTitle != "":
			cancelByUserAndTitle(w, r,
				log.With(slog.String("user_email", userEmail), slog.String("event_title", eventTitle)),
				canceller, userEmail, eventTitle)
		default:
			log.Error("cancel filter is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("bookingId or userEmail and eventTitle are required"))
		}
	}
}

func cancelByID(w http.ResponseWriter, r *http.Request, log *slog.Logger, canceller BookingCanceller, id string) {
	booking, err := canceller.CancelBookingByID(id)
	if err != nil {
		respondCancelError(w, r, log, err)
		return
	}

	log.Info("booking cancelled")

	responseOK(w, r, booking)
}

func cancelByUserAndTitle(w http.ResponseWriter, r *http.Request, log *slog.Logger, canceller BookingCanceller, userEmail, eventTitle string) {
	booking, err := canceller.CancelBookingByUserAndTitle(userEmail, eventTitle)
	if err != nil {
		respondCancelError(w, r, log, err)
		return
	}

	log.Info("booking cancelled", slog.String("booking_id", booking.ID))

	responseOK(w, r, booking)
}

func respondCancelError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	if errors.Is(err, storage.ErrBookingNotFound) {
		log.Info("booking not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("booking not found"))
		return
	}

	log.Error("failed to cancel booking", sl.Err(err))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error("failed to cancel booking"))
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, CancelResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
