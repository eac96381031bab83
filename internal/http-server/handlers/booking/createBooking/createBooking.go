package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/lib/normalize"
	"eventhub/internal/lib/validate"
	"eventhub/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BookingRequest struct {
	EventTitle string `validate:"required"`
	UserEmail  string `validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingSaver
type BookingSaver interface {
	SaveBooking(booking *models.Booking) error
}

// New creates a booking with status confirmed. The body is decoded as an
// untyped map because the quantity may arrive under several aliased field
// names and with any type; normalization clamps it instead of rejecting.
// No duplicate check: a user may book the same event any number of times.
func New(log *slog.Logger, saver BookingSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var fields map[string]any

		err := render.DecodeJSON(r.Body, &fields)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		req := BookingRequest{
			EventTitle: normalize.Text(fields["eventTitle"], normalize.MaxTitleLen),
			UserEmail:  normalize.Email(fields["userEmail"]),
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if !validate.Email(req.UserEmail) {
			log.Error("invalid email format", slog.String("user_email", req.UserEmail))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid email format"))

			return
		}

		booking := models.Booking{
			ID:         uuid.New().String(),
			EventID:    normalize.Text(fields["eventId"], normalize.MaxTitleLen),
			EventTitle: req.EventTitle,
			UserEmail:  req.UserEmail,
			Quantity:   normalize.Quantity(fields),
			Status:     models.BookingStatusConfirmed,
			CreatedAt:  time.Now().UTC(),
		}

		if err = saver.SaveBooking(&booking); err != nil {
			log.Error("failed to save booking", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save booking"))

			return
		}

		log.Info("booking created",
			slog.String("id", booking.ID),
			slog.String("user_email", booking.UserEmail),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
