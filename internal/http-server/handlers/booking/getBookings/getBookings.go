package getBookings

import (
	"log/slog"
	"net/http"

	"eventhub/internal/lib/api/response"
	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/lib/normalize"
	"eventhub/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.BookingView `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsGetter
type BookingsGetter interface {
	GetBookingsByUser(userEmail string) ([]models.Booking, error)
}

// New lists a user's bookings newest-first. Zero matches is an empty list,
// not an error; a missing userEmail parameter is a 400.
func New(log *slog.Logger, bookingsGetter BookingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBookings.New"

		log = log.With(slog.String("op", op))

		userEmail := normalize.Email(r.URL.Query().Get("userEmail"))
		if userEmail == "" {
			log.Error("userEmail is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("userEmail is required"))
			return
		}

		log = log.With(slog.String("user_email", userEmail))

		bookings, err := bookingsGetter.GetBookingsByUser(userEmail)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		views := make([]models.BookingView, 0, len(bookings))
		for _, booking := range bookings {
			views = append(views, models.NewBookingView(booking))
		}

		log.Info("bookings retrieved successfully", slog.Int("count", len(views)))

		responseOK(w, r, views)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.BookingView) {
	render.JSON(w, r, BookingsResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
