package health

import (
	"log/slog"
	"net/http"
	"time"

	"eventhub/internal/lib/api/response"

	"github.com/go-chi/render"
)

type HealthResponse struct {
	response.Response
	Time time.Time `json:"time"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.New"

		log.Debug("health check", slog.String("op", op))

		render.JSON(w, r, HealthResponse{
			Response: response.OK(),
			Time:     time.Now().UTC(),
		})
	}
}
