package getAllEvents

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/event/getAllEvents/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllEventsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	events := []models.Event{
		{ID: "e1", Title: "Jazz Night", City: "Riga", Date: "2026-09-01", Venue: "Concert Hall", Status: models.EventStatusActive},
		{ID: "e2", Title: "Rock Fest", City: "Riga", Date: "2026-10-15", Venue: "Arena", Status: models.EventStatusActive},
	}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.EventsGetter)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetActiveEvents").Return(events, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventsResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.True(t, resp.Ok)
				require.Len(t, resp.Events, 2)
				assert.Equal(t, "e1", resp.Events[0].ID)
				assert.Equal(t, "e2", resp.Events[1].ID)
			},
		},
		{
			name: "No events is an empty list",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetActiveEvents").Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"events":[]`)
			},
		},
		{
			name: "Internal server error",
			mockSetup: func(m *mocks.EventsGetter) {
				m.On("GetActiveEvents").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body string) {
				assert.JSONEq(t, `{"ok":false,"error":"failed to get events"}`, body)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventsGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			req, err := http.NewRequest("GET", "/api/events", nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			tc.checkBody(t, rr.Body.String())
		})
	}
}
