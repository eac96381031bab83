package deleteEvent

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventhub/internal/http-server/handlers/event/deleteEvent/mocks"
	"eventhub/internal/lib/logger/handlers/slogdiscard"
	"eventhub/internal/models"
	"eventhub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	activeEvent := &models.Event{
		ID:     "e1",
		Title:  "Jazz Night",
		City:   "Riga",
		Date:   "2026-10-01",
		Venue:  "Concert Hall",
		Status: models.EventStatusActive,
	}
	deletedEvent := &models.Event{
		ID:     "e1",
		Title:  "Jazz Night",
		Status: models.EventStatusDeleted,
	}

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Soft delete",
			url:  "/api/events/e1?mode=soft",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "e1").Return(activeEvent, nil)
				m.On("MarkEventDeleted", "e1").Return(nil)
				m.On("CancelBookingsForEvent", "e1", "Jazz Night").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"event_id":"e1","mode":"soft"}`,
		},
		{
			name: "Soft is the default mode",
			url:  "/api/events/e1",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "e1").Return(activeEvent, nil)
				m.On("MarkEventDeleted", "e1").Return(nil)
				m.On("CancelBookingsForEvent", "e1", "Jazz Night").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"event_id":"e1","mode":"soft"}`,
		},
		{
			name: "Hard delete",
			url:  "/api/events/e1?mode=hard",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "e1").Return(activeEvent, nil)
				m.On("RemoveEvent", "e1").Return(nil)
				m.On("RemoveBookingsForEvent", "e1", "Jazz Night").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"ok":true,"event_id":"e1","mode":"hard"}`,
		},
		{
			name:           "Invalid mode",
			url:            "/api/events/e1?mode=gentle",
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"ok":false,"error":"mode must be soft or hard"}`,
		},
		{
			name: "Event not found",
			url:  "/api/events/missing?mode=soft",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "missing").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"ok":false,"error":"event not found"}`,
		},
		{
			name: "Already soft-deleted event cannot be hard-deleted",
			url:  "/api/events/e1?mode=hard",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "e1").Return(deletedEvent, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"ok":false,"error":"event not found"}`,
		},
		{
			name: "Already soft-deleted event cannot be soft-deleted again",
			url:  "/api/events/e1?mode=soft",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "e1").Return(deletedEvent, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"ok":false,"error":"event not found"}`,
		},
		{
			name: "Lookup failure",
			url:  "/api/events/e1?mode=soft",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "e1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"ok":false,"error":"failed to delete event"}`,
		},
		{
			name: "Cascade failure",
			url:  "/api/events/e1?mode=soft",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("GetEventByID", "e1").Return(activeEvent, nil)
				m.On("MarkEventDeleted", "e1").Return(nil)
				m.On("CancelBookingsForEvent", "e1", "Jazz Night").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"ok":false,"error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/api/events/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest("DELETE", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestDeleteEventNoRemovalWhenAlreadyDeleted(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockDeleter := mocks.NewEventDeleter(t)
	mockDeleter.On("GetEventByID", "e1").Return(&models.Event{
		ID:     "e1",
		Title:  "Jazz Night",
		Status: models.EventStatusDeleted,
	}, nil)

	router := chi.NewRouter()
	router.Delete("/api/events/{id}", New(logger, mockDeleter))

	req, err := http.NewRequest("DELETE", "/api/events/e1?mode=hard", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	mockDeleter.AssertNotCalled(t, "RemoveEvent", "e1")
	mockDeleter.AssertNotCalled(t, "RemoveBookingsForEvent", "e1", "Jazz Night")
}
