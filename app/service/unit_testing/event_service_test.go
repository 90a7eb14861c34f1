package service_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"devclub-portal/app/models"
	"devclub-portal/app/repository/mocks"
	"devclub-portal/app/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventServiceTest() (*service.EventService, *mocks.MockClubRepo) {
	mockRepo := new(mocks.MockClubRepo)
	return service.NewEventService(mockRepo), mockRepo
}

func TestGetAllEvents(t *testing.T) {
	t.Run("Success: status filter with statistics", func(t *testing.T) {
		svc, mockRepo := setupEventServiceTest()
		app := setupApp()

		mockRepo.On("Events", mock.Anything).Return(fixtures(t).Events, nil)
		app.Get("/events", svc.GetAllEvents)

		resp, err := app.Test(httptest.NewRequest("GET", "/events?status=completed&category=All", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body models.EventListResponse
		decode(t, resp, &body)
		require.Len(t, body.Data, 3)
		for _, e := range body.Data {
			assert.Equal(t, models.EventCompleted, e.Status)
		}
		assert.Equal(t, models.EventStatistics{Upcoming: 0, Attendees: 159, Completed: 3}, body.Statistics)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success: search", func(t *testing.T) {
		svc, mockRepo := setupEventServiceTest()
		app := setupApp()

		mockRepo.On("Events", mock.Anything).Return(fixtures(t).Events, nil)
		app.Get("/events", svc.GetAllEvents)

		resp, err := app.Test(httptest.NewRequest("GET", "/events?search=hackathon", nil))
		require.NoError(t, err)

		var body models.EventListResponse
		decode(t, resp, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, 3, body.Data[0].ID)
	})

	t.Run("Success: huge page is empty", func(t *testing.T) {
		svc, mockRepo := setupEventServiceTest()
		app := setupApp()

		mockRepo.On("Events", mock.Anything).Return(fixtures(t).Events, nil)
		app.Get("/events", svc.GetAllEvents)

		resp, err := app.Test(httptest.NewRequest("GET", "/events?page=9223372036854775807", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body models.EventListResponse
		decode(t, resp, &body)
		assert.Empty(t, body.Data)
	})

	t.Run("Error: repository failure", func(t *testing.T) {
		svc, mockRepo := setupEventServiceTest()
		app := setupApp()

		mockRepo.On("Events", mock.Anything).Return(nil, errors.New("mongo error"))
		app.Get("/events", svc.GetAllEvents)

		resp, _ := app.Test(httptest.NewRequest("GET", "/events", nil))
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestGetCategories(t *testing.T) {
	svc, mockRepo := setupEventServiceTest()
	app := setupApp()

	mockRepo.On("Events", mock.Anything).Return(fixtures(t).Events, nil)
	app.Get("/events/categories", svc.GetCategories)

	resp, err := app.Test(httptest.NewRequest("GET", "/events/categories", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Categories  []string `json:"categories"`
		Suggestions []string `json:"suggestions"`
	}
	decode(t, resp, &body)
	assert.Equal(t, []string{"All", "Community", "Competition", "Seminar", "Workshop"}, body.Categories)
	assert.Len(t, body.Suggestions, 5)
}

func TestGetEventByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := setupEventServiceTest()
		app := setupApp()

		mockRepo.On("Events", mock.Anything).Return(fixtures(t).Events, nil)
		app.Get("/events/:id", svc.GetEventByID)

		resp, err := app.Test(httptest.NewRequest("GET", "/events/2", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body models.Event
		decode(t, resp, &body)
		assert.Equal(t, "Algorithm Masterclass", body.Title)
	})

	t.Run("Error: not found", func(t *testing.T) {
		svc, mockRepo := setupEventServiceTest()
		app := setupApp()

		mockRepo.On("Events", mock.Anything).Return(fixtures(t).Events, nil)
		app.Get("/events/:id", svc.GetEventByID)

		resp, _ := app.Test(httptest.NewRequest("GET", "/events/77", nil))
		assert.Equal(t, 404, resp.StatusCode)
	})

	t.Run("Error: invalid ID", func(t *testing.T) {
		svc, _ := setupEventServiceTest()
		app := setupApp()

		app.Get("/events/:id", svc.GetEventByID)

		resp, _ := app.Test(httptest.NewRequest("GET", "/events/x1", nil))
		assert.Equal(t, 400, resp.StatusCode)
	})
}
