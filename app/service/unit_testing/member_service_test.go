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

type memberPage struct {
	Data []models.Member       `json:"data"`
	Meta models.PaginationMeta `json:"meta"`
}

func setupMemberServiceTest() (*service.MemberService, *mocks.MockClubRepo) {
	mockRepo := new(mocks.MockClubRepo)
	return service.NewMemberService(mockRepo), mockRepo
}

func TestGetAllMembers(t *testing.T) {
	t.Run("Success: search by skill", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
		app.Get("/members", svc.GetAllMembers)

		resp, err := app.Test(httptest.NewRequest("GET", "/members?search=react", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body memberPage
		decode(t, resp, &body)
		require.Len(t, body.Data, 4)
		for _, m := range body.Data {
			assert.Contains(t, []int{1, 6, 9, 11}, m.ID)
		}
		assert.Equal(t, 4, body.Meta.TotalData)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success: filters and pagination", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
		app.Get("/members", svc.GetAllMembers)

		req := httptest.NewRequest("GET", "/members?branch=Computer%20Science&year=4&page=2&limit=2", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body memberPage
		decode(t, resp, &body)
		// Computer Science year 4: 1, 4, 8, 11
		require.Len(t, body.Data, 2)
		assert.Equal(t, 8, body.Data[0].ID)
		assert.Equal(t, 11, body.Data[1].ID)
		assert.Equal(t, models.PaginationMeta{CurrentPage: 2, TotalPage: 2, TotalData: 4, Limit: 2}, body.Meta)
	})

	t.Run("Success: no matches is an empty list", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
		app.Get("/members", svc.GetAllMembers)

		resp, err := app.Test(httptest.NewRequest("GET", "/members?search=cobol", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body memberPage
		decode(t, resp, &body)
		assert.NotNil(t, body.Data)
		assert.Empty(t, body.Data)
	})

	t.Run("Success: huge page is empty", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
		app.Get("/members", svc.GetAllMembers)

		resp, err := app.Test(httptest.NewRequest("GET", "/members?page=9223372036854775807&limit=100", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body memberPage
		decode(t, resp, &body)
		assert.NotNil(t, body.Data)
		assert.Empty(t, body.Data)
		assert.Equal(t, len(fixtures(t).Members), body.Meta.TotalData)
	})

	t.Run("Success: year zero matches nobody", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
		app.Get("/members", svc.GetAllMembers)

		resp, err := app.Test(httptest.NewRequest("GET", "/members?year=0", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body memberPage
		decode(t, resp, &body)
		assert.Empty(t, body.Data)
	})

	t.Run("Error: invalid page", func(t *testing.T) {
		svc, _ := setupMemberServiceTest()
		app := setupApp()

		app.Get("/members", svc.GetAllMembers)

		resp, _ := app.Test(httptest.NewRequest("GET", "/members?page=first", nil))
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Error: repository failure", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(nil, errors.New("db error"))
		app.Get("/members", svc.GetAllMembers)

		resp, _ := app.Test(httptest.NewRequest("GET", "/members", nil))
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestGetMemberFilters(t *testing.T) {
	svc, mockRepo := setupMemberServiceTest()
	app := setupApp()

	mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
	app.Get("/members/filters", svc.GetMemberFilters)

	resp, err := app.Test(httptest.NewRequest("GET", "/members/filters", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.MemberFilters
	decode(t, resp, &body)
	assert.Equal(t, []string{"Computer Science", "Data Science", "Information Technology"}, body.Branches)
	assert.Equal(t, []int{2, 3, 4}, body.Years)
	assert.Len(t, body.Roles, 6)
	assert.Equal(t, []string{"Alice Chen", "Bob Martinez", "Carol Singh", "David Lee", "Emma Wilson"}, body.Suggestions)
}

func TestGetMemberByID(t *testing.T) {
	t.Run("Success: get member by ID", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
		app.Get("/members/:id", svc.GetMemberByID)

		resp, err := app.Test(httptest.NewRequest("GET", "/members/5", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body models.Member
		decode(t, resp, &body)
		assert.Equal(t, "Emma Wilson", body.Name)
		assert.Equal(t, []string{"Python", "Machine Learning", "TensorFlow"}, body.Skills)
	})

	t.Run("Error: invalid ID format", func(t *testing.T) {
		svc, _ := setupMemberServiceTest()
		app := setupApp()

		app.Get("/members/:id", svc.GetMemberByID)

		resp, _ := app.Test(httptest.NewRequest("GET", "/members/abc", nil))
		assert.Equal(t, 400, resp.StatusCode)
	})

	t.Run("Error: member not found", func(t *testing.T) {
		svc, mockRepo := setupMemberServiceTest()
		app := setupApp()

		mockRepo.On("Members", mock.Anything).Return(fixtures(t).Members, nil)
		app.Get("/members/:id", svc.GetMemberByID)

		resp, _ := app.Test(httptest.NewRequest("GET", "/members/404", nil))
		assert.Equal(t, 404, resp.StatusCode)
	})
}
