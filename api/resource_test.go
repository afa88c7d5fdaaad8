package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tinnkaaa/booking-system/internal/admin"
	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/service/flights"
)

// MockAirportService is a mock implementation of Resource for airports.
type MockAirportService struct {
	mock.Mock
}

func (m *MockAirportService) List(ctx context.Context) ([]domain.Airport, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airport), args.Error(1)
}

func (m *MockAirportService) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportService) Create(ctx context.Context, in flights.AirportInput) (*domain.Airport, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportService) Update(ctx context.Context, id int64, in flights.AirportInput) (*domain.Airport, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airport), args.Error(1)
}

func (m *MockAirportService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DeleteSummary), args.Error(1)
}

func newAirportHandler(svc *MockAirportService) *ResourceHandler[domain.Airport, flights.AirportInput] {
	return NewResourceHandler[domain.Airport, flights.AirportInput](admin.Airports, svc)
}

func TestResourceHandler_list(t *testing.T) {
	mockService := &MockAirportService{}
	handler := newAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/airports/", nil)

	airports := []domain.Airport{
		{ID: 2, Code: "KBP", Name: "Boryspil", City: "Kyiv", Country: "Ukraine"},
		{ID: 1, Code: "LWO", Name: "Danylo Halytskyi", City: "Lviv", Country: "Ukraine"},
	}
	mockService.On("List", c.Request.Context()).Return(airports, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var items []struct {
		ID      int64          `json:"id"`
		Display string         `json:"display"`
		Record  domain.Airport `json:"record"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, "Kyiv (KBP)", items[0].Display)
	assert.Equal(t, "Boryspil", items[0].Record.Name)
	assert.Equal(t, "Lviv (LWO)", items[1].Display)

	mockService.AssertExpectations(t)
}

func TestResourceHandler_get(t *testing.T) {
	mockService := &MockAirportService{}
	handler := newAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/admin/airports/1", nil)

	airport := &domain.Airport{ID: 1, Code: "KBP", Name: "Boryspil", City: "Kyiv", Country: "Ukraine"}
	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(airport, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestResourceHandler_get_NotFound(t *testing.T) {
	mockService := &MockAirportService{}
	handler := newAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "7"}}
	c.Request = httptest.NewRequest("GET", "/admin/airports/7", nil)

	mockService.On("GetByID", c.Request.Context(), int64(7)).Return(nil, domain.ErrNotFound)

	handler.get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResourceHandler_get_InvalidID(t *testing.T) {
	handler := newAirportHandler(&MockAirportService{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	c.Request = httptest.NewRequest("GET", "/admin/airports/abc", nil)

	handler.get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid id"}`, w.Body.String())
}

func TestResourceHandler_create(t *testing.T) {
	mockService := &MockAirportService{}
	handler := newAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"code":"KBP","name":"Boryspil","city":"Kyiv","country":"Ukraine"}`
	c.Request = httptest.NewRequest("POST", "/admin/airports/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := flights.AirportInput{Code: "KBP", Name: "Boryspil", City: "Kyiv", Country: "Ukraine"}
	mockService.On("Create", c.Request.Context(), input).
		Return(&domain.Airport{ID: 1, Code: "KBP", Name: "Boryspil", City: "Kyiv", Country: "Ukraine"}, nil)

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestResourceHandler_create_Errors(t *testing.T) {
	testCases := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Malformed body", body: `{"code":`, expectedStatus: http.StatusBadRequest},
		{name: "Validation", body: `{"code":"KBP"}`, serviceErr: domain.ErrValidation, expectedStatus: http.StatusBadRequest},
		{name: "Duplicate code", body: `{"code":"KBP"}`, serviceErr: domain.ErrAlreadyExists, expectedStatus: http.StatusConflict},
		{name: "Unexpected", body: `{"code":"KBP"}`, serviceErr: assert.AnError, expectedStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockAirportService{}
			handler := newAirportHandler(mockService)

			gin.SetMode(gin.TestMode)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("POST", "/admin/airports/", bytes.NewBufferString(tc.body))
			c.Request.Header.Set("Content-Type", "application/json")

			if tc.serviceErr != nil {
				mockService.On("Create", mock.Anything, mock.Anything).Return(nil, tc.serviceErr)
			}

			handler.create(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
			if tc.expectedStatus == http.StatusInternalServerError {
				assert.JSONEq(t, `{"error":"internal error"}`, w.Body.String())
			}
		})
	}
}

func TestResourceHandler_update(t *testing.T) {
	mockService := &MockAirportService{}
	handler := newAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "3"}}
	body := `{"code":"WAW","name":"Chopin","city":"Warsaw","country":"Poland"}`
	c.Request = httptest.NewRequest("PUT", "/admin/airports/3", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")

	input := flights.AirportInput{Code: "WAW", Name: "Chopin", City: "Warsaw", Country: "Poland"}
	mockService.On("Update", c.Request.Context(), int64(3), input).
		Return(&domain.Airport{ID: 3, Code: "WAW", Name: "Chopin", City: "Warsaw", Country: "Poland"}, nil)

	handler.update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestResourceHandler_delete(t *testing.T) {
	mockService := &MockAirportService{}
	handler := newAirportHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("DELETE", "/admin/airports/1", nil)

	summary := domain.DeleteSummary{Airports: 1, Flights: 2, Bookings: 3}
	mockService.On("Delete", c.Request.Context(), int64(1)).Return(summary, nil)

	handler.delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":{"airports":1,"flights":2,"bookings":3},"total":6}`, w.Body.String())
}

func TestResourceHandler_schema(t *testing.T) {
	handler := newAirportHandler(&MockAirportService{})

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/admin/airports/schema", nil)

	handler.schema(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var entity admin.Entity
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entity))
	assert.Equal(t, "Airports", entity.Plural)
	assert.Equal(t, []string{"city", "code"}, entity.Ordering)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, statusFor(domain.ErrNotFound))
	assert.Equal(t, http.StatusConflict, statusFor(domain.ErrAlreadyExists))
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.ErrInvalidReference))
	assert.Equal(t, http.StatusBadRequest, statusFor(domain.ErrInvalidChoice))
	assert.Equal(t, http.StatusInternalServerError, statusFor(context.DeadlineExceeded))
}
