package flights

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tinnkaaa/booking-system/internal/domain"
	"go.uber.org/zap"
)

type MockAirlineRepository struct {
	mock.Mock
}

func (m *MockAirlineRepository) List(ctx context.Context) ([]domain.Airline, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Airline), args.Error(1)
}

func (m *MockAirlineRepository) Create(ctx context.Context, airline *domain.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *MockAirlineRepository) Update(ctx context.Context, airline *domain.Airline) error {
	args := m.Called(ctx, airline)
	return args.Error(0)
}

func (m *MockAirlineRepository) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.DeleteSummary), args.Error(1)
}

func TestAirlineService_Create_InvalidatesList(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	mockCache := &MockCache{}
	service := NewAirlineService(mockRepo, mockCache, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Airline")).Return(nil).Once()
	mockCache.On("Invalidate", ctx, []string{domain.EntityAirlines}).Return(nil).Once()

	airline, err := service.Create(ctx, AirlineInput{Name: "Ukraine International", Code: "PS", Country: "Ukraine"})

	assert.NoError(t, err)
	assert.Equal(t, "Ukraine International (PS)", airline.String())
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestAirlineService_Create_CodeTooLong(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	service := NewAirlineService(mockRepo, nil, zap.NewNop())

	_, err := service.Create(context.Background(), AirlineInput{Name: "LOT", Code: "LOTPOL", Country: "Poland"})

	assert.ErrorIs(t, err, domain.ErrValidation)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAirlineService_Delete_InvalidatesFlights(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	mockCache := &MockCache{}
	service := NewAirlineService(mockRepo, mockCache, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(4)).Return(domain.DeleteSummary{Airlines: 1, Flights: 3}, nil).Once()
	mockCache.On("Invalidate", ctx, []string{domain.EntityAirlines, domain.EntityFlights}).Return(nil).Once()

	summary, err := service.Delete(ctx, 4)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), summary.Total())
	mockCache.AssertExpectations(t)
}

func TestAirlineService_Delete_NotFoundKeepsCache(t *testing.T) {
	mockRepo := &MockAirlineRepository{}
	mockCache := &MockCache{}
	service := NewAirlineService(mockRepo, mockCache, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Delete", ctx, int64(9)).Return(domain.DeleteSummary{}, domain.ErrNotFound).Once()

	_, err := service.Delete(ctx, 9)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockCache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}
