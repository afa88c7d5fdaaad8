package flights

import (
	"context"
	"strings"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/validation"
	"go.uber.org/zap"
)

type AirportInput struct {
	Code    string `json:"code" validate:"required,max=5"`
	Name    string `json:"name" validate:"required,max=200"`
	City    string `json:"city" validate:"required,max=100"`
	Country string `json:"country" validate:"required,max=100"`
}

func (in AirportInput) toDomain(id int64) (*domain.Airport, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return &domain.Airport{ID: id, Code: in.Code, Name: in.Name, City: in.City, Country: in.Country}, nil
}

type AirportService struct {
	repo  repository.AirportRepository
	cache ListCache
	log   *zap.Logger
}

func NewAirportService(repo repository.AirportRepository, cache ListCache, log *zap.Logger) *AirportService {
	return &AirportService{repo: repo, cache: cache, log: log}
}

func (s *AirportService) List(ctx context.Context) ([]domain.Airport, error) {
	return cachedList(ctx, s.cache, s.log, domain.EntityAirports, s.repo.List)
}

func (s *AirportService) GetByID(ctx context.Context, id int64) (*domain.Airport, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AirportService) Create(ctx context.Context, in AirportInput) (*domain.Airport, error) {
	airport, err := in.toDomain(0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, airport); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityAirports)
	return airport, nil
}

func (s *AirportService) Update(ctx context.Context, id int64, in AirportInput) (*domain.Airport, error) {
	airport, err := in.toDomain(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, airport); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityAirports)
	return airport, nil
}

// Delete also drops every flight touching the airport, so the flight list
// is invalidated along with the airport list.
func (s *AirportService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	summary, err := s.repo.Delete(ctx, id)
	if err != nil {
		return summary, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityAirports, domain.EntityFlights)
	s.log.Info("airport deleted", zap.Int64("id", id), zap.Int64("flights", summary.Flights), zap.Int64("bookings", summary.Bookings))
	return summary, nil
}
