package flights

import (
	"context"
	"strings"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/validation"
	"go.uber.org/zap"
)

type AirlineInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Code    string `json:"code" validate:"required,max=5"`
	Country string `json:"country" validate:"required,max=100"`
}

func (in AirlineInput) toDomain(id int64) (*domain.Airline, error) {
	in.Code = strings.TrimSpace(in.Code)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	return &domain.Airline{ID: id, Name: in.Name, Code: in.Code, Country: in.Country}, nil
}

type AirlineService struct {
	repo  repository.AirlineRepository
	cache ListCache
	log   *zap.Logger
}

func NewAirlineService(repo repository.AirlineRepository, cache ListCache, log *zap.Logger) *AirlineService {
	return &AirlineService{repo: repo, cache: cache, log: log}
}

func (s *AirlineService) List(ctx context.Context) ([]domain.Airline, error) {
	return cachedList(ctx, s.cache, s.log, domain.EntityAirlines, s.repo.List)
}

func (s *AirlineService) GetByID(ctx context.Context, id int64) (*domain.Airline, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *AirlineService) Create(ctx context.Context, in AirlineInput) (*domain.Airline, error) {
	airline, err := in.toDomain(0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, airline); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityAirlines)
	return airline, nil
}

func (s *AirlineService) Update(ctx context.Context, id int64, in AirlineInput) (*domain.Airline, error) {
	airline, err := in.toDomain(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, airline); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityAirlines)
	return airline, nil
}

func (s *AirlineService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	summary, err := s.repo.Delete(ctx, id)
	if err != nil {
		return summary, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityAirlines, domain.EntityFlights)
	s.log.Info("airline deleted", zap.Int64("id", id), zap.Int64("flights", summary.Flights), zap.Int64("bookings", summary.Bookings))
	return summary, nil
}
