package flights

import (
	"context"
	"fmt"
	"time"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/validation"
	"go.uber.org/zap"
)

// FlightInput does not require the arrival airport to differ from the
// departure airport, nor arrival to follow departure.
type FlightInput struct {
	FlightNumber       string        `json:"flight_number" validate:"required,max=10"`
	AirlineID          int64         `json:"airline_id" validate:"gt=0"`
	DepartureAirportID int64         `json:"departure_airport_id" validate:"gt=0"`
	ArrivalAirportID   int64         `json:"arrival_airport_id" validate:"gt=0"`
	DepartureTime      time.Time     `json:"departure_time" validate:"required"`
	ArrivalTime        time.Time     `json:"arrival_time" validate:"required"`
	AircraftType       *string       `json:"aircraft_type" validate:"omitempty,max=50"`
	Price              *domain.Money `json:"price" validate:"required"`
}

func (in FlightInput) toDomain(id int64) (*domain.Flight, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if !in.Price.Valid() {
		return nil, fmt.Errorf("%w: price %s out of range", domain.ErrValidation, in.Price)
	}
	aircraft := in.AircraftType
	if aircraft != nil && *aircraft == "" {
		aircraft = nil
	}
	return &domain.Flight{
		ID:                 id,
		FlightNumber:       in.FlightNumber,
		AirlineID:          in.AirlineID,
		DepartureAirportID: in.DepartureAirportID,
		ArrivalAirportID:   in.ArrivalAirportID,
		DepartureTime:      in.DepartureTime,
		ArrivalTime:        in.ArrivalTime,
		AircraftType:       aircraft,
		Price:              *in.Price,
	}, nil
}

type FlightService struct {
	repo  repository.FlightRepository
	cache ListCache
	log   *zap.Logger
}

func NewFlightService(repo repository.FlightRepository, cache ListCache, log *zap.Logger) *FlightService {
	return &FlightService{repo: repo, cache: cache, log: log}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	return cachedList(ctx, s.cache, s.log, domain.EntityFlights, s.repo.List)
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *FlightService) Create(ctx context.Context, in FlightInput) (*domain.Flight, error) {
	flight, err := in.toDomain(0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityFlights)
	return flight, nil
}

func (s *FlightService) Update(ctx context.Context, id int64, in FlightInput) (*domain.Flight, error) {
	flight, err := in.toDomain(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, flight); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityFlights)
	return flight, nil
}

func (s *FlightService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	summary, err := s.repo.Delete(ctx, id)
	if err != nil {
		return summary, err
	}
	invalidate(ctx, s.cache, s.log, domain.EntityFlights)
	s.log.Info("flight deleted", zap.Int64("id", id), zap.Int64("bookings", summary.Bookings),
		zap.Int64("tickets", summary.Tickets), zap.Int64("payments", summary.Payments))
	return summary, nil
}
