package booking

import (
	"context"
	"strings"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
	"github.com/tinnkaaa/booking-system/internal/validation"
	"go.uber.org/zap"
)

type PassengerInput struct {
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	DateOfBirth    string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	PassportNumber string `json:"passport_number" validate:"required,max=20"`
	Nationality    string `json:"nationality" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,email,max=254"`
	Phone          string `json:"phone" validate:"required,max=20"`
}

func (in PassengerInput) toDomain(id int64) (*domain.Passenger, error) {
	in.PassportNumber = strings.TrimSpace(in.PassportNumber)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	born, err := domain.ParseDate(in.DateOfBirth)
	if err != nil {
		return nil, err
	}
	return &domain.Passenger{
		ID:             id,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		DateOfBirth:    born,
		PassportNumber: in.PassportNumber,
		Nationality:    in.Nationality,
		Email:          in.Email,
		Phone:          in.Phone,
	}, nil
}

type PassengerService struct {
	repo repository.PassengerRepository
	log  *zap.Logger
}

func NewPassengerService(repo repository.PassengerRepository, log *zap.Logger) *PassengerService {
	return &PassengerService{repo: repo, log: log}
}

func (s *PassengerService) List(ctx context.Context) ([]domain.Passenger, error) {
	return s.repo.List(ctx)
}

func (s *PassengerService) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *PassengerService) Create(ctx context.Context, in PassengerInput) (*domain.Passenger, error) {
	p, err := in.toDomain(0)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PassengerService) Update(ctx context.Context, id int64, in PassengerInput) (*domain.Passenger, error) {
	p, err := in.toDomain(id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PassengerService) Delete(ctx context.Context, id int64) (domain.DeleteSummary, error) {
	summary, err := s.repo.Delete(ctx, id)
	if err != nil {
		return summary, err
	}
	s.log.Info("passenger deleted", zap.Int64("id", id), zap.Int64("bookings", summary.Bookings))
	return summary, nil
}
