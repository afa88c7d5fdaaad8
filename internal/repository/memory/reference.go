package memory

import (
	"cmp"
	"context"

	"github.com/tinnkaaa/booking-system/internal/domain"
	"github.com/tinnkaaa/booking-system/internal/repository"
)

type airportRepo struct{ s *Store }

func (r airportRepo) List(_ context.Context) ([]domain.Airport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.airports, func(a, b domain.Airport) int {
		return cmp.Or(cmp.Compare(a.City, b.City), cmp.Compare(a.Code, b.Code), byID(a.ID, b.ID))
	}), nil
}

func (r airportRepo) GetByID(_ context.Context, id int64) (*domain.Airport, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.airports[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r airportRepo) Create(_ context.Context, a *domain.Airport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(a); err != nil {
		return err
	}
	a.ID = r.s.nextID()
	r.s.airports[a.ID] = *a
	return nil
}

func (r airportRepo) Update(_ context.Context, a *domain.Airport) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.airports[a.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.check(a); err != nil {
		return err
	}
	r.s.airports[a.ID] = *a
	return nil
}

func (r airportRepo) check(a *domain.Airport) error {
	for _, other := range r.s.airports {
		if other.ID != a.ID && other.Code == a.Code {
			return alreadyExists("code")
		}
	}
	return nil
}

func (r airportRepo) Delete(_ context.Context, id int64) (domain.DeleteSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum domain.DeleteSummary
	if _, ok := r.s.airports[id]; !ok {
		return sum, domain.ErrNotFound
	}
	r.s.deleteFlightsWhere(func(f domain.Flight) bool {
		return f.DepartureAirportID == id || f.ArrivalAirportID == id
	}, &sum)
	delete(r.s.airports, id)
	sum.Airports++
	return sum, nil
}

type airlineRepo struct{ s *Store }

func (r airlineRepo) List(_ context.Context) ([]domain.Airline, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.airlines, func(a, b domain.Airline) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), byID(a.ID, b.ID))
	}), nil
}

func (r airlineRepo) GetByID(_ context.Context, id int64) (*domain.Airline, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.airlines[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (r airlineRepo) Create(_ context.Context, a *domain.Airline) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(a); err != nil {
		return err
	}
	a.ID = r.s.nextID()
	r.s.airlines[a.ID] = *a
	return nil
}

func (r airlineRepo) Update(_ context.Context, a *domain.Airline) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.airlines[a.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.check(a); err != nil {
		return err
	}
	r.s.airlines[a.ID] = *a
	return nil
}

func (r airlineRepo) check(a *domain.Airline) error {
	for _, other := range r.s.airlines {
		if other.ID != a.ID && other.Code == a.Code {
			return alreadyExists("code")
		}
	}
	return nil
}

func (r airlineRepo) Delete(_ context.Context, id int64) (domain.DeleteSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum domain.DeleteSummary
	if _, ok := r.s.airlines[id]; !ok {
		return sum, domain.ErrNotFound
	}
	r.s.deleteFlightsWhere(func(f domain.Flight) bool { return f.AirlineID == id }, &sum)
	delete(r.s.airlines, id)
	sum.Airlines++
	return sum, nil
}

type flightRepo struct{ s *Store }

func (r flightRepo) List(_ context.Context) ([]domain.Flight, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedValues(r.s.flights, func(a, b domain.Flight) int {
		return cmp.Or(a.DepartureTime.Compare(b.DepartureTime), byID(a.ID, b.ID))
	}), nil
}

func (r flightRepo) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	f, ok := r.s.flights[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &f, nil
}

func (r flightRepo) Create(_ context.Context, f *domain.Flight) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.check(f); err != nil {
		return err
	}
	f.ID = r.s.nextID()
	r.s.flights[f.ID] = *f
	return nil
}

func (r flightRepo) Update(_ context.Context, f *domain.Flight) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.flights[f.ID]; !ok {
		return domain.ErrNotFound
	}
	if err := r.check(f); err != nil {
		return err
	}
	r.s.flights[f.ID] = *f
	return nil
}

func (r flightRepo) check(f *domain.Flight) error {
	if !f.Price.Valid() {
		return domain.ErrValidation
	}
	if _, ok := r.s.airlines[f.AirlineID]; !ok {
		return invalidReference("airline_id")
	}
	if _, ok := r.s.airports[f.DepartureAirportID]; !ok {
		return invalidReference("departure_airport_id")
	}
	if _, ok := r.s.airports[f.ArrivalAirportID]; !ok {
		return invalidReference("arrival_airport_id")
	}
	for _, other := range r.s.flights {
		if other.ID != f.ID && other.FlightNumber == f.FlightNumber {
			return alreadyExists("flight_number")
		}
	}
	return nil
}

func (r flightRepo) Delete(_ context.Context, id int64) (domain.DeleteSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum domain.DeleteSummary
	if _, ok := r.s.flights[id]; !ok {
		return sum, domain.ErrNotFound
	}
	r.s.deleteFlightsWhere(func(f domain.Flight) bool { return f.ID == id }, &sum)
	return sum, nil
}

var (
	_ repository.AirportRepository = airportRepo{}
	_ repository.AirlineRepository = airlineRepo{}
	_ repository.FlightRepository  = flightRepo{}
)
