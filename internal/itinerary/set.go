// Package itinerary holds the read-only trip data the display is built from.
package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"tabi/internal/model"
)

var (
	// ErrDayNotFound is returned by lookups for an id outside the set.
	ErrDayNotFound = errors.New("day not found")
	// ErrInvalid is wrapped by New when the days break an invariant.
	ErrInvalid = errors.New("invalid itinerary")
)

// Set is an immutable, ordered collection of days plus the trip-wide facts
// shown alongside them.
type Set struct {
	days   []model.Day
	trip   model.Trip
	routes []model.RouteLeg
	budget model.Budget
}

// Option attaches trip-wide facts to a Set.
type Option func(*Set)

// WithTrip sets the trip summary.
func WithTrip(t model.Trip) Option {
	return func(s *Set) { s.trip = cloneTrip(t) }
}

// WithRoutes sets the inter-city legs.
func WithRoutes(legs []model.RouteLeg) Option {
	return func(s *Set) { s.routes = append([]model.RouteLeg(nil), legs...) }
}

// WithBudget sets the authored budget figures.
func WithBudget(b model.Budget) Option {
	return func(s *Set) { s.budget = cloneBudget(b) }
}

// New validates days and returns a Set over a private copy of them. Days must
// be ordered with ids 1..N and every cost must be non-negative.
func New(days []model.Day, opts ...Option) (*Set, error) {
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrInvalid)
	}
	for i, d := range days {
		if d.ID != i+1 {
			return nil, fmt.Errorf("%w: day at position %d has id %d, want %d", ErrInvalid, i, d.ID, i+1)
		}
		if d.TotalCost < 0 {
			return nil, fmt.Errorf("%w: day %d has negative total cost", ErrInvalid, d.ID)
		}
		for j, a := range d.Activities {
			if a.Cost < 0 {
				return nil, fmt.Errorf("%w: day %d activity %d has negative cost", ErrInvalid, d.ID, j)
			}
		}
		if d.Accommodation != nil {
			if d.Accommodation.Price < 0 {
				return nil, fmt.Errorf("%w: day %d accommodation has negative price", ErrInvalid, d.ID)
			}
			if r := d.Accommodation.Rating; r < 0 || r > 5 {
				return nil, fmt.Errorf("%w: day %d accommodation rating %.1f outside 0-5", ErrInvalid, d.ID, r)
			}
		}
	}

	s := &Set{days: make([]model.Day, len(days))}
	for i, d := range days {
		s.days[i] = cloneDay(d)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Default returns the compiled-in Japan trip.
func Default() *Set {
	s, err := New(japanDays(),
		WithTrip(japanTrip()),
		WithRoutes(japanRoutes()),
		WithBudget(japanBudget()),
	)
	if err != nil {
		panic(fmt.Sprintf("itinerary: built-in data is invalid: %v", err))
	}
	return s
}

// Len returns the number of days.
func (s *Set) Len() int {
	return len(s.days)
}

// Days returns every day in id order. The result is a copy.
func (s *Set) Days() []model.Day {
	out := make([]model.Day, len(s.days))
	for i, d := range s.days {
		out[i] = cloneDay(d)
	}
	return out
}

// Day returns the day with the given id.
func (s *Set) Day(id int) (model.Day, error) {
	if id < 1 || id > len(s.days) {
		return model.Day{}, fmt.Errorf("%w: %d", ErrDayNotFound, id)
	}
	return cloneDay(s.days[id-1]), nil
}

// Activities returns the ordered activities of a day.
func (s *Set) Activities(id int) ([]model.Activity, error) {
	d, err := s.Day(id)
	if err != nil {
		return nil, err
	}
	return d.Activities, nil
}

// Accommodation returns where the group stays on a day. The pointer is nil
// when the day has no check-in.
func (s *Set) Accommodation(id int) (*model.Accommodation, error) {
	d, err := s.Day(id)
	if err != nil {
		return nil, err
	}
	return d.Accommodation, nil
}

// TotalCost sums every day's estimate in the base currency.
func (s *Set) TotalCost() float64 {
	var total float64
	for _, d := range s.days {
		total += d.TotalCost
	}
	return total
}

// Areas returns the distinct day areas in first-visit order.
func (s *Set) Areas() []string {
	seen := make(map[string]bool)
	var areas []string
	for _, d := range s.days {
		key := strings.ToLower(d.Area)
		if d.Area == "" || seen[key] {
			continue
		}
		seen[key] = true
		areas = append(areas, d.Area)
	}
	return areas
}

// NavigableActivities counts activities that record where the group came
// from, i.e. those a directions link can be offered for.
func (s *Set) NavigableActivities() int {
	n := 0
	for _, d := range s.days {
		for _, a := range d.Activities {
			if strings.TrimSpace(a.PreviousLocation) != "" && strings.TrimSpace(a.Location) != "" {
				n++
			}
		}
	}
	return n
}

// ActivityCount returns the number of scheduled activities across all days.
func (s *Set) ActivityCount() int {
	n := 0
	for _, d := range s.days {
		n += len(d.Activities)
	}
	return n
}

// Trip returns the trip summary.
func (s *Set) Trip() model.Trip {
	return cloneTrip(s.trip)
}

// Routes returns the inter-city legs in travel order.
func (s *Set) Routes() []model.RouteLeg {
	return append([]model.RouteLeg(nil), s.routes...)
}

// Budget returns the authored budget figures.
func (s *Set) Budget() model.Budget {
	return cloneBudget(s.budget)
}

func cloneDay(d model.Day) model.Day {
	d.Activities = append([]model.Activity(nil), d.Activities...)
	d.Highlights = append([]string(nil), d.Highlights...)
	d.Tips = append([]string(nil), d.Tips...)
	if d.Accommodation != nil {
		acc := *d.Accommodation
		acc.Features = append([]string(nil), acc.Features...)
		d.Accommodation = &acc
	}
	if d.Travel != nil {
		tr := *d.Travel
		d.Travel = &tr
	}
	return d
}

func cloneTrip(t model.Trip) model.Trip {
	t.Cities = append([]string(nil), t.Cities...)
	return t
}

func cloneBudget(b model.Budget) model.Budget {
	b.Breakdown = append([]model.BudgetLine(nil), b.Breakdown...)
	b.Paid = append([]model.PaymentItem(nil), b.Paid...)
	b.Unpaid = append([]model.PaymentItem(nil), b.Unpaid...)
	return b
}
