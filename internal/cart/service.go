package cart

import (
	"sync"

	"flavorflow/internal/catalog"
)

// Service owns the order-in-progress. Lines are keyed by dish id and
// keep their insertion order; new lines append.
type Service struct {
	mu    sync.Mutex
	lines []Line
}

func NewService() *Service {
	return &Service{}
}

// Add increments the existing line for the dish or inserts a new line
// with quantity 1, snapshotting the dish fields.
func (s *Service) Add(dish catalog.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == dish.ID {
			s.lines[i].Quantity++
			return
		}
	}

	s.lines = append(s.lines, Line{Dish: dish, Quantity: 1})
}

// UpdateQuantity applies a signed delta, clamping at 0. A line that
// reaches 0 is removed; an unknown id is a no-op.
func (s *Service) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID != id {
			continue
		}

		quantity := s.lines[i].Quantity + delta
		if quantity <= 0 {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
		} else {
			s.lines[i].Quantity = quantity
		}
		return
	}
}

// Lines returns a copy of the current order lines.
func (s *Service) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Total is the sum of price × quantity over all lines; 0 for an empty cart.
func (s *Service) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalLocked()
}

func (s *Service) totalLocked() float64 {
	var total float64
	for _, line := range s.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// Count is the sum of quantities, for the cart badge.
func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, line := range s.lines {
		count += line.Quantity
	}
	return count
}

// Bill derives the full bill: subtotal, 5% tax, flat delivery charge.
func (s *Service) Bill() Bill {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := s.totalLocked()
	tax := subtotal * TaxRate

	return Bill{
		Subtotal: subtotal,
		Tax:      tax,
		Delivery: DeliveryCharge,
		Total:    subtotal + tax + DeliveryCharge,
	}
}
