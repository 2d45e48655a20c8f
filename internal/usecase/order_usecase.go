// Package usecase defines the application-facing interfaces of the
// order generator.
package usecase

import (
	"time"

	"ordergen/internal/domain/entity"
)

// OrderUsecase generates a finite stream of synthetic orders. A
// generator is Ready for its whole lifetime once constructed; it is not
// safe for concurrent use because its random source advances with every
// produced order.
type OrderUsecase interface {
	// GenerateOrders returns a fresh stream of exactly the configured
	// number of orders. The stream is lazy and not restartable: the
	// random state advances monotonically with each produced element.
	GenerateOrders() *OrderStream

	// AnchorDate returns the sale date the order timestamps cluster around.
	AnchorDate() time.Time
}

// OrderStream produces orders one at a time. Exhausting it requires a
// new call to GenerateOrders. Partial consumption is valid and leaves
// nothing to clean up.
type OrderStream struct {
	remaining int
	produce   func() *entity.Order
}

// NewOrderStream builds a stream of total elements drawn from produce.
func NewOrderStream(total int, produce func() *entity.Order) *OrderStream {
	return &OrderStream{remaining: total, produce: produce}
}

// Next returns the next order, or nil and false once the stream is
// exhausted.
func (s *OrderStream) Next() (*entity.Order, bool) {
	if s.remaining <= 0 {
		return nil, false
	}
	s.remaining--

	return s.produce(), true
}

// Remaining reports how many orders the stream has yet to produce.
func (s *OrderStream) Remaining() int {
	return s.remaining
}
