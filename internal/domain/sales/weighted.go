package sales

import (
	"math/rand"

	"github.com/salesdash/backend/internal/domain/shared"
)

// WeightedChoice maps a single uniform draw through a cumulative-weight
// table to pick one of a fixed set of values.
type WeightedChoice[T any] struct {
	values     []T
	cumulative []int
	total      int
}

// NewWeightedChoice builds a sampler over values with integer weights.
// Weights must be positive and the two slices must have equal length.
func NewWeightedChoice[T any](values []T, weights []int) (*WeightedChoice[T], error) {
	if len(values) == 0 || len(values) != len(weights) {
		return nil, shared.NewValidationError("weighted choice needs %d weights for %d values", len(values), len(values))
	}

	cumulative := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w <= 0 {
			return nil, shared.NewValidationError("weighted choice weight must be positive, got %d", w)
		}
		total += w
		cumulative[i] = total
	}

	return &WeightedChoice[T]{
		values:     values,
		cumulative: cumulative,
		total:      total,
	}, nil
}

// Pick draws one value. The draw consumes exactly one integer from rng.
func (w *WeightedChoice[T]) Pick(rng *rand.Rand) T {
	n := rng.Intn(w.total)
	for i, c := range w.cumulative {
		if n < c {
			return w.values[i]
		}
	}
	// Unreachable: n < total == cumulative[len-1]
	return w.values[len(w.values)-1]
}

// mustWeightedChoice panics on invalid static tables; used only for the
// built-in distributions whose weights are compile-time constants.
func mustWeightedChoice[T any](values []T, weights []int) *WeightedChoice[T] {
	w, err := NewWeightedChoice(values, weights)
	if err != nil {
		panic(err)
	}
	return w
}

// Built-in distributions.
//
// Quantity skews toward single-item orders: 1 appears most frequently,
// then 2, rarely 3.
var (
	quantityChoice = mustWeightedChoice(
		[]int{1, 2, 3},
		[]int{6, 3, 1},
	)
	paymentChoice = mustWeightedChoice(
		[]string{PaymentCreditCard, PaymentPayPal, PaymentBankTransfer, PaymentCash},
		[]int{60, 20, 15, 5},
	)
	shippingChoice = mustWeightedChoice(
		[]string{ShippingDelivered, ShippingShipped, ShippingProcessing, ShippingPending},
		[]int{70, 20, 8, 2},
	)
)
