package sales

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightedChoice(t *testing.T) {
	t.Run("rejects empty values", func(t *testing.T) {
		_, err := NewWeightedChoice([]string{}, []int{})
		require.Error(t, err)
	})

	t.Run("rejects mismatched lengths", func(t *testing.T) {
		_, err := NewWeightedChoice([]string{"a", "b"}, []int{1})
		require.Error(t, err)
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		_, err := NewWeightedChoice([]string{"a", "b"}, []int{1, 0})
		require.Error(t, err)
	})
}

func TestWeightedChoice_Pick(t *testing.T) {
	t.Run("single value always wins", func(t *testing.T) {
		w, err := NewWeightedChoice([]string{"only"}, []int{3})
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(1))
		for i := 0; i < 20; i++ {
			assert.Equal(t, "only", w.Pick(rng))
		}
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		w, err := NewWeightedChoice([]string{"a", "b", "c"}, []int{5, 3, 2})
		require.NoError(t, err)

		first := make([]string, 50)
		rng := rand.New(rand.NewSource(99))
		for i := range first {
			first[i] = w.Pick(rng)
		}

		second := make([]string, 50)
		rng = rand.New(rand.NewSource(99))
		for i := range second {
			second[i] = w.Pick(rng)
		}
		assert.Equal(t, first, second)
	})

	t.Run("respects weighting over many draws", func(t *testing.T) {
		w, err := NewWeightedChoice([]int{1, 2, 3}, []int{6, 3, 1})
		require.NoError(t, err)

		counts := map[int]int{}
		rng := rand.New(rand.NewSource(42))
		const draws = 10000
		for i := 0; i < draws; i++ {
			counts[w.Pick(rng)]++
		}

		assert.Greater(t, counts[1], counts[2])
		assert.Greater(t, counts[2], counts[3])
		// The dominant value should land near its 60% share.
		assert.InDelta(t, 0.6, float64(counts[1])/draws, 0.05)
	})
}
