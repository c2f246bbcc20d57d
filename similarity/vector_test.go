package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		v := []float32{0.5, 0.3, 0.8}

		score, err := Cosine(v, v)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, score, 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		score, err := Cosine([]float32{1, 0}, []float32{0, 1})
		require.NoError(t, err)
		assert.InDelta(t, 0.0, score, 1e-9)
	})

	t.Run("opposite vectors score -1", func(t *testing.T) {
		score, err := Cosine([]float32{1, 2}, []float32{-1, -2})
		require.NoError(t, err)
		assert.InDelta(t, -1.0, score, 1e-9)
	})

	t.Run("dimension mismatch", func(t *testing.T) {
		_, err := Cosine([]float32{1, 2}, []float32{1, 2, 3})
		assert.ErrorIs(t, err, ErrDimensionMismatch)
	})

	t.Run("zero vector scores 0", func(t *testing.T) {
		score, err := Cosine([]float32{0, 0, 0}, []float32{1, 2, 3})
		require.NoError(t, err)
		assert.Equal(t, 0.0, score)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := []float32{0.2, 0.9, 0.1}
		b := []float32{0.7, 0.3, 0.5}

		ab, err := Cosine(a, b)
		require.NoError(t, err)
		ba, err := Cosine(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
	})
}

func TestNormalize(t *testing.T) {
	t.Run("scales to unit magnitude", func(t *testing.T) {
		v := Normalize([]float32{3, 4})

		assert.InDelta(t, 0.6, float64(v[0]), 1e-6)
		assert.InDelta(t, 0.8, float64(v[1]), 1e-6)

		var sumSquares float64
		for _, x := range v {
			sumSquares += float64(x) * float64(x)
		}
		assert.InDelta(t, 1.0, sumSquares, 1e-6)
	})

	t.Run("zero vector unchanged", func(t *testing.T) {
		v := Normalize([]float32{0, 0})
		assert.Equal(t, []float32{0, 0}, v)
	})
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(11), Dot([]float32{1, 2}, []float32{3, 4}))

	// Extra components of the longer vector are ignored.
	assert.Equal(t, float32(3), Dot([]float32{1, 2}, []float32{3}))
}
