package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccard(t *testing.T) {
	t.Run("identical texts score 1", func(t *testing.T) {
		text := "industrial vacuum pump with stainless housing"
		assert.Equal(t, 1.0, Jaccard(text, text))
	})

	t.Run("disjoint texts score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaccard("aluminum bracket assembly", "warranty coverage details"))
	})

	t.Run("partial overlap", func(t *testing.T) {
		score := Jaccard("vacuum pump housing", "vacuum pump manual")
		// tokens: {vacuum, pump, housing} vs {vacuum, pump, manual}
		assert.InDelta(t, 0.5, score, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := "installation guide for the compressor unit"
		b := "compressor unit maintenance schedule"
		assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
	})

	t.Run("case and punctuation folded", func(t *testing.T) {
		assert.Equal(t, 1.0, Jaccard("Compressor, Unit!", "compressor unit"))
	})

	t.Run("empty texts score 0", func(t *testing.T) {
		assert.Equal(t, 0.0, Jaccard("", ""))
	})

	t.Run("short tokens ignored", func(t *testing.T) {
		// All tokens shorter than the minimum are dropped on both sides.
		assert.Equal(t, 0.0, Jaccard("a to of it", "is at on by"))
	})
}
