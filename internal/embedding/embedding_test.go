package embedding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{name: "identical", a: []float32{1, 2, 3}, b: []float32{1, 2, 3}, want: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, want: 0},
		{name: "opposite", a: []float32{1, 1}, b: []float32{-1, -1}, want: -1},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 1}, want: 0},
		{name: "empty", a: []float32{}, b: []float32{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCosineDimensionMismatch(t *testing.T) {
	_, err := Cosine([]float32{1}, []float32{1, 2})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestHashingEmbed(t *testing.T) {
	h := NewHashing(0)
	ctx := context.Background()

	a, err := h.Embed(ctx, "Python developer with SQL")
	require.NoError(t, err)
	b, err := h.Embed(ctx, "python DEVELOPER with sql")
	require.NoError(t, err)
	c, err := h.Embed(ctx, "pastry chef baking bread")
	require.NoError(t, err)
	require.Len(t, a, defaultHashingDims)

	same, err := Cosine(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, same, 1e-6)

	diff, err := Cosine(a, c)
	require.NoError(t, err)
	assert.Less(t, diff, same)

	empty, err := h.Embed(ctx, "")
	require.NoError(t, err)
	sim, err := Cosine(a, empty)
	require.NoError(t, err)
	assert.Zero(t, sim)
}

func TestHashingEmbedZeroValue(t *testing.T) {
	var h Hashing
	vec, err := h.Embed(context.Background(), "Python and Go")
	require.NoError(t, err)
	assert.Len(t, vec, defaultHashingDims)
}
