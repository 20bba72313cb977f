package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const defaultHashingDims = 512

// Hashing is a local bag-of-words embedder. Each lowercase word is hashed
// into one of Dims buckets and the resulting counts are L2-normalized.
type Hashing struct {
	Dims int
}

// NewHashing returns a Hashing embedder with dims buckets (512 when dims <= 0).
func NewHashing(dims int) *Hashing {
	if dims <= 0 {
		dims = defaultHashingDims
	}
	return &Hashing{Dims: dims}
}

// Embed never fails; ctx is accepted for interface compatibility.
func (h *Hashing) Embed(_ context.Context, text string) ([]float32, error) {
	dims := h.Dims
	if dims <= 0 {
		dims = defaultHashingDims
	}
	vec := make([]float32, dims)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '+' && r != '#'
	})
	for _, w := range words {
		f := fnv.New32a()
		_, _ = f.Write([]byte(w))
		vec[f.Sum32()%uint32(dims)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm == 0 {
		return vec, nil
	}
	scale := float32(1 / math.Sqrt(norm))
	for i := range vec {
		vec[i] *= scale
	}
	return vec, nil
}

var _ Embedder = (*Hashing)(nil)
