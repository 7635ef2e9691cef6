package utils

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/pgvector/pgvector-go"
)

type EmbeddingClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

// HashEmbeddingClient is a local, keyless vectorizer using signed feature
// hashing: each word adds +1 or -1 to one bucket and the result is
// L2-normalized. Texts sharing words end up close under cosine similarity,
// unrelated words only meet on a bucket collision.
type HashEmbeddingClient struct {
	dimensions int
}

func NewHashEmbeddingClient(dimensions int) *HashEmbeddingClient {
	if dimensions <= 0 {
		dimensions = 256
	}
	return &HashEmbeddingClient{dimensions: dimensions}
}

func (c *HashEmbeddingClient) GetEmbedding(_ context.Context, text string) (pgvector.Vector, error) {
	return c.textToVector(text), nil
}

func (c *HashEmbeddingClient) textToVector(text string) pgvector.Vector {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})

	vector := make([]float32, c.dimensions)
	for _, word := range words {
		hash := hashWord(word)
		sign := float32(1)
		if hash>>31 == 1 {
			sign = -1
		}
		vector[hash%uint32(c.dimensions)] += sign
	}

	var magnitude float64
	for _, val := range vector {
		magnitude += float64(val) * float64(val)
	}
	magnitude = math.Sqrt(magnitude)
	if magnitude > 0 {
		for i := range vector {
			vector[i] = float32(float64(vector[i]) / magnitude)
		}
	}

	return pgvector.NewVector(vector)
}

func hashWord(word string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(word))
	return h.Sum32()
}

// CosineSimilarity returns 0 for vectors of different length or zero magnitude.
func CosineSimilarity(a, b pgvector.Vector) float64 {
	x, y := a.Slice(), b.Slice()
	if len(x) == 0 || len(x) != len(y) {
		return 0
	}

	var dot, nx, ny float64
	for i := range x {
		dot += float64(x[i]) * float64(y[i])
		nx += float64(x[i]) * float64(x[i])
		ny += float64(y[i]) * float64(y[i])
	}
	if nx == 0 || ny == 0 {
		return 0
	}
	return dot / (math.Sqrt(nx) * math.Sqrt(ny))
}
