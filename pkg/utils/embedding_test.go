package utils

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashEmbeddingIsDeterministicAndNormalized(t *testing.T) {
	c := NewHashEmbeddingClient(64)

	a, err := c.GetEmbedding(context.Background(), "Gorilla Trekking, Hiking")
	require.NoError(t, err)
	b, _ := c.GetEmbedding(context.Background(), "gorilla trekking hiking")

	assert.Len(t, a.Slice(), 64)
	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-6)
	assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-6)
}

func TestHashEmbeddingRanksSharedWordsHigher(t *testing.T) {
	c := NewHashEmbeddingClient(256)
	ctx := context.Background()

	query, _ := c.GetEmbedding(ctx, "gorilla trekking volcanoes")
	gorilla, _ := c.GetEmbedding(ctx, "Volcanoes Gorilla Trek gorilla trekking golden monkeys")
	canopy, _ := c.GetEmbedding(ctx, "Nyungwe canopy walk chimpanzee waterfall")

	assert.Greater(t, CosineSimilarity(query, gorilla), CosineSimilarity(query, canopy))
}

func TestHashEmbeddingUnrelatedWordsAreOrthogonal(t *testing.T) {
	c := NewHashEmbeddingClient(256)
	ctx := context.Background()

	gorilla, _ := c.GetEmbedding(ctx, "gorilla")
	shared, _ := c.GetEmbedding(ctx, "gorilla lake")
	kivu, _ := c.GetEmbedding(ctx, "kivu")

	assert.InDelta(t, 1/math.Sqrt2, CosineSimilarity(gorilla, shared), 1e-6)
	assert.InDelta(t, 0.0, CosineSimilarity(gorilla, kivu), 1e-6)
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	assert.Zero(t, CosineSimilarity(pgvector.NewVector([]float32{1, 0}), pgvector.NewVector([]float32{1, 0, 0})))
	assert.Zero(t, CosineSimilarity(pgvector.NewVector([]float32{0, 0}), pgvector.NewVector([]float32{1, 0})))
	assert.Zero(t, CosineSimilarity(pgvector.NewVector(nil), pgvector.NewVector(nil)))
}

func TestOpenAIEmbeddingClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/embeddings", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","model":"text-embedding-3-small",
			"data":[{"object":"embedding","index":0,"embedding":[0.25,0.5,0.75]}]}`))
	}))
	defer srv.Close()

	c := NewOpenAIEmbeddingClient("k", "", srv.URL+"/v1")
	v, err := c.GetEmbedding(context.Background(), "lake kivu")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.5, 0.75}, v.Slice())
}
