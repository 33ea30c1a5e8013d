package embedding

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOllamaProviderGenerate(t *testing.T) {
	// First component 3, rest zero; normalized this becomes a unit vector.
	raw := make([]float64, Dimensions)
	raw[0] = 3.0

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/embeddings", r.URL.Path)

		var req ollamaEmbeddingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "all-minilm", req.Model)
		assert.Equal(t, "some book text", req.Prompt)

		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: raw})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "")
	vec, err := provider.Generate(context.Background(), "some book text")

	assert.NoError(t, err)
	assert.Len(t, vec, Dimensions)
	assert.InDelta(t, 1.0, vec[0], 1e-6)
	assert.InDelta(t, 0.0, vec[1], 1e-6)
}

func TestOllamaProviderWrongDimensions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ollamaEmbeddingResponse{Embedding: []float64{1, 2, 3}})
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "")
	_, err := provider.Generate(context.Background(), "text")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dimensions")
}

func TestOllamaProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model not found"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := NewOllamaProvider(server.URL, "")
	_, err := provider.Generate(context.Background(), "text")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestNormalizeVector(t *testing.T) {
	got := normalizeVector([]float32{3, 4})

	var magnitude float64
	for _, v := range got {
		magnitude += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
	assert.InDelta(t, 0.6, got[0], 1e-6)
	assert.InDelta(t, 0.8, got[1], 1e-6)
}

func TestNormalizeVectorZero(t *testing.T) {
	got := normalizeVector([]float32{0, 0, 0})
	assert.Equal(t, []float32{0, 0, 0}, got)
}
