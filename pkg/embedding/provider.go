package embedding

import "context"

// Dimensions of the book embedding space. The vector(384) column type and
// every stored embedding depend on this matching the configured model.
const Dimensions = 384

// Provider generates text embeddings for catalog documents and queries.
type Provider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}
