package port

import "lingorag/internal/domain"

// Embedder generates vector embeddings for text.
type Embedder interface {
	// Embed generates embeddings for the given texts.
	// Returns a slice of vectors, one per input text.
	Embed(texts []string) ([][]float32, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int

	// ModelName returns the name of the embedding model.
	ModelName() string
}

// PairStore stores translation pairs alongside their source-sentence
// embeddings and answers nearest-neighbor queries filtered by language pair.
type PairStore interface {
	// Add stores a pair with its embedding and returns the assigned ID.
	// Stored pairs are immutable.
	Add(pair domain.TranslationPair, vector []float32) (string, error)

	// Search returns up to k pairs stored in the given direction, ordered
	// by ascending distance to the query vector.
	Search(vector []float32, langs domain.LanguagePair, k int) ([]domain.Match, error)

	// Count returns the number of stored pairs.
	Count() (int, error)

	Close() error
}
