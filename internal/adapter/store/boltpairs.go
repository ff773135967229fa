package store

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"lingorag/internal/domain"
)

var bucketPairs = []byte("pairs")

// BoltPairStore persists translation pairs and their embeddings in BoltDB.
// All vectors are mirrored in memory and searched brute-force with cosine
// distance; at the scale of a per-language-pair example corpus this beats
// the complexity of an ANN index.
type BoltPairStore struct {
	db        *bbolt.DB
	dimension int
	mu        sync.RWMutex
	pairs     map[string]pairEntry
}

type pairEntry struct {
	vector []float32
	pair   domain.TranslationPair
}

type storedPair struct {
	Vector      []float32 `json:"v"`
	SourceLang  string    `json:"sl"`
	TargetLang  string    `json:"tl"`
	Sentence    string    `json:"s"`
	Translation string    `json:"t"`
}

// NewBoltPairStore opens (or creates) the database at path.
// The dimension is fixed per store; it must match the embedding model.
func NewBoltPairStore(path string, dimension int) (*BoltPairStore, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("invalid embedding dimension: %d", dimension)
	}

	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketPairs)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create pairs bucket: %w", err)
	}

	s := &BoltPairStore{
		db:        db,
		dimension: dimension,
		pairs:     make(map[string]pairEntry),
	}

	if err := s.loadPairs(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to load pairs: %w", err)
	}

	return s, nil
}

// loadPairs fills the in-memory mirror from BoltDB.
func (s *BoltPairStore) loadPairs() error {
	return s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketPairs)
		if b == nil {
			return nil
		}

		return b.ForEach(func(k, v []byte) error {
			var stored storedPair
			if err := json.Unmarshal(v, &stored); err != nil {
				return nil // Skip corrupted entries
			}
			s.pairs[string(k)] = pairEntry{
				vector: stored.Vector,
				pair: domain.TranslationPair{
					SourceLanguage: stored.SourceLang,
					TargetLanguage: stored.TargetLang,
					Sentence:       stored.Sentence,
					Translation:    stored.Translation,
				},
			}
			return nil
		})
	})
}

// Add stores a pair with its source-sentence embedding. Pairs are
// append-only; adding the same pair twice yields two records.
func (s *BoltPairStore) Add(pair domain.TranslationPair, vector []float32) (string, error) {
	if len(vector) != s.dimension {
		return "", fmt.Errorf("vector dimension mismatch: expected %d, got %d", s.dimension, len(vector))
	}

	id := uuid.NewString()
	stored := storedPair{
		Vector:      vector,
		SourceLang:  pair.SourceLanguage,
		TargetLang:  pair.TargetLanguage,
		Sentence:    pair.Sentence,
		Translation: pair.Translation,
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketPairs)
		if b == nil {
			return fmt.Errorf("pairs bucket not found")
		}
		return b.Put([]byte(id), data)
	})
	if err != nil {
		return "", err
	}

	s.pairs[id] = pairEntry{vector: vector, pair: pair}
	return id, nil
}

// Search returns up to k pairs stored in the given direction, ordered by
// ascending cosine distance to the query vector.
func (s *BoltPairStore) Search(query []float32, langs domain.LanguagePair, k int) ([]domain.Match, error) {
	if len(query) != s.dimension {
		return nil, fmt.Errorf("query dimension mismatch: expected %d, got %d", s.dimension, len(query))
	}
	if k <= 0 {
		return nil, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]domain.Match, 0, k)
	for _, entry := range s.pairs {
		if entry.pair.SourceLanguage != langs.Source || entry.pair.TargetLanguage != langs.Target {
			continue
		}
		matches = append(matches, domain.Match{
			Pair:     entry.pair,
			Distance: 1 - cosineSimilarity(query, entry.vector),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})

	if k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// Count returns the number of stored pairs across all directions.
func (s *BoltPairStore) Count() (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pairs), nil
}

func (s *BoltPairStore) Close() error {
	return s.db.Close()
}

// cosineSimilarity calculates the cosine similarity between two vectors.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
