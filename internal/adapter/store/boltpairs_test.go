package store

import (
	"math"
	"path/filepath"
	"testing"

	"lingorag/internal/domain"
)

func newTestStore(t *testing.T) (*BoltPairStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pairs.db")
	s, err := NewBoltPairStore(path, 3)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return s, path
}

func enIT(sentence, translation string) domain.TranslationPair {
	return domain.TranslationPair{
		SourceLanguage: "en",
		TargetLanguage: "it",
		Sentence:       sentence,
		Translation:    translation,
	}
}

func TestAddAndCount(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	id, err := s.Add(enIT("Hello", "Ciao"), []float32{1, 0, 0})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty ID")
	}

	count, err := s.Count()
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 pair, got %d", count)
	}
}

func TestAdd_DimensionMismatch(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	if _, err := s.Add(enIT("Hello", "Ciao"), []float32{1, 0}); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestAdd_DuplicatesGetDistinctIDs(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	id1, err := s.Add(enIT("Hello", "Ciao"), []float32{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	id2, err := s.Add(enIT("Hello", "Ciao"), []float32{1, 0, 0})
	if err != nil {
		t.Fatal(err)
	}
	if id1 == id2 {
		t.Error("expected distinct IDs for duplicate pairs")
	}

	count, _ := s.Count()
	if count != 2 {
		t.Errorf("expected 2 records, got %d", count)
	}
}

func TestSearch_FiltersByLanguagePair(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Add(enIT("Hello", "Ciao"), []float32{1, 0, 0})
	s.Add(domain.TranslationPair{
		SourceLanguage: "it", TargetLanguage: "en",
		Sentence: "Buongiorno", Translation: "Good morning",
	}, []float32{1, 0, 0})
	s.Add(domain.TranslationPair{
		SourceLanguage: "de", TargetLanguage: "fr",
		Sentence: "Hallo", Translation: "Salut",
	}, []float32{1, 0, 0})

	matches, err := s.Search([]float32{1, 0, 0}, domain.LanguagePair{Source: "en", Target: "it"}, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Pair.Sentence != "Hello" {
		t.Errorf("expected the en->it pair, got %q", matches[0].Pair.Sentence)
	}
}

func TestSearch_OrdersByDistance(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	s.Add(enIT("far", "lontano"), []float32{0, 1, 0})
	s.Add(enIT("near", "vicino"), []float32{1, 0.1, 0})
	s.Add(enIT("exact", "esatto"), []float32{1, 0, 0})

	matches, err := s.Search([]float32{1, 0, 0}, domain.LanguagePair{Source: "en", Target: "it"}, 10)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	if matches[0].Pair.Sentence != "exact" {
		t.Errorf("expected exact match first, got %q", matches[0].Pair.Sentence)
	}
	if matches[0].Distance > 1e-6 {
		t.Errorf("expected near-zero distance for identical vector, got %f", matches[0].Distance)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Distance < matches[i-1].Distance {
			t.Errorf("matches out of order at %d", i)
		}
	}
}

func TestSearch_RespectsK(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	for i := 0; i < 5; i++ {
		s.Add(enIT("s", "t"), []float32{1, float32(i) * 0.1, 0})
	}

	matches, err := s.Search([]float32{1, 0, 0}, domain.LanguagePair{Source: "en", Target: "it"}, 2)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 2 {
		t.Errorf("expected 2 matches, got %d", len(matches))
	}
}

func TestSearch_DimensionMismatch(t *testing.T) {
	s, _ := newTestStore(t)
	defer s.Close()

	if _, err := s.Search([]float32{1, 0}, domain.LanguagePair{Source: "en", Target: "it"}, 4); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

func TestPersistence_AcrossReopen(t *testing.T) {
	s, path := newTestStore(t)
	s.Add(enIT("Hello", "Ciao"), []float32{1, 0, 0})
	if err := s.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	reopened, err := NewBoltPairStore(path, 3)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	count, _ := reopened.Count()
	if count != 1 {
		t.Fatalf("expected 1 pair after reopen, got %d", count)
	}

	matches, err := reopened.Search([]float32{1, 0, 0}, domain.LanguagePair{Source: "en", Target: "it"}, 4)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(matches) != 1 || matches[0].Pair.Translation != "Ciao" {
		t.Errorf("expected persisted pair to survive reopen, got %v", matches)
	}
}

func TestCosineSimilarity(t *testing.T) {
	if sim := cosineSimilarity([]float32{1, 0}, []float32{1, 0}); math.Abs(sim-1) > 1e-9 {
		t.Errorf("expected similarity 1 for identical vectors, got %f", sim)
	}
	if sim := cosineSimilarity([]float32{1, 0}, []float32{0, 1}); math.Abs(sim) > 1e-9 {
		t.Errorf("expected similarity 0 for orthogonal vectors, got %f", sim)
	}
	if sim := cosineSimilarity([]float32{0, 0}, []float32{1, 0}); sim != 0 {
		t.Errorf("expected 0 for zero vector, got %f", sim)
	}
	if sim := cosineSimilarity([]float32{1}, []float32{1, 0}); sim != 0 {
		t.Errorf("expected 0 for mismatched lengths, got %f", sim)
	}
}
