package usecase

import (
	"fmt"
	"sort"
	"strings"

	"lingorag/internal/domain"
	"lingorag/internal/port"
)

// RetrieveUseCase finds the stored translation pairs most similar to a query
// sentence, searching both language directions, and composes the generation
// prompt from them.
type RetrieveUseCase struct {
	store       port.PairStore
	embedder    port.Embedder
	maxExamples int
}

// NewRetrieveUseCase creates a retrieve use case. maxExamples caps the
// number of surfaced example pairs.
func NewRetrieveUseCase(store port.PairStore, embedder port.Embedder, maxExamples int) *RetrieveUseCase {
	if maxExamples <= 0 {
		maxExamples = 4
	}
	return &RetrieveUseCase{
		store:       store,
		embedder:    embedder,
		maxExamples: maxExamples,
	}
}

// SimilarPairs returns up to maxExamples pairs similar to sentence, all
// oriented to the requested direction. Pairs stored in the opposite
// direction are matched with the same query vector (embeddings always come
// from the stored source side) and swapped before being surfaced.
//
// An embedding or store failure propagates as an error; it is never
// silently turned into an empty result. Zero matches is not an error.
func (u *RetrieveUseCase) SimilarPairs(langs domain.LanguagePair, sentence string) ([]domain.Match, error) {
	embeddings, err := u.embedder.Embed([]string{sentence})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("embedding returned empty result")
	}
	query := embeddings[0]

	// Oversample each direction so dedup and the merge still leave enough.
	k := u.maxExamples * 2

	direct, err := u.store.Search(query, langs, k)
	if err != nil {
		return nil, fmt.Errorf("direct search failed: %w", err)
	}

	reversed, err := u.store.Search(query, langs.Swapped(), k)
	if err != nil {
		return nil, fmt.Errorf("reverse search failed: %w", err)
	}
	for i := range reversed {
		reversed[i].Swap()
	}

	merged := append(direct, reversed...)

	// Stable keeps direct results ahead of reverse ones on equal distance.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Distance < merged[j].Distance
	})

	// After sorting, the first occurrence of a pair has the lowest distance.
	seen := make(map[string]struct{}, len(merged))
	results := make([]domain.Match, 0, u.maxExamples)
	for _, m := range merged {
		key := m.Pair.Sentence + "\x00" + m.Pair.Translation
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		results = append(results, m)
		if len(results) == u.maxExamples {
			break
		}
	}

	return results, nil
}

// BuildPrompt composes the translation prompt for sentence: an instruction
// header naming both languages, one bullet per retrieved example and a
// trailing translate request. With no stored matches the prompt still comes
// out well-formed, just without the examples section.
func (u *RetrieveUseCase) BuildPrompt(langs domain.LanguagePair, sentence string) (string, error) {
	matches, err := u.SimilarPairs(langs, sentence)
	if err != nil {
		return "", err
	}
	return ComposePrompt(langs, sentence, matches), nil
}

// ComposePrompt renders the prompt text from already retrieved matches.
func ComposePrompt(langs domain.LanguagePair, sentence string, matches []domain.Match) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a translator from %s to %s.\n", LanguageName(langs.Source), LanguageName(langs.Target))

	if len(matches) > 0 {
		b.WriteString("\nHere are some similar translation examples:\n")
		for _, m := range matches {
			fmt.Fprintf(&b, "- \"%s\" → \"%s\"\n", m.Pair.Sentence, m.Pair.Translation)
		}
	}

	fmt.Fprintf(&b, "\nNow translate: \"%s\"", sentence)
	return b.String()
}

// languageNames maps ISO 639-1 codes to display names for the prompt
// header. Unknown codes fall back to the upper-cased code.
var languageNames = map[string]string{
	"en": "English",
	"it": "Italian",
	"de": "German",
	"fr": "French",
	"es": "Spanish",
	"pt": "Portuguese",
	"nl": "Dutch",
	"pl": "Polish",
	"ru": "Russian",
	"ja": "Japanese",
	"zh": "Chinese",
	"ko": "Korean",
	"ar": "Arabic",
	"tr": "Turkish",
	"sv": "Swedish",
	"uk": "Ukrainian",
}

// LanguageName returns the display name for an ISO 639-1 code.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return strings.ToUpper(code)
}
