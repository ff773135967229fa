package usecase

import (
	"fmt"
	"strings"

	"lingorag/internal/adapter/fs"
	"lingorag/internal/domain"
	"lingorag/internal/port"
)

// IngestUseCase writes translation pairs into the store, embedding the
// source sentence once at write time.
type IngestUseCase struct {
	store    port.PairStore
	embedder port.Embedder
	walker   *fs.Walker
}

// NewIngestUseCase creates an ingest use case. The walker may be nil when
// bulk import is not needed.
func NewIngestUseCase(store port.PairStore, embedder port.Embedder, walker *fs.Walker) *IngestUseCase {
	return &IngestUseCase{
		store:    store,
		embedder: embedder,
		walker:   walker,
	}
}

// AddPair embeds the pair's source sentence and stores it. Returns the
// assigned ID.
func (u *IngestUseCase) AddPair(pair domain.TranslationPair) (string, error) {
	embeddings, err := u.embedder.Embed([]string{pair.Sentence})
	if err != nil {
		return "", fmt.Errorf("failed to embed sentence: %w", err)
	}
	if len(embeddings) == 0 {
		return "", fmt.Errorf("embedding returned empty result")
	}

	id, err := u.store.Add(pair, embeddings[0])
	if err != nil {
		return "", fmt.Errorf("failed to store pair: %w", err)
	}
	return id, nil
}

// ImportResult summarizes a bulk import run.
type ImportResult struct {
	FilesRead     int
	PairsImported int
	Errors        []string
}

// ProgressFunc reports bulk import progress.
type ProgressFunc func(processed, total int)

// ImportDir walks root for corpus files matching the walker's patterns and
// imports every pair in them. Sentences are embedded in one batch per file;
// malformed lines are collected as warnings, not fatal errors.
func (u *IngestUseCase) ImportDir(root string, progress ProgressFunc) (ImportResult, error) {
	var result ImportResult

	if u.walker == nil {
		return result, fmt.Errorf("bulk import not configured")
	}

	files, err := u.walker.Walk(root)
	if err != nil {
		return result, fmt.Errorf("failed to scan corpus directory: %w", err)
	}

	// Count pairs up front so progress has a total.
	type parsedFile struct {
		path  string
		pairs []domain.TranslationPair
	}
	var parsed []parsedFile
	total := 0
	for _, f := range files {
		content, err := fs.ReadFile(f.Path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", f.Path, err))
			continue
		}
		pairs, warns := ParsePairsTSV(content)
		for _, w := range warns {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", f.Path, w))
		}
		parsed = append(parsed, parsedFile{path: f.Path, pairs: pairs})
		total += len(pairs)
		result.FilesRead++
	}

	processed := 0
	for _, pf := range parsed {
		if len(pf.pairs) == 0 {
			continue
		}

		sentences := make([]string, len(pf.pairs))
		for i, p := range pf.pairs {
			sentences[i] = p.Sentence
		}

		embeddings, err := u.embedder.Embed(sentences)
		if err != nil {
			return result, fmt.Errorf("failed to embed %s: %w", pf.path, err)
		}
		if len(embeddings) != len(pf.pairs) {
			return result, fmt.Errorf("embedding count mismatch for %s: expected %d, got %d", pf.path, len(pf.pairs), len(embeddings))
		}

		for i, p := range pf.pairs {
			if _, err := u.store.Add(p, embeddings[i]); err != nil {
				return result, fmt.Errorf("failed to store pair from %s: %w", pf.path, err)
			}
			result.PairsImported++
			processed++
			if progress != nil {
				progress(processed, total)
			}
		}
	}

	return result, nil
}

// ParsePairsTSV parses corpus lines of the form
// "source_lang<TAB>target_lang<TAB>sentence<TAB>translation".
// Blank lines and lines starting with '#' are skipped; malformed lines are
// returned as warnings.
func ParsePairsTSV(content string) ([]domain.TranslationPair, []string) {
	var pairs []domain.TranslationPair
	var warnings []string

	for n, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) != 4 {
			warnings = append(warnings, fmt.Sprintf("line %d: expected 4 tab-separated fields, got %d", n+1, len(fields)))
			continue
		}

		pair := domain.TranslationPair{
			SourceLanguage: strings.TrimSpace(fields[0]),
			TargetLanguage: strings.TrimSpace(fields[1]),
			Sentence:       strings.TrimSpace(fields[2]),
			Translation:    strings.TrimSpace(fields[3]),
		}
		if pair.SourceLanguage == "" || pair.TargetLanguage == "" || pair.Sentence == "" || pair.Translation == "" {
			warnings = append(warnings, fmt.Sprintf("line %d: empty field", n+1))
			continue
		}
		pairs = append(pairs, pair)
	}

	return pairs, warnings
}
