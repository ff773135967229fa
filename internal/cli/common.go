package cli

import (
	"fmt"

	"lingorag/config"
	"lingorag/internal/adapter/cache"
	"lingorag/internal/adapter/embedding"
	"lingorag/internal/adapter/store"
	"lingorag/internal/analyzer"
	"lingorag/internal/port"
)

// openStore opens the pair database under the configured data directory.
func openStore(cfg *config.Config, dir string) (*store.BoltPairStore, error) {
	if err := config.EnsureDataDir(dir); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	st, err := store.NewBoltPairStore(cfg.PairDBPath(dir), cfg.Embedding.Dimension)
	if err != nil {
		return nil, fmt.Errorf("failed to open pair store: %w", err)
	}
	return st, nil
}

// newEmbedder builds the configured embedding provider, wrapped in the
// query-vector cache when enabled.
func newEmbedder(cfg *config.Config) (port.Embedder, error) {
	var (
		emb port.Embedder
		err error
	)

	switch cfg.Embedding.Provider {
	case "openai":
		emb, err = embedding.NewOpenAIEmbedder(cfg.Embedding.APIKeyEnv, cfg.Embedding.Model, cfg.Embedding.BatchSize)
	case "ollama":
		emb, err = embedding.NewOllamaEmbedder(cfg.Embedding.Model, cfg.Embedding.BaseURL, cfg.Embedding.BatchSize)
	case "compatible":
		emb, err = embedding.NewCompatibleEmbedder(cfg.Embedding.APIKeyEnv, cfg.Embedding.Model, cfg.Embedding.BaseURL, cfg.Embedding.Dimension, cfg.Embedding.BatchSize)
	case "mock":
		emb = embedding.NewMockEmbedder(cfg.Embedding.Dimension)
	default:
		return nil, fmt.Errorf("unknown embedding provider: %s", cfg.Embedding.Provider)
	}
	if err != nil {
		return nil, err
	}

	if emb.Dimension() != cfg.Embedding.Dimension {
		return nil, fmt.Errorf("embedding dimension mismatch: model %s produces %d, config says %d",
			emb.ModelName(), emb.Dimension(), cfg.Embedding.Dimension)
	}

	if cfg.Embedding.CacheSize > 0 {
		emb = cache.NewCachedEmbedder(emb, cache.NewEmbedCache(cfg.Embedding.CacheSize, cfg.Embedding.CacheTTL()))
	}

	return emb, nil
}

// newDetector builds the stammering detector from the configured thresholds.
func newDetector(cfg *config.Config) *analyzer.StammerDetector {
	return analyzer.NewStammerDetector(analyzer.Thresholds{
		MinElongationRun: cfg.Stammer.MinElongationRun,
		MinDupWordLen:    cfg.Stammer.MinDupWordLen,
		RepetitionMargin: cfg.Stammer.RepetitionMargin,
	})
}
