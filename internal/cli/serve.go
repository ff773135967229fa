package cli

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"lingorag/internal/api"
	"lingorag/internal/usecase"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API exposing pair ingestion, prompt generation and
stammering detection.

Endpoints:
  POST /pairs       Add a translation pair
  GET  /prompt      Build a translation prompt with similar examples
  GET  /stammering  Detect stammering in a translated sentence

Example:
  lingorag serve --addr :8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore(cfg, GetRootDir())
	if err != nil {
		return err
	}
	defer st.Close()

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}

	retrieveUC := usecase.NewRetrieveUseCase(st, embedder, cfg.Retrieve.MaxExamples)
	ingestUC := usecase.NewIngestUseCase(st, embedder, nil)
	detector := newDetector(cfg)

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	server := api.NewServer(retrieveUC, ingestUC, detector)

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	count, _ := st.Count()
	fmt.Printf("Serving on %s (%d pairs stored, model %s)\n", addr, count, embedder.ModelName())
	return server.Router().Run(addr)
}
