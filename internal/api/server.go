package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lingorag/internal/analyzer"
	"lingorag/internal/domain"
	"lingorag/internal/usecase"
)

// Server exposes the retrieval engine and stammering detector over HTTP.
type Server struct {
	retrieve *usecase.RetrieveUseCase
	ingest   *usecase.IngestUseCase
	detector *analyzer.StammerDetector
}

func NewServer(
	retrieve *usecase.RetrieveUseCase,
	ingest *usecase.IngestUseCase,
	detector *analyzer.StammerDetector,
) *Server {
	return &Server{
		retrieve: retrieve,
		ingest:   ingest,
		detector: detector,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	r.GET("/", s.handleRoot)
	r.GET("/health", s.handleHealth)
	r.POST("/pairs", s.handleAddPair)
	r.GET("/prompt", s.handlePrompt)
	r.GET("/stammering", s.handleStammering)

	return r
}

func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "lingorag translation API"})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// pairRequest is the body of POST /pairs.
type pairRequest struct {
	SourceLanguage string `json:"source_language" binding:"required"`
	TargetLanguage string `json:"target_language" binding:"required"`
	Sentence       string `json:"sentence" binding:"required"`
	Translation    string `json:"translation" binding:"required"`
}

func (s *Server) handleAddPair(c *gin.Context) {
	var req pairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	_, err := s.ingest.AddPair(domain.TranslationPair{
		SourceLanguage: req.SourceLanguage,
		TargetLanguage: req.TargetLanguage,
		Sentence:       req.Sentence,
		Translation:    req.Translation,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add pair: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handlePrompt(c *gin.Context) {
	sourceLang := c.Query("source_language")
	targetLang := c.Query("target_language")
	querySentence := c.Query("query_sentence")
	if sourceLang == "" || targetLang == "" || querySentence == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source_language, target_language and query_sentence are required"})
		return
	}

	prompt, err := s.retrieve.BuildPrompt(domain.LanguagePair{Source: sourceLang, Target: targetLang}, querySentence)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate prompt: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"prompt": prompt})
}

func (s *Server) handleStammering(c *gin.Context) {
	source, sourceOK := c.GetQuery("source_sentence")
	translated, translatedOK := c.GetQuery("translated_sentence")
	if !sourceOK || !translatedOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "source_sentence and translated_sentence are required"})
		return
	}

	// Empty values are legal detector inputs; the rules simply cannot fire.
	c.JSON(http.StatusOK, gin.H{"has_stammer": s.detector.Detect(source, translated)})
}
