package api

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"govdocgo/internal/models"
)

// Analyzer runs the document analysis pipeline.
type Analyzer interface {
	Analyze(ctx context.Context, files []models.UploadedFile) (*models.AnalysisResult, error)
}

// ChatService answers follow-up questions; it degrades internally and
// never fails.
type ChatService interface {
	Respond(ctx context.Context, history []models.ChatTurn, message, documentContext string) string
}

// Handler wires HTTP routes to the analysis and chat services.
type Handler struct {
	analyzer  Analyzer
	chat      ChatService
	staticDir string
	logger    *zap.Logger
}

// NewHandler constructs a Handler instance. staticDir may be empty to
// disable the SPA fallback.
func NewHandler(analyzer Analyzer, chat ChatService, staticDir string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{analyzer: analyzer, chat: chat, staticDir: staticDir, logger: logger}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api")
	api.POST("/analyze", h.analyzeDocuments)
	api.POST("/chat", h.chatWithDocument)
	router.NoRoute(h.serveApp)
}

type analyzeRequest struct {
	Files []models.UploadedFile `json:"files"`
}

func (h *Handler) analyzeDocuments(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일 데이터가 필요합니다."})
		return
	}

	result, err := h.analyzer.Analyze(c.Request.Context(), req.Files)
	if err != nil {
		h.logger.Error("analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type chatHistoryPart struct {
	Text string `json:"text"`
}

type chatHistoryEntry struct {
	Role  string            `json:"role"`
	Parts []chatHistoryPart `json:"parts"`
}

type chatRequest struct {
	History         []chatHistoryEntry `json:"history"`
	Message         string             `json:"message"`
	DocumentContext string             `json:"documentContext"`
}

func (h *Handler) chatWithDocument(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "잘못된 요청입니다."})
		return
	}

	history := make([]models.ChatTurn, 0, len(req.History))
	for _, entry := range req.History {
		texts := make([]string, 0, len(entry.Parts))
		for _, p := range entry.Parts {
			texts = append(texts, p.Text)
		}
		history = append(history, models.ChatTurn{
			Role: models.ChatRole(entry.Role),
			Text: strings.Join(texts, "\n"),
		})
	}

	text := h.chat.Respond(c.Request.Context(), history, req.Message, req.DocumentContext)
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// serveApp serves the single-page application shell for any route the
// API does not claim.
func (h *Handler) serveApp(c *gin.Context) {
	if h.staticDir == "" || c.Request.Method != http.MethodGet {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	requested := filepath.Join(h.staticDir, filepath.Clean("/"+c.Request.URL.Path))
	if info, err := os.Stat(requested); err == nil && !info.IsDir() {
		c.File(requested)
		return
	}
	c.File(filepath.Join(h.staticDir, "index.html"))
}
