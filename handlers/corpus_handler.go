package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"itpf-legal-backend/models"
	"itpf-legal-backend/service"
)

// CorpusHandler serves corpus lookups and maintenance
type CorpusHandler struct {
	answerService *service.AnswerService
}

// NewCorpusHandler creates a new corpus handler
func NewCorpusHandler(answerService *service.AnswerService) *CorpusHandler {
	return &CorpusHandler{answerService: answerService}
}

// GetAppendix handles GET /api/appendices/:number
func (h *CorpusHandler) GetAppendix(c *gin.Context) {
	lang := models.ParseLanguage(c.Query("language"))
	entry, err := h.answerService.Appendix(c.Request.Context(), lang, c.Param("number"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, entry)
}

// Stats handles GET /api/corpus/stats
func (h *CorpusHandler) Stats(c *gin.Context) {
	stats, err := h.answerService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, stats)
}

// Reload handles POST /api/corpus/reload
func (h *CorpusHandler) Reload(c *gin.Context) {
	if err := h.answerService.Reload(c.Request.Context()); err != nil {
		respondServiceError(c, err)
		return
	}
	h.Stats(c)
}

// RecentQueries handles GET /api/queries/recent
func (h *CorpusHandler) RecentQueries(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, http.StatusBadRequest, "INVALID_REQUEST", "limit must be a positive integer")
			return
		}
		limit = n
	}

	logs, err := h.answerService.RecentQueries(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, logs)
}
