package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itpf-legal-backend/models"
	"itpf-legal-backend/service"
)

// AnswerHandler handles question answering and search requests
type AnswerHandler struct {
	answerService *service.AnswerService
}

// NewAnswerHandler creates a new answer handler
func NewAnswerHandler(answerService *service.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

// AnswerRequest represents the request body for answering a question
type AnswerRequest struct {
	Question string `json:"question"`
	Language string `json:"language" binding:"omitempty,oneof=arabic english both"`
	UseAI    bool   `json:"use_ai"`
}

// SearchRequest represents the request body for a ranked search
type SearchRequest struct {
	Query      string `json:"query"`
	Language   string `json:"language" binding:"omitempty,oneof=arabic english both"`
	MaxResults int    `json:"max_results" binding:"omitempty,min=1,max=50"`
}

// Answer handles POST /api/answer
func (h *AnswerHandler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.answerService.Answer(c.Request.Context(), service.AnswerRequest{
		Question: req.Question,
		Language: models.ParseLanguage(req.Language),
		UseAI:    req.UseAI,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, result)
}

// Search handles POST /api/search
func (h *AnswerHandler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.answerService.Search(c.Request.Context(), service.SearchRequest{
		Query:      req.Query,
		Language:   models.ParseLanguage(req.Language),
		MaxResults: req.MaxResults,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondOK(c, result)
}
