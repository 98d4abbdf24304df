package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"itpf-legal-backend/corpus"
	"itpf-legal-backend/service"
)

// respondError writes the error envelope and aborts the request
func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}

// respondServiceError maps service errors to HTTP statuses
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyQuestion):
		respondError(c, http.StatusBadRequest, "EMPTY_QUESTION", "Question must not be empty")
	case errors.Is(err, corpus.ErrCorpusUnavailable):
		respondError(c, http.StatusServiceUnavailable, "CORPUS_UNAVAILABLE", "Legal corpus is not available")
	case errors.Is(err, service.ErrEntryNotFound):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrQueryLogDisabled):
		respondError(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	default:
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
	}
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
