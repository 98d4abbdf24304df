package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"itpf-legal-backend/service"
)

// RouterConfig holds what the HTTP layer needs
type RouterConfig struct {
	AnswerService   *service.AnswerService
	Logger          logrus.FieldLogger
	RateLimiter     *IPRateLimiter
	CORSAllowOrigin string
	// QueryLog registers the recent queries endpoint
	QueryLog bool
}

// NewRouter builds the gin engine with every route
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}
	if cfg.CORSAllowOrigin == "" {
		cfg.CORSAllowOrigin = "*"
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(cfg.Logger), CORS(cfg.CORSAllowOrigin))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	answerHandler := NewAnswerHandler(cfg.AnswerService)
	corpusHandler := NewCorpusHandler(cfg.AnswerService)

	// API routes
	api := r.Group("/api")
	if cfg.RateLimiter != nil {
		api.Use(RateLimit(cfg.RateLimiter))
	}
	{
		api.POST("/answer", answerHandler.Answer)
		api.POST("/search", answerHandler.Search)

		api.GET("/appendices/:number", corpusHandler.GetAppendix)
		api.GET("/corpus/stats", corpusHandler.Stats)
		api.POST("/corpus/reload", corpusHandler.Reload)

		if cfg.QueryLog {
			api.GET("/queries/recent", corpusHandler.RecentQueries)
		}
	}

	return r
}
