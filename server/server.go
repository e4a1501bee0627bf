// Package server exposes the scenario runner over HTTP.
//
//	GET  /api/operations          names of the supported operations
//	POST /api/scenarios           body: JSON array of scenarios; runs them and returns the results
package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Invicton-Labs/go-linkedlists/log"
	"github.com/Invicton-Labs/go-linkedlists/scenario"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Config struct {
	// Parallelism is the default limit on scenarios run at once for a
	// request that does not set the `parallelism` query parameter.
	Parallelism int
	// MaxScenarios caps the number of scenarios in one request (no cap if <= 0).
	MaxScenarios int
	Logger       log.Logger
}

type server struct {
	config Config
}

// RegisterRouting adds the API routes to the engine.
func RegisterRouting(engine *gin.Engine, config Config) {
	if config.Logger == nil {
		config.Logger = log.Default()
	}
	s := &server{
		config: config,
	}
	api := engine.Group("/api")
	api.Use(requestLogger(config.Logger))
	{
		api.GET("/operations", s.Operations)
		api.POST("/scenarios", s.RunScenarios)
	}
}

// requestLogger attaches a request-scoped logger to the request context
// and logs the outcome of every request.
func requestLogger(base log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		logger := base.With("request_id", uuid.New().String(), "method", c.Request.Method, "path", c.FullPath())
		c.Request = c.Request.WithContext(log.LogContext(c.Request.Context(), logger))
		c.Next()
		logger.Infow("Handled request", "status", c.Writer.Status(), "duration", time.Since(start))
	}
}

func (s *server) Operations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"operations": scenario.Operations(),
	})
}

func (s *server) RunScenarios(c *gin.Context) {
	parallelism := s.config.Parallelism
	if p := c.Query("parallelism"); p != "" {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "parallelism must be a non-negative integer"})
			return
		}
		parallelism = v
	}

	data, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	scenarios, serr := scenario.Parse(data)
	if serr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error()})
		return
	}
	if s.config.MaxScenarios > 0 && len(scenarios) > s.config.MaxScenarios {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "too many scenarios: " + strconv.Itoa(len(scenarios)) + " > " + strconv.Itoa(s.config.MaxScenarios),
		})
		return
	}

	ctx := c.Request.Context()
	results, serr := scenario.RunAll(ctx, scenarios, parallelism)
	if serr != nil {
		log.FromContext(ctx).Error(serr)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   serr.Error(),
			"results": results,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results": results,
	})
}
