package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"wheelscan/internal/app"
	"wheelscan/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	AnalysisApp app.AnalysisApp
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to wheelscan"})
	})
	router.POST("/analyze", m.analyze)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	logger.Error(err)
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// logRequestMiddlware tags every request with an id, stashes a scoped
// logger on the request context and records the outcome once the
// handler chain finishes.
func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		logger.Error(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	log := logger.New().With(
		"requestId", uuid.NewString(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
		"ip", ctx.ClientIP(),
	)
	ctx.Request = ctx.Request.WithContext(
		context.WithValue(ctx.Request.Context(), logger.ContextKey, log),
	)

	start := time.Now().UTC()
	ctx.Next()

	log.Infow("handled request",
		"statusCode", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
		"responseBytes", w.body.Len(),
	)
}
