package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type analyzeRequest struct {
	Symbols    []string `json:"symbols"`
	TargetDays int      `json:"targetDays"`
}

func (h ApiHandler) analyze(c *gin.Context) {
	var requestBody analyzeRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(fmt.Errorf("failed to read request body: %w", err), c)
		return
	}

	if len(requestBody.Symbols) == 0 {
		returnErrorJsonCode(fmt.Errorf("at least one symbol is required"), c, 400)
		return
	}

	report, err := h.AnalysisApp.AnalyzeSymbols(
		c.Request.Context(),
		requestBody.Symbols,
		requestBody.TargetDays,
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, report)
}
