package handler

import (
	"context"
	"net/http"
	"time"

	"lnurlp-webhook/internal/core/ports"
	"lnurlp-webhook/pkg/response"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 3 * time.Second

type depStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// HealthReport is the body of GET /health.
type HealthReport struct {
	Status       string               `json:"status"`
	Dependencies map[string]depStatus `json:"dependencies"`
}

// HealthCheck handles GET /health by pinging every dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		report := HealthReport{Status: "healthy", Dependencies: make(map[string]depStatus, len(checkers))}

		for _, checker := range checkers {
			if err := checker.Ping(ctx); err != nil {
				report.Dependencies[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				report.Status = "degraded"
				continue
			}
			report.Dependencies[checker.Name()] = depStatus{Status: "healthy"}
		}

		if report.Status != "healthy" {
			response.Status(c, http.StatusServiceUnavailable, report)
			return
		}
		response.OK(c, report)
	}
}
