package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterDocs serves a short human-readable route overview; the machine
// spec lives at /swagger/index.html.
func RegisterDocs(r *gin.Engine) {
	r.GET("/docs", func(c *gin.Context) {
		c.Header("Content-Type", "text/markdown; charset=utf-8")
		c.String(http.StatusOK, `# FarmSight API

Crop profitability and risk estimates for Bihar farmers.

## Auth

All /api/* routes require a Bearer token issued by the auth service.
Health endpoints and this page are public.

## Routes

- GET /healthz
- GET /readyz
- GET /swagger/index.html
- GET /api/reference-data
- POST /api/estimates
- GET /api/estimates
- GET /api/estimates/{id}
- DELETE /api/estimates/{id}
- POST /api/chat-support
`)
	})
}
