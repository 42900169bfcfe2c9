package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finsight/backend/internal/httputil"
)

// OptionsHealthz returns the allowed HTTP verbs.
func OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetHealthz returns 204 when a ledger is loaded and 503 otherwise.
func (s *Server) GetHealthz(c *gin.Context) {
	if s.Ledger.Current() == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}

	c.Status(http.StatusNoContent)
}
