package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CallerHeader carries the authenticated user id, injected by the upstream
// auth layer. The identity middleware rejects requests without it.
const CallerHeader = "X-User-ID"

func callerUserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetHeader(CallerHeader))
}
