package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP resolves the caller's address for rate limiting. Proxy headers
// win over the socket address, but only when they carry a well-formed IP.
func getClientIP(c *gin.Context) string {
	// Leftmost X-Forwarded-For entry is the original client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		candidate, _, _ := strings.Cut(xff, ",")
		candidate = strings.TrimSpace(candidate)
		if net.ParseIP(candidate) != nil {
			return candidate
		}
	}

	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		if net.ParseIP(xri) != nil {
			return xri
		}
	}

	// Socket address, minus the port when present.
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
