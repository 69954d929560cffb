package middleware

import (
	"github.com/gin-gonic/gin"
	"net"
)

// AllowPrivateIP bypasses rate limiting for loopback and RFC 1918 addresses,
// so health checks and internal probes never burn the budget.
func AllowPrivateIP() AllowFunc {
	return func(c *gin.Context) bool {
		ip := ipFromCtx(c)
		parsed := net.ParseIP(ip)
		if parsed == nil {
			return false
		}
		return parsed.IsLoopback() || parsed.IsPrivate()
	}
}
