package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// proxyHeaders are consulted in order. Values that do not parse as an IP are skipped.
var proxyHeaders = []string{"X-Forwarded-For", "X-Real-IP"}

func getClientIP(c *gin.Context) string {
	for _, h := range proxyHeaders {
		for _, candidate := range strings.Split(c.GetHeader(h), ",") {
			candidate = strings.TrimSpace(candidate)
			if net.ParseIP(candidate) != nil {
				return candidate
			}
		}
	}

	host, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return host
}
