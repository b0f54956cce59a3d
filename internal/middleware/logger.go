package middleware

import (
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorWhite  = "\033[37m"
	colorGray   = "\033[90m"
)

var skipPaths = []string{"/health", "/metrics"}

// Logger logs one line per request with method, path, status, latency and
// the acting user when authenticated. Query strings are masked before
// logging so credentials never land in the log.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range skipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		start := time.Now()
		method := c.Request.Method
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		userID := c.GetString("userID")

		line := statusColor(status) + "[" + method + "]" + colorReset +
			" " + colorBlue + path + colorReset
		if query != "" {
			line += colorGray + "?" + truncate(maskQuery(query), 120) + colorReset
		}
		line += " " + statusColor(status) + strconv.Itoa(status) + colorReset +
			" " + colorGray + latency.String() + colorReset
		if userID != "" {
			line += " " + colorGray + "user=" + userID + colorReset
		}

		log.Print(line)
	}
}

func statusColor(status int) string {
	switch {
	case status >= 200 && status < 300:
		return colorGreen
	case status >= 300 && status < 400:
		return colorCyan
	case status >= 400 && status < 500:
		return colorYellow
	case status >= 500:
		return colorRed
	default:
		return colorWhite
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// maskQuery hides password-like values in a raw query string
func maskQuery(query string) string {
	pairs := strings.Split(query, "&")
	for i, pair := range pairs {
		key, _, found := strings.Cut(pair, "=")
		if found && isSensitiveField(strings.ToLower(key)) {
			pairs[i] = key + "=********"
		}
	}
	return strings.Join(pairs, "&")
}

func isSensitiveField(field string) bool {
	sensitive := []string{"password", "token", "secret", "credential"}
	for _, s := range sensitive {
		if strings.Contains(field, s) {
			return true
		}
	}
	return false
}
