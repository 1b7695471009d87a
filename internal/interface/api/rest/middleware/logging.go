package middleware

import (
	"bytes"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const maxLogBodySize = 1 << 12 // 4 KB

// the closing quote is optional: the logged body may be cut inside the value.
var passwordRe = regexp.MustCompile(`("password"\s*:\s*)"(?:[^"\\]|\\.)*"?`)

func RequestLogGin(
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
	mDuration *prometheus.HistogramVec,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions ||
			c.Request.URL.Path == "/favicon.ico" ||
			strings.HasSuffix(c.Request.URL.Path, "/metrics") {
			c.Next()
			return
		}

		start := time.Now()

		var body string
		if c.Request != nil && c.Request.Body != nil {
			var buf bytes.Buffer
			limited := io.LimitReader(c.Request.Body, maxLogBodySize)
			_, _ = io.Copy(&buf, limited)
			// the handler must still see the whole body, not just the logged prefix
			c.Request.Body = readCloser{
				Reader: io.MultiReader(bytes.NewReader(buf.Bytes()), c.Request.Body),
				Closer: c.Request.Body,
			}
			body = MaskPassword(buf.String())
		}

		c.Next()

		status := c.Writer.Status()
		duration := time.Since(start)

		if mCounter != nil {
			mCounter.WithLabelValues("app_requests_total").Inc()
		}
		if mDuration != nil {
			mDuration.
				WithLabelValues(c.Request.Method, c.FullPath(), strconv.Itoa(status)).
				Observe(duration.Seconds())
		}

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("url", c.FullPath()),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("body", body),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// MaskPassword hides the value of every "password" key in a JSON body.
func MaskPassword(body string) string {
	return passwordRe.ReplaceAllString(body, `$1"***"`)
}

type readCloser struct {
	io.Reader
	io.Closer
}
