package server

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

const requestIDHeader = "X-Request-ID"

// NewSalt returns a random key for HashIP.
func NewSalt() ([]byte, error) {
	salt := make([]byte, 32)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating log salt: %w", err)
	}
	return salt, nil
}

// HashIP returns a short keyed hash of ip, stable for one salt, so logs can
// group requests by visitor without recording addresses.
func HashIP(salt []byte, ip string) string {
	h, err := blake2b.New256(salt)
	if err != nil {
		// Only keys over 64 bytes fail.
		h, _ = blake2b.New256(salt[:blake2b.Size])
	}
	h.Write([]byte(ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// quietPath reports whether a request path is left out of the request log.
func quietPath(path string) bool {
	return strings.HasPrefix(path, "/static/") ||
		strings.HasPrefix(path, "/images/") ||
		strings.HasPrefix(path, "/favicon") ||
		path == "/healthz"
}

// RequestLogger tags each request with an id and logs it. Visitors are
// identified by HashIP only, and not at all when they send DNT: 1.
func RequestLogger(log *slog.Logger, salt []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)

		path := c.Request.URL.Path
		if quietPath(path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		attrs := []any{
			"request_id", id,
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		}
		if c.GetHeader("DNT") != "1" {
			attrs = append(attrs, "visitor", HashIP(salt, c.ClientIP()))
		}

		if len(c.Errors) > 0 {
			log.Error("request failed", append(attrs, "error", c.Errors.String())...)
			return
		}
		log.Info("request", attrs...)
	}
}

// SecurityHeaders backs up the per-link rel attributes with a page-wide
// referrer policy.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Next()
	}
}
