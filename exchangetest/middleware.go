package exchangetest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/gdax/logger"
)

// record appends every request to the server's history.
func (s *Server) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Query:  c.Request.URL.Query(),
			Header: c.Request.Header.Clone(),
		})
		s.mu.Unlock()
		c.Next()
	}
}

// inject answers with a queued fault for the request path, if any.
func (s *Server) inject() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		f, ok := s.faults[c.Request.URL.Path]
		status := 0
		if ok && f.remaining > 0 {
			f.remaining--
			status = f.status
		}
		s.mu.Unlock()

		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"message": http.StatusText(status)})
			return
		}
		c.Next()
	}
}

func recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("panic recovered", logger.Fields(
					logger.FieldError, fmt.Sprintf("%v", err),
					logger.FieldMethod, c.Request.Method,
					logger.FieldTarget, c.Request.URL.Path,
				))
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
		}()
		c.Next()
	}
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		target := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			target += "?" + q
		}
		fields := logger.MergeWithDuration(logger.Fields(
			logger.FieldMethod, c.Request.Method,
			logger.FieldTarget, target,
			logger.FieldStatus, status,
		), time.Since(start))

		switch {
		case status >= 500:
			log.Error("request completed", fields)
		case status >= 400:
			log.Warn("request completed", fields)
		default:
			log.Debug("request completed", fields)
		}
	}
}
