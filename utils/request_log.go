package utils

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const RequestIDKey = "request_id"

// RequestLogMiddleware tags every request with an id and logs its outcome.
func RequestLogMiddleware(c *gin.Context) {
	requestID := uuid.NewString()
	c.Set(RequestIDKey, requestID)
	start := time.Now()
	c.Next()
	logrus.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"duration":   time.Since(start),
	}).Info("request")
}
