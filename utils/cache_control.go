package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// CacheControl sets the cache-control header for every response it wraps.
// Zero or negative seconds means no-cache; all pages here are dynamic.
func CacheControl(seconds int) gin.HandlerFunc {
	value := "no-cache"
	if seconds > 0 {
		value = "private, max-age=" + strconv.Itoa(seconds)
	}
	return func(c *gin.Context) {
		c.Header("cache-control", value)
		c.Next()
	}
}
