package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header name for request ID.
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestIDFromContext returns the request ID set by RequestID.
func RequestIDFromContext(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}

// RequestID extracts or generates a request ID for each request. If
// the X-Request-ID header is present its value is reused, otherwise a
// new UUID is generated. The ID is echoed on the response headers.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Header(RequestIDHeader, requestID)
		ctx.Set(requestIDKey, requestID)
		ctx.Next()
	}
}
