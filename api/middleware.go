package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request ID in both directions.
	RequestIDHeader = "X-Request-ID"
	// ContextRequestID is the key used to store the request ID in the Gin context.
	ContextRequestID = "requestID"
)

// RequestID tags each request with an ID, keeping a well-formed one sent by
// the client.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.GetHeader(RequestIDHeader))
		if err != nil {
			id = uuid.New()
		}

		c.Set(ContextRequestID, id.String())
		c.Header(RequestIDHeader, id.String())
		c.Next()
	}
}
