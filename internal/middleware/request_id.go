package middleware

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID keeps an incoming X-Request-ID or assigns a new one.
func RequestID() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
