package utils

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"

	"github.com/palpite-club/pool-backend/app/shared/attr"
)

// MiddlewareHelpers builds the router middleware shared by every module.
type MiddlewareHelpers interface {
	CommonMetadataMiddleware(module string) message.HandlerMiddleware
}

type middlewareHelper struct{}

func NewMiddlewareHelper() MiddlewareHelpers {
	return middlewareHelper{}
}

// CommonMetadataMiddleware stamps the handling module onto message metadata
// and mirrors the correlation ID into the message context so services can
// log it without touching the message.
func (middlewareHelper) CommonMetadataMiddleware(module string) message.HandlerMiddleware {
	return func(h message.HandlerFunc) message.HandlerFunc {
		return func(msg *message.Message) ([]*message.Message, error) {
			msg.Metadata.Set("handled_by", module)
			if correlationID := middleware.MessageCorrelationID(msg); correlationID != "" {
				msg.SetContext(attr.WithCorrelationID(msg.Context(), correlationID))
			}
			return h(msg)
		}
	}
}
