package middleware

import (
	"github.com/gofiber/fiber/v3"

	"goodnotes/pkg/logger"
)

// HeaderRequestID - заголовок с идентификатором запроса.
const HeaderRequestID = "X-Request-ID"

// NewRequestIDMiddleware берет идентификатор из заголовка X-Request-ID или
// генерирует новый, кладет его в контекст запроса и в ответ.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), ctx.Get(HeaderRequestID))
		ctx.SetContext(requestCtx)

		if id, ok := logger.GetRequestID(requestCtx); ok {
			ctx.Set(HeaderRequestID, id)
		}
		return ctx.Next()
	}
}
