package serverutils

import (
	"errors"
	"os"

	"notes-manager/internal/pkg/apperror"
	"notes-manager/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates errors bubbling out of handlers into the
// response envelope. Unexpected errors become a generic 500; the underlying
// detail is exposed only outside production.
func ErrorHandlerMiddleware(sysLogger logger.ILogger) fiber.Handler {
	isProd := os.Getenv("GO_ENV") == "production"

	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		if appErr, ok := apperror.As(err); ok {
			detail := ""
			if appErr.Err != nil && !isProd {
				detail = appErr.Err.Error()
			}
			if appErr.Status >= fiber.StatusInternalServerError {
				sysLogger.Error("http", appErr.Message, map[string]interface{}{
					"path":  ctx.Path(),
					"error": appErr.Error(),
				})
			}
			return ctx.Status(appErr.Status).JSON(ErrorResponse(appErr.Message, detail))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message, ""))
		}

		sysLogger.Error("http", "Unhandled error", map[string]interface{}{
			"path":  ctx.Path(),
			"error": err.Error(),
		})
		detail := ""
		if !isProd {
			detail = err.Error()
		}
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse("Internal server error", detail))
	}
}
