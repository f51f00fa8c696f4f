package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketpulse/internal/domain/dto"
	"github.com/guttosm/marketpulse/internal/logger"
)

// RecoveryMiddleware recovers from panics raised while handling a request,
// logs the stack trace, and returns a standardized JSON error response.
//
// Behavior:
//   - Uses defer to catch any panic that occurs during request handling.
//   - Logs the recovered value and stack trace through the structured logger.
//   - Responds with 500 and dto.NewErrorResponse so clients always get the
//     same error envelope.
//
// Returns:
//   - gin.HandlerFunc: A middleware function for use in the gin router.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.L().Error().
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				errResponse := dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}
