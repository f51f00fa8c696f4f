package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/marketpulse/internal/domain/dto"
	"github.com/guttosm/marketpulse/internal/logger"
)

// ErrorHandler converts errors attached to the gin context into a JSON error
// response after the handler chain runs.
//
// Behavior:
//   - Runs the downstream handlers first.
//   - If any handler called c.Error(...) and no response was written yet,
//     responds with 500 and the last error wrapped in dto.NewErrorResponse.
var ErrorHandler gin.HandlerFunc = func(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	last := c.Errors.Last().Err
	logger.L().Error().Err(last).
		Str("request_id", requestIDFrom(c)).
		Str("path", c.Request.URL.Path).
		Msg("request failed")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last))
	}
}
