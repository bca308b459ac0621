package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/VPLOPES/brasil-macro-data/internal/domain/dto"
	"github.com/VPLOPES/brasil-macro-data/internal/logger"
)

// ErrorHandler converts errors attached to the Gin context during request
// handling into a standardized 500 JSON response, for handlers that use
// c.Error() instead of writing a response themselves.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If errors were collected and no response body was written yet,
//     logs the last error and responds with dto.ErrorResponse.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.ErrorHandler)
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().
		Err(err).
		Str("path", c.Request.URL.Path).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError logs the error and aborts the request with a
// standardized JSON body and the given status code.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	logger.L().Error().
		Err(err).
		Int("status", status).
		Str("path", c.Request.URL.Path).
		Msg(message)

	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
