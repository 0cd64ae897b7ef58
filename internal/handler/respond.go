package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Taichi-iskw/videominer/internal/errors"
)

// ErrorResponse sends a standardized error response
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondError maps err to its HTTP status and writes it.
// Internal failures are logged with their cause and answered with a generic message.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		ErrorResponse(c, status, "internal server error")
		return
	}

	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		ErrorResponse(c, status, appErr.Message)
		return
	}
	ErrorResponse(c, status, err.Error())
}

// statusFor returns the HTTP status for the code carried by err
func statusFor(err error) int {
	switch errors.CodeOf(err) {
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeForbidden:
		return http.StatusForbidden
	case errors.CodeInvalidArg:
		return http.StatusBadRequest
	case errors.CodeConflict:
		return http.StatusConflict
	case errors.CodeDependency:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// bindJSON decodes the request body into obj and answers 400 when it is invalid
func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		respondError(c, errors.Wrap(err, errors.CodeInvalidArg, err.Error()))
		return false
	}
	return true
}
