package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// GinErrorHandler renders errors as ErrorResponse bodies.
type GinErrorHandler struct {
	Debug bool
}

func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "code", appErr.Code, "error", appErr.Unwrap(), "path", c.FullPath())
	}

	body := *appErr
	if !h.Debug && appErr.HTTPCode >= 500 {
		body.Details = nil
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: &body})
}

var defaultHandler = &GinErrorHandler{}

// SetDebug toggles detail exposure for 5xx responses.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func HandleValidationError(c *gin.Context, err error) {
	HandleError(c, ValidationError(gin.H{"details": err.Error()}))
}
