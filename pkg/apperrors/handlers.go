package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape the admin frontend expects:
// {"success": false, "error": "...", "details": ...}
type ErrorResponse struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// GinErrorHandler converts errors into HTTP responses.
type GinErrorHandler struct {
	// Debug attaches wrapped error detail to 500 responses.
	// Must stay false in production.
	Debug bool
}

var defaultHandler = &GinErrorHandler{}

// SetDebug configures the package-level handler. Called once at startup
// from the app wiring, before the router starts serving.
func SetDebug(debug bool) {
	defaultHandler.Debug = debug
}

// HandleGinError maps any error to the console's error envelope.
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	resp := ErrorResponse{
		Success: false,
		Error:   appErr.Message,
		Details: appErr.Details,
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "code", appErr.Code, "domain", appErr.Domain, "error", appErr.Error())
		if !h.Debug {
			// Hide internals from the client in production
			resp.Error = "Internal server error"
			resp.Details = nil
		} else if cause := appErr.Unwrap(); cause != nil {
			resp.Details = cause.Error()
		}
	}

	c.JSON(appErr.HTTPCode, resp)
}

// HandleError is the helper the handlers call.
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError attempts to convert an error into *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
