package response

import (
	"errors"
	"log"
	"net/http"

	"agrirent/pkg/apperror"
	"github.com/gin-gonic/gin"
)

var debug bool

// SetDebug controls whether internal error detail is echoed to callers.
// Wired once at startup from the app config.
func SetDebug(enabled bool) {
	debug = enabled
}

// Every endpoint answers with this envelope. Error paths always set
// Success=false; Data and Errors are mutually exclusive in practice.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// Success writes a success envelope with the given status and payload.
func Success(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error maps err onto the envelope convention. Validation errors become
// 422 with a field error map; internal errors hide their detail unless
// APP_DEBUG is set.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	var validationErr *apperror.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(code, Envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErr.Fields,
		})
		return
	}

	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
		env := Envelope{
			Success: false,
			Message: "An unexpected error occurred. Please try again.",
		}
		if debug {
			env.Error = err.Error()
		}
		c.JSON(code, env)
		return
	}

	c.JSON(code, Envelope{
		Success: false,
		Message: err.Error(),
	})
}

// ErrorWithMessage overrides the error's own text, keeping the mapped status.
func ErrorWithMessage(c *gin.Context, err error, message string) {
	c.JSON(apperror.MapErrorToStatus(err), Envelope{
		Success: false,
		Message: message,
	})
}
