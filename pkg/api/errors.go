package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gearbox-dev/gearbox/pkg/gear"
	"github.com/gearbox-dev/gearbox/pkg/models"
	"github.com/gearbox-dev/gearbox/pkg/queue"
	"github.com/gearbox-dev/gearbox/pkg/vault"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// abortError writes the mapped status and error body for err.
func abortError(c *gin.Context, err error) {
	status, body := mapError(err)
	c.AbortWithStatusJSON(status, body)
}

// abortBadRequest writes a 400 with the given message.
func abortBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorBody{
		Code:    models.CodeValidationFailed,
		Message: message,
	})
}

// mapError translates domain errors to HTTP statuses. Unknown errors
// become opaque 500s; the detail stays in the server log.
func mapError(err error) (int, errorBody) {
	var coded *models.CodedError
	if errors.As(err, &coded) {
		return statusForCode(coded.Code), errorBody{Code: coded.Code, Message: coded.Message}
	}

	switch {
	case errors.Is(err, queue.ErrNotFound),
		errors.Is(err, gear.ErrNotFound),
		errors.Is(err, vault.ErrSecretNotFound):
		return http.StatusNotFound, errorBody{Code: models.CodeNotFound, Message: err.Error()}
	case errors.Is(err, queue.ErrInvalidTransition),
		errors.Is(err, gear.ErrAlreadyInstalled),
		errors.Is(err, vault.ErrExists):
		return http.StatusConflict, errorBody{Code: models.CodeConflict, Message: err.Error()}
	case errors.Is(err, vault.ErrLocked), errors.Is(err, vault.ErrNotInitialized):
		return http.StatusConflict, errorBody{Code: models.CodeVaultLocked, Message: err.Error()}
	case errors.Is(err, vault.ErrInvalidPassword):
		return http.StatusUnauthorized, errorBody{Code: models.CodeSecretAccessDenied, Message: err.Error()}
	case errors.Is(err, vault.ErrAccessDenied):
		return http.StatusForbidden, errorBody{Code: models.CodeSecretAccessDenied, Message: err.Error()}
	}

	var scanErr *gear.ScanError
	if errors.As(err, &scanErr) {
		return http.StatusUnprocessableEntity, errorBody{
			Code:    models.CodeValidationFailed,
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, errorBody{
		Code:    models.CodeHandlerFailed,
		Message: "internal error",
	}
}

func statusForCode(code string) int {
	switch code {
	case models.CodeNotFound, models.CodeGearNotFound:
		return http.StatusNotFound
	case models.CodeConflict:
		return http.StatusConflict
	case models.CodeValidationFailed, models.CodeInvalidEnvelope:
		return http.StatusBadRequest
	case models.CodeApprovalDenied, models.CodeSecretAccessDenied:
		return http.StatusForbidden
	case models.CodeApprovalTimeout:
		return http.StatusGone
	case models.CodeVaultLocked:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
