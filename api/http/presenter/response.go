package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hrboard/pkg/auth"
	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/evaluation"
	"github.com/artem13815/hrboard/pkg/resume"
)

// Error codes let the dashboard tell a failed stage move from a failed upload.
const (
	CodeIntakeFailed      = "intake_failed"
	CodeStageUpdateFailed = "stage_update_failed"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

func ErrorWithCode(c *fiber.Ctx, status int, message, code string) error {
	return JSON(c, status, ErrorResponse{Message: message, Code: code})
}

// Fail renders err with the status Status picks for it.
func Fail(c *fiber.Ctx, err error, code string) error {
	status := Status(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	return ErrorWithCode(c, status, msg, code)
}

// Status maps domain errors to HTTP status codes.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, resume.ErrUnsupportedFile),
		errors.Is(err, candidate.ErrInvalidStage):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, candidate.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, resume.ErrExtraction),
		errors.Is(err, resume.ErrMalformedInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, evaluation.ErrOracleEmptyResponse),
		errors.Is(err, evaluation.ErrOracleMalformedResponse),
		errors.Is(err, evaluation.ErrOracleUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, evaluation.ErrConfiguration),
		errors.Is(err, auth.ErrLoginDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
