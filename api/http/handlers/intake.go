package handlers

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hrboard/api/http/presenter"
	"github.com/artem13815/hrboard/pkg/intake"
)

// Intaker runs one resume through extraction, evaluation and save.
type Intaker interface {
	Intake(ctx context.Context, up intake.Upload, roleKey string) (intake.Result, error)
}

type IntakeHandler struct {
	svc      Intaker
	roles    RoleCatalog
	maxBytes int64
}

func NewIntakeHandler(svc Intaker, roles RoleCatalog, maxBytes int64) *IntakeHandler {
	return &IntakeHandler{svc: svc, roles: roles, maxBytes: maxBytes}
}

type intakeResponse struct {
	intake.Result
	Message string `json:"message"`
}

// Parse принимает резюме, оценивает его под выбранную вакансию и сохраняет карточку.
// @Summary Parse and evaluate a resume
// @Tags    resume
// @Accept  mpfd
// @Produce json
// @Param   file    formData file   true "Resume file (pdf, docx, odt, txt)"
// @Param   jobRole formData string true "Role key, see /roles"
// @Success 200 {object} intakeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 422 {object} presenter.ErrorResponse "Резюме не удалось разобрать"
// @Failure 502 {object} presenter.ErrorResponse "Модель оценки недоступна или ответила некорректно"
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /resume/parse [post]
func (h *IntakeHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, "file is required", presenter.CodeIntakeFailed)
	}
	role := strings.TrimSpace(c.FormValue("jobRole"))
	if role == "" {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, "jobRole is required", presenter.CodeIntakeFailed)
	}
	r, ok := h.roles.Get(role)
	if !ok {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, fmt.Sprintf("unknown jobRole %q", role), presenter.CodeIntakeFailed)
	}
	role = r.Key

	file, err := fh.Open()
	if err != nil {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, "failed to open uploaded file", presenter.CodeIntakeFailed)
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, err.Error(), presenter.CodeIntakeFailed)
	}

	res, err := h.svc.Intake(c.Context(), intake.Upload{Filename: fh.Filename, Data: data}, role)
	if err != nil {
		return presenter.Fail(c, err, presenter.CodeIntakeFailed)
	}
	return presenter.JSON(c, http.StatusOK, intakeResponse{
		Result:  res,
		Message: "Resume parsed, evaluated, and saved successfully",
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
