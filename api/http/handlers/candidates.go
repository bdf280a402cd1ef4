package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hrboard/api/http/presenter"
	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/export"
	"github.com/artem13815/hrboard/pkg/pipeline"
)

// CandidatesHandler serves the recruiter dashboard.
type CandidatesHandler struct {
	store    candidate.UseCase
	pipeline *pipeline.Service
}

func NewCandidatesHandler(store candidate.UseCase, pipe *pipeline.Service) *CandidatesHandler {
	return &CandidatesHandler{store: store, pipeline: pipe}
}

type candidatesResponse struct {
	Candidates []candidate.Record `json:"candidates"`
}

// List
// @Summary  List candidates
// @Tags     candidates
// @Security BearerAuth
// @Produce  json
// @Param    role query string false "Role key or all"
// @Success  200 {object} candidatesResponse
// @Failure  401 {object} presenter.ErrorResponse
// @Failure  500 {object} presenter.ErrorResponse
// @Router   /hr/candidates [get]
func (h *CandidatesHandler) List(c *fiber.Ctx) error {
	items, err := h.store.List(c.Context(), roleFilter(c))
	if err != nil {
		return presenter.Fail(c, err, "")
	}
	return presenter.JSON(c, http.StatusOK, candidatesResponse{Candidates: items})
}

// Top returns the best scored candidates across all roles.
// @Summary  Top candidates
// @Tags     candidates
// @Security BearerAuth
// @Produce  json
// @Param    limit query int false "Max items (1..200)" default(10)
// @Success  200 {object} candidatesResponse
// @Router   /hr/candidates/top [get]
func (h *CandidatesHandler) Top(c *fiber.Ctx) error {
	items, err := h.store.Top(c.Context(), parseLimit(c, 10))
	if err != nil {
		return presenter.Fail(c, err, "")
	}
	return presenter.JSON(c, http.StatusOK, candidatesResponse{Candidates: items})
}

// Get
// @Summary  Get candidate
// @Tags     candidates
// @Security BearerAuth
// @Produce  json
// @Param    id path int true "Candidate id"
// @Success  200 {object} candidate.Record
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /hr/candidates/{id} [get]
func (h *CandidatesHandler) Get(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "invalid candidate id")
	}
	rec, err := h.store.Get(c.Context(), id)
	if err != nil {
		return presenter.Fail(c, err, "")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

type stageRequest struct {
	OnboardingStage string `json:"onboardingStage" validate:"required"`
}

// UpdateStage переносит кандидата в другую колонку доски.
// @Summary  Move candidate to a stage
// @Tags     candidates
// @Security BearerAuth
// @Accept   json
// @Produce  json
// @Param    id    path int          true "Candidate id"
// @Param    input body stageRequest true "new stage: new, reviewing or decision"
// @Success  200 {object} map[string]any
// @Failure  400 {object} presenter.ErrorResponse
// @Failure  404 {object} presenter.ErrorResponse
// @Router   /hr/candidates/{id}/stage [patch]
func (h *CandidatesHandler) UpdateStage(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, "invalid candidate id", presenter.CodeStageUpdateFailed)
	}
	var req stageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, "invalid JSON payload", presenter.CodeStageUpdateFailed)
	}
	if err := validate.Struct(req); err != nil {
		return presenter.ErrorWithCode(c, http.StatusBadRequest, "onboardingStage is required", presenter.CodeStageUpdateFailed)
	}
	stage, err := candidate.ParseStage(req.OnboardingStage)
	if err != nil {
		return presenter.Fail(c, err, presenter.CodeStageUpdateFailed)
	}
	if err := h.pipeline.Transition(c.Context(), id, stage); err != nil {
		return presenter.Fail(c, err, presenter.CodeStageUpdateFailed)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"id":      id,
		"stage":   stage,
		"message": "Candidate onboarding stage updated",
	})
}

// Board
// @Summary  Pipeline board
// @Tags     candidates
// @Security BearerAuth
// @Produce  json
// @Param    role query string false "Role key or all"
// @Success  200 {object} map[string][]pipeline.Column
// @Router   /hr/board [get]
func (h *CandidatesHandler) Board(c *fiber.Ctx) error {
	board := pipeline.NewBoard(h.pipeline, roleFilter(c))
	if err := board.Refresh(c.Context()); err != nil {
		return presenter.Fail(c, err, "")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"columns": board.Columns()})
}

// Stats
// @Summary  Dashboard statistics
// @Tags     candidates
// @Security BearerAuth
// @Produce  json
// @Param    role query string false "Role key or all"
// @Success  200 {object} candidate.Stats
// @Router   /hr/stats [get]
func (h *CandidatesHandler) Stats(c *fiber.Ctx) error {
	st, err := h.store.Stats(c.Context(), roleFilter(c))
	if err != nil {
		return presenter.Fail(c, err, "")
	}
	return presenter.JSON(c, http.StatusOK, st)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export выгружает кандидатов в xlsx.
// @Summary  Export candidates
// @Tags     candidates
// @Security BearerAuth
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param    role query string false "Role key or all"
// @Success  200 {file} file
// @Router   /hr/candidates/export [get]
func (h *CandidatesHandler) Export(c *fiber.Ctx) error {
	items, err := h.store.List(c.Context(), roleFilter(c))
	if err != nil {
		return presenter.Fail(c, err, "")
	}
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, items); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to build export")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="candidates-%s.xlsx"`, time.Now().UTC().Format("20060102")))
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
