package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hrboard/api/http/presenter"
	"github.com/artem13815/hrboard/pkg/auth"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type loginRequest struct {
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login выдаёт рекрутеру токен для доступа к дашборду.
// @Summary Recruiter login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /hr/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validate.Struct(req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "password is required")
	}

	result, err := h.useCase.Login(c.Context(), req.Password)
	if err != nil {
		return presenter.Fail(c, err, "")
	}
	return presenter.JSON(c, http.StatusOK, loginResponse{Token: result.Token})
}
