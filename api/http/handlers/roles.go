package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hrboard/api/http/presenter"
	"github.com/artem13815/hrboard/pkg/jobdesc"
)

// RoleCatalog is the part of jobdesc.Catalog the HTTP layer reads.
type RoleCatalog interface {
	Roles() []jobdesc.Role
	Get(key string) (jobdesc.Role, bool)
}

type RolesHandler struct {
	catalog RoleCatalog
}

func NewRolesHandler(catalog RoleCatalog) *RolesHandler {
	return &RolesHandler{catalog: catalog}
}

// List returns the roles a resume can be evaluated for.
// @Summary List job roles
// @Tags    roles
// @Produce json
// @Success 200 {object} map[string][]jobdesc.Role
// @Router  /roles [get]
func (h *RolesHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{"roles": h.catalog.Roles()})
}
