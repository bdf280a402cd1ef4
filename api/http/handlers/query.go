package handlers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hrboard/pkg/candidate"
)

var validate = validator.New()

const maxLimit = 200

// parseLimit reads ?limit=, falling back to def for missing or out-of-range values.
func parseLimit(c *fiber.Ctx, def int) int {
	if v := strings.TrimSpace(c.Query("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= maxLimit {
			return n
		}
	}
	return def
}

func roleFilter(c *fiber.Ctx) candidate.Filter {
	return candidate.Filter{AppliedRole: c.Query("role")}
}

func parseID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
