package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hrboard/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(
	app *fiber.App,
	auth *handlers.AuthHandler,
	health *handlers.HealthHandler,
	intake *handlers.IntakeHandler,
	roles *handlers.RolesHandler,
	candidates *handlers.CandidatesHandler,
	authMW fiber.Handler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Get("/roles", roles.List)
	v1.Post("/resume/parse", intake.Parse)

	hr := v1.Group("/hr")
	hr.Post("/login", auth.Login)

	// Recruiter dashboard, bearer token required
	hr.Get("/candidates", authMW, candidates.List)
	// static segments before /:id
	hr.Get("/candidates/top", authMW, candidates.Top)
	hr.Get("/candidates/export", authMW, candidates.Export)
	hr.Get("/candidates/:id", authMW, candidates.Get)
	hr.Patch("/candidates/:id/stage", authMW, candidates.UpdateStage)
	hr.Get("/board", authMW, candidates.Board)
	hr.Get("/stats", authMW, candidates.Stats)
}
