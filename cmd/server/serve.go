package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "github.com/artem13815/hrboard/docs"

	"github.com/artem13815/hrboard/api/http"
	"github.com/artem13815/hrboard/api/http/handlers"
	"github.com/artem13815/hrboard/api/http/middleware"
	"github.com/artem13815/hrboard/api/http/presenter"
	"github.com/artem13815/hrboard/pkg/auth"
	"github.com/artem13815/hrboard/pkg/security/jwt"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	d, err := buildDeps(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer d.close()

	// Token generator
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	authUC, err := auth.NewAuthService(cfg.HRPasswordHash, cfg.HRPassword, jwtGen)
	if err != nil {
		return err
	}
	if cfg.HRPasswordHash == "" && cfg.HRPassword == "" {
		log.Warn("HR_PASSWORD_HASH and HR_PASSWORD are empty, recruiter login is disabled")
	}

	maxBytes := int64(cfg.MaxUploadMB) << 20
	app := fiber.New(fiber.Config{
		AppName: "hrboard",
		// multipart framing on top of the file itself
		BodyLimit: int(maxBytes) + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return presenter.Error(c, fe.Code, fe.Message)
			}
			return presenter.Fail(c, err, "")
		},
	})
	app.Use(middleware.RequestLogger(log.Named("http")))

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, auth.RoleRecruiter)

	// Register routes
	http.Register(app,
		handlers.NewAuthHandler(authUC),
		handlers.NewHealthHandler(d.readiness),
		handlers.NewIntakeHandler(d.intake, d.catalog, maxBytes),
		handlers.NewRolesHandler(d.catalog),
		handlers.NewCandidatesHandler(d.store, d.pipeline),
		authMW,
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("server shutdown", zap.Error(err))
		return err
	}
	return nil
}
