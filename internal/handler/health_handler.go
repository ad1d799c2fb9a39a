package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ead-tools/teachers-tool-api/internal/config"
	"github.com/ead-tools/teachers-tool-api/internal/utils"
)

// RootResponse describes the service banner returned at "/".
type RootResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	Environment string `json:"environment"`
}

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// Root returns a handler that reports the service name, version and environment.
func Root(cfg config.Config) fiber.Handler {
	payload := RootResponse{
		Message:     cfg.AppName + " API",
		Version:     cfg.AppVersion,
		Status:      "running",
		Environment: cfg.AppEnv,
	}

	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, payload)
	}
}

// HealthCheck returns a liveness handler.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, HealthResponse{Status: "healthy"})
	}
}
