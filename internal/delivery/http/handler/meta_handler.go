package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"
)

// Version is reported by /api/health and the root index.
const Version = "1.0.0"

// MetaHandler serves the endpoints that describe the service itself.
type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

func (h *MetaHandler) RegisterRoutes(app fiber.Router) {
	if app == nil {
		return
	}

	app.Get("/", h.Index)
	app.Get("/api/health", h.Health)
}

func (h *MetaHandler) Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

func (h *MetaHandler) Index(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "interview-hub",
		"version": Version,
		"endpoints": []string{
			"GET    /api/system-prompt",
			"POST   /api/system-prompt",
			"GET    /api/user/:userId/system-prompt",
			"GET    /api/jobs",
			"POST   /api/jobs",
			"POST   /api/jobs/:id/activate",
			"DELETE /api/jobs/:id",
			"GET    /api/user/:userId/job-description",
			"GET    /api/user/:userId/interview-state",
			"POST   /api/user/:userId/complete-interview",
			"POST   /webhook/start-interview",
			"POST   /webhook/stop-interview",
			"GET    /api/stats",
			"GET    /api/health",
		},
	})
}
