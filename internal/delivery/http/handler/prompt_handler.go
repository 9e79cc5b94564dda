package handler

import (
	"errors"

	"interview-hub/internal/delivery/http/middleware"
	"interview-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PromptHandler struct {
	uc *usecase.PromptUsecase
}

type setPromptRequest struct {
	SystemPrompt string `json:"systemPrompt"`
}

func NewPromptHandler(uc *usecase.PromptUsecase) *PromptHandler {
	return &PromptHandler{uc: uc}
}

func (h *PromptHandler) RegisterRoutes(api fiber.Router) {
	if api == nil {
		return
	}

	api.Get("/system-prompt", h.Get)
	api.Post("/system-prompt", h.Set)
	// The prompt is global; the per-user route exists for callers that
	// template the path with a userId.
	api.Get("/user/:userId/system-prompt", h.Get)
}

func (h *PromptHandler) Get(c fiber.Ctx) error {
	p, err := h.uc.Get(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to read system prompt", err)
	}
	return c.JSON(fiber.Map{"systemPrompt": p})
}

func (h *PromptHandler) Set(c fiber.Ctx) error {
	var req setPromptRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	if err := h.uc.Set(c.Context(), req.SystemPrompt); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "systemPrompt is required", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to save system prompt", err)
	}
	return c.JSON(fiber.Map{"message": "System prompt updated"})
}
