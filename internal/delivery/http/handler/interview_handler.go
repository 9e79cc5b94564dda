package handler

import (
	"errors"

	"interview-hub/internal/delivery/http/middleware"
	"interview-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type InterviewHandler struct {
	uc *usecase.InterviewUsecase
}

type startInterviewRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

type stopInterviewRequest struct {
	UserID string `json:"userId"`
}

func NewInterviewHandler(uc *usecase.InterviewUsecase) *InterviewHandler {
	return &InterviewHandler{uc: uc}
}

// RegisterRoutes wires the /api routes and the webhook routes the external
// chat workflow calls.
func (h *InterviewHandler) RegisterRoutes(api, webhook fiber.Router) {
	if api != nil {
		api.Get("/user/:userId/interview-state", h.State)
		api.Post("/user/:userId/complete-interview", h.Complete)
	}
	if webhook != nil {
		webhook.Post("/start-interview", h.Start)
		webhook.Post("/stop-interview", h.Stop)
	}
}

func (h *InterviewHandler) State(c fiber.Ctx) error {
	st, err := h.uc.State(c.Context(), c.Params("userId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to read interview state", err)
	}
	return c.JSON(st)
}

func (h *InterviewHandler) Start(c fiber.Ctx) error {
	var req startInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	if _, err := h.uc.Start(c.Context(), req.UserID, req.UserName); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to save interview state", err)
	}
	return c.JSON(fiber.Map{"message": "Interview started", "interviewActive": true})
}

func (h *InterviewHandler) Stop(c fiber.Ctx) error {
	var req stopInterviewRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	if _, err := h.uc.Stop(c.Context(), req.UserID); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to save interview state", err)
	}
	return c.JSON(fiber.Map{"message": "Interview stopped", "interviewActive": false})
}

func (h *InterviewHandler) Complete(c fiber.Ctx) error {
	if _, err := h.uc.Complete(c.Context(), c.Params("userId")); err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "userId is required", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to save interview state", err)
	}
	return c.JSON(fiber.Map{"message": "Interview completed"})
}
