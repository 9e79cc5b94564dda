package handler

import (
	"errors"
	"strconv"

	"interview-hub/internal/delivery/http/middleware"
	"interview-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

type createJobRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(api fiber.Router) {
	if api == nil {
		return
	}

	api.Get("/jobs", h.List)
	api.Post("/jobs", h.Create)
	api.Post("/jobs/:id/activate", h.Activate)
	api.Delete("/jobs/:id", h.Delete)
	api.Get("/user/:userId/job-description", h.ActiveDescription)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	jobs, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to read jobs", err)
	}
	return c.JSON(jobs)
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", err)
	}

	j, err := h.uc.Create(c.Context(), usecase.CreateJobInput{
		Title:       req.Title,
		Company:     req.Company,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "title, company and description are required", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to save job", err)
	}
	return c.Status(fiber.StatusCreated).JSON(j)
}

func (h *JobHandler) Activate(c fiber.Ctx) error {
	// A malformed id behaves like a nonexistent one: every job ends up
	// deactivated, which is the documented edge case.
	id, _ := strconv.ParseInt(c.Params("id"), 10, 64)

	if err := h.uc.Activate(c.Context(), id); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to activate job", err)
	}
	return c.JSON(fiber.Map{"message": "Job activated"})
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	id, _ := strconv.ParseInt(c.Params("id"), 10, 64)

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to delete job", err)
	}
	return c.JSON(fiber.Map{"message": "Job deleted"})
}

func (h *JobHandler) ActiveDescription(c fiber.Ctx) error {
	desc, err := h.uc.ActiveDescription(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to read jobs", err)
	}
	return c.JSON(fiber.Map{"jobDescription": desc})
}
