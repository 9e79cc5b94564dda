package handler

import (
	"interview-hub/internal/delivery/http/middleware"
	"interview-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc *usecase.StatsUsecase
}

func NewStatsHandler(uc *usecase.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) RegisterRoutes(api fiber.Router) {
	if api == nil {
		return
	}

	api.Get("/stats", h.Totals)
}

func (h *StatsHandler) Totals(c fiber.Ctx) error {
	s, err := h.uc.Totals(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "Failed to compute stats", err)
	}
	return c.JSON(s)
}
