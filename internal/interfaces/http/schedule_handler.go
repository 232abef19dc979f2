package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucka79/objednavkyApl-sub002/internal/application/dto"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/schedule"
)

// ScheduleHandler serves the engine's evidence sources read-only: orders and
// production batches by date (protected).
type ScheduleHandler struct {
	uc *schedule.UseCase
}

// NewScheduleHandler builds the schedule handler.
func NewScheduleHandler(uc *schedule.UseCase) *ScheduleHandler {
	return &ScheduleHandler{uc: uc}
}

// Orders godoc
// @Summary      Orders for one date
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *ScheduleHandler) Orders(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date query param must be YYYY-MM-DD"})
	}
	out, err := h.uc.OrdersForDate(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Productions godoc
// @Summary      Production batches for one date
// @Tags         schedule
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200  {array}   dto.ProductionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productions [get]
func (h *ScheduleHandler) Productions(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date query param must be YYYY-MM-DD"})
	}
	out, err := h.uc.ProductionsForDate(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
