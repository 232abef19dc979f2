package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	appcons "github.com/lucka79/objednavkyApl-sub002/internal/application/consumption"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/dto"
	"github.com/lucka79/objednavkyApl-sub002/internal/domain"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
)

// ConsumptionHandler triggers consumption calculations (protected).
type ConsumptionHandler struct {
	calc       *appcons.Calculator
	orch       *appcons.RangeOrchestrator
	orders     appcons.Strategy
	production appcons.Strategy
}

// NewConsumptionHandler builds the handler with both strategies.
func NewConsumptionHandler(calc *appcons.Calculator, orch *appcons.RangeOrchestrator, orders, production appcons.Strategy) *ConsumptionHandler {
	return &ConsumptionHandler{calc: calc, orch: orch, orders: orders, production: production}
}

func (h *ConsumptionHandler) strategyFor(source string) (appcons.Strategy, bool) {
	switch source {
	case "", dto.CalculationSourceProduction:
		// Default: actual production is the authoritative source.
		return h.production, true
	case dto.CalculationSourceOrders:
		return h.orders, true
	default:
		return nil, false
	}
}

// Calculate godoc
// @Summary      Compute one day's ingredient consumption
// @Description  Recomputes the date from scratch and atomically replaces its
//	persisted rows. Safe to repeat.
// @Tags         consumption
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateRequest  true  "date (YYYY-MM-DD), source (orders|production, default production)"
// @Success      200   {object}  dto.CalculateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/consumption/calculate [post]
func (h *ConsumptionHandler) Calculate(c *fiber.Ctx) error {
	var in dto.CalculateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	date, err := time.Parse(domcons.DateLayout, in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date must be YYYY-MM-DD"})
	}
	strategy, ok := h.strategyFor(in.Source)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "source must be orders or production"})
	}
	records, err := h.calc.RunDay(c.Context(), date, strategy)
	if err != nil {
		if errors.Is(err, domain.ErrCalculationInFlight) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_FLIGHT", Message: "calculation for this date is already running"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.CalculateResponse{
		Date:    date.Format(domcons.DateLayout),
		Source:  strategy.Name(),
		Records: records,
	})
}

// CalculateRange godoc
// @Summary      Compute a date range, day by day
// @Description  Runs every calendar day in [start_date, end_date] in order.
//	A failed day is reported in its result entry and does not stop the rest.
// @Tags         consumption
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalculateRangeRequest  true  "start_date, end_date (YYYY-MM-DD, inclusive), source"
// @Success      200   {array}   dto.DayResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/consumption/calculate-range [post]
func (h *ConsumptionHandler) CalculateRange(c *fiber.Ctx) error {
	var in dto.CalculateRangeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	start, err := time.Parse(domcons.DateLayout, in.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date must be YYYY-MM-DD"})
	}
	end, err := time.Parse(domcons.DateLayout, in.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date must be YYYY-MM-DD"})
	}
	strategy, ok := h.strategyFor(in.Source)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "source must be orders or production"})
	}
	results, err := h.orch.RunRange(c.Context(), start, end, strategy)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "end_date precedes start_date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.DayResult, 0, len(results))
	for _, r := range results {
		out = append(out, dto.DayResult{
			Date:    r.Date.Format(domcons.DateLayout),
			Success: r.Success,
			Records: r.Records,
			Error:   r.Err,
		})
	}
	return c.JSON(out)
}
