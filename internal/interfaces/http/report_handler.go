package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/lucka79/objednavkyApl-sub002/internal/application/dto"
	"github.com/lucka79/objednavkyApl-sub002/internal/application/report"
	domcons "github.com/lucka79/objednavkyApl-sub002/internal/domain/consumption"
)

// ReportHandler serves the consumption read endpoints (protected).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler builds the report handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

func parseDateQuery(c *fiber.Ctx, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(domcons.DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Daily godoc
// @Summary      Persisted consumption for one date
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  dto.DailyConsumptionSummary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/consumption/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date query param must be YYYY-MM-DD"})
	}
	out, err := h.uc.Daily(c.Context(), date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Monthly per-ingredient rollup
// @Description  Groups persisted consumption by calendar month over
//	[start, end]. Defaults to the last six months.
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "YYYY-MM-DD"
// @Param        end    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.MonthlyConsumptionSummary
// @Router       /api/consumption/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	end, ok := parseDateQuery(c, "end")
	if !ok {
		end = time.Now().UTC()
	}
	start, ok := parseDateQuery(c, "start")
	if !ok {
		start = end.AddDate(0, -6, 0)
	}
	out, err := h.uc.Monthly(c.Context(), start, end)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CurrentMonth godoc
// @Summary      Running-month totals for purchase planning
// @Description  Refreshes the running month from production actuals, then
//	returns per-ingredient totals. Serves stored data when the refresh fails.
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CurrentMonthConsumption
// @Router       /api/consumption/current-month [get]
func (h *ReportHandler) CurrentMonth(c *fiber.Ctx) error {
	out, err := h.uc.CurrentMonth(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// DeleteDaily godoc
// @Summary      Delete one date's consumption rows
// @Tags         consumption
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "YYYY-MM-DD"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/consumption/daily [delete]
func (h *ReportHandler) DeleteDaily(c *fiber.Ctx) error {
	date, ok := parseDateQuery(c, "date")
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date query param must be YYYY-MM-DD"})
	}
	if err := h.uc.DeleteDay(c.Context(), date); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "daily consumption deleted"})
}
