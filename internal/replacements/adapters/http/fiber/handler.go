package fiber

import (
	"context"
	"errors"
	"net/http"

	"replacement-metrics-service/internal/replacements/core/domain"
	"replacement-metrics-service/internal/replacements/core/usecase"

	"github.com/gofiber/fiber/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type QueryReplacementsUseCase interface {
	List(ctx context.Context) ([]domain.ReplacementRecord, error)
	BySerialNumber(ctx context.Context, serialNumber string) (*domain.ReplacementRecord, error)
	ByFaultySerial(ctx context.Context, faultySerialNumber string) ([]domain.ReplacementRecord, error)
}

type GetDashboardUseCase interface {
	Execute(ctx context.Context) (*domain.Dashboard, error)
	FromCSV(ctx context.Context, text string) (*domain.Dashboard, error)
}

type WorkbookExporter interface {
	Export(records []domain.ReplacementRecord) ([]byte, error)
}

type ReplacementHandler struct {
	queryUC     QueryReplacementsUseCase
	dashboardUC GetDashboardUseCase
	exporter    WorkbookExporter
}

func NewReplacementHandler(queryUC QueryReplacementsUseCase, dashboardUC GetDashboardUseCase, exporter WorkbookExporter) *ReplacementHandler {
	return &ReplacementHandler{queryUC: queryUC, dashboardUC: dashboardUC, exporter: exporter}
}

// Register mounts the handler. The export route precedes the serial
// lookup so "export" is never read as a serial number.
func (h *ReplacementHandler) Register(app fiber.Router) {
	app.Get("/check", h.Check)

	api := app.Group("/api")
	api.Get("/replacements", h.ListReplacements)
	api.Get("/replacements/export", h.ExportReplacements)
	api.Get("/replacements/faulty/:faultySerialNumber", h.GetByFaultySerial)
	api.Get("/replacements/:serialNumber", h.GetBySerialNumber)
	api.Get("/dashboard", h.GetDashboard)
	api.Post("/dashboard/csv", h.DashboardFromCSV)
}

// Check godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} CheckResponse
// @Router /check [get]
func (h *ReplacementHandler) Check(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(CheckResponse{Message: "Running Successfully"})
}

// ListReplacements godoc
// @Summary List replacements
// @Description Returns every stored replacement in canonical form, newest first
// @Tags Replacements
// @Produce json
// @Success 200 {array} ReplacementResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/replacements [get]
func (h *ReplacementHandler) ListReplacements(c *fiber.Ctx) error {
	records, err := h.queryUC.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toReplacementResponses(records))
}

// ExportReplacements godoc
// @Summary Export replacements as XLSX
// @Tags Replacements
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /api/replacements/export [get]
func (h *ReplacementHandler) ExportReplacements(c *fiber.Ctx) error {
	records, err := h.queryUC.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}

	b, err := h.exporter.Export(records)
	if err != nil {
		return writeError(c, err)
	}

	c.Attachment("replacements.xlsx")
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Status(http.StatusOK).Send(b)
}

// GetBySerialNumber godoc
// @Summary Find a replacement by replacement serial number
// @Tags Replacements
// @Produce json
// @Param serialNumber path string true "Replacement serial number"
// @Success 200 {object} ReplacementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/replacements/{serialNumber} [get]
func (h *ReplacementHandler) GetBySerialNumber(c *fiber.Ctx) error {
	rec, err := h.queryUC.BySerialNumber(c.UserContext(), c.Params("serialNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toReplacementResponse(*rec))
}

// GetByFaultySerial godoc
// @Summary Replacement history of a faulty unit
// @Tags Replacements
// @Produce json
// @Param faultySerialNumber path string true "Faulty serial number"
// @Success 200 {array} ReplacementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/replacements/faulty/{faultySerialNumber} [get]
func (h *ReplacementHandler) GetByFaultySerial(c *fiber.Ctx) error {
	records, err := h.queryUC.ByFaultySerial(c.UserContext(), c.Params("faultySerialNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toReplacementResponses(records))
}

// GetDashboard godoc
// @Summary Dashboard over stored replacements
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard [get]
func (h *ReplacementHandler) GetDashboard(c *fiber.Ctx) error {
	d, err := h.dashboardUC.Execute(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

// DashboardFromCSV godoc
// @Summary Dashboard over an uploaded CSV export
// @Description Parses the CSV body (three title lines, positional columns) without touching storage
// @Tags Dashboard
// @Accept plain
// @Produce json
// @Param request body string true "CSV export"
// @Success 200 {object} DashboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/csv [post]
func (h *ReplacementHandler) DashboardFromCSV(c *fiber.Ctx) error {
	d, err := h.dashboardUC.FromCSV(c.UserContext(), string(c.Body()))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(toDashboardResponse(d))
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidSerial),
		errors.Is(err, usecase.ErrEmptyCSV):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, usecase.ErrNoRecords):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Error:   "no_records",
			Message: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}
}
