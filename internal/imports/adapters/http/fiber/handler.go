package fiber

import (
	"context"
	"errors"
	"net/http"

	"replacement-metrics-service/internal/imports/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type ImportCSVUseCase interface {
	Execute(ctx context.Context, text string) (usecase.ImportResult, error)
}

type ImportHandler struct {
	importUC ImportCSVUseCase
}

func NewImportHandler(importUC ImportCSVUseCase) *ImportHandler {
	return &ImportHandler{importUC: importUC}
}

// ImportReplacements godoc
// @Summary Import a replacement CSV export
// @Description Stores every usable row; rows already stored are reported as duplicates
// @Tags Replacements
// @Accept plain
// @Produce json
// @Param request body string true "CSV export"
// @Success 201 {object} ImportResponse
// @Success 200 {object} ImportResponse "Nothing new"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/replacements/import [post]
func (h *ImportHandler) ImportReplacements(c *fiber.Ctx) error {
	res, err := h.importUC.Execute(c.UserContext(), string(c.Body()))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyImport):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_import",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	resp := ImportResponse{
		BatchID:    res.BatchID,
		Created:    res.Created,
		Duplicates: res.Duplicates,
		Skipped:    res.Skipped,
	}
	if res.Created == 0 {
		return c.Status(http.StatusOK).JSON(resp)
	}
	return c.Status(http.StatusCreated).JSON(resp)
}
