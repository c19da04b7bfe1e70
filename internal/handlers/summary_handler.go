package handlers

import (
	"github.com/gofiber/fiber/v2"

	"talentgate/internal/services"
)

type SummaryHandler struct {
	sheets services.SheetsService
}

func NewSummaryHandler(sheets services.SheetsService) *SummaryHandler {
	return &SummaryHandler{sheets: sheets}
}

// HandleGetSummary handles GET /summary with aggregate screening stats
// from the spreadsheet sink.
func (h *SummaryHandler) HandleGetSummary(c *fiber.Ctx) error {
	if h.sheets == nil || !h.sheets.IsConnected() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Google Sheets is not connected",
		})
	}

	summary, err := h.sheets.GetSummary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch summary",
		})
	}

	return c.JSON(summary)
}
