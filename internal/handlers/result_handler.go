package handlers

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentgate/internal/models"
	"talentgate/internal/repositories"
)

type ResultHandler struct {
	screeningRepo repositories.ScreeningRepository
}

func NewResultHandler(screeningRepo repositories.ScreeningRepository) *ResultHandler {
	return &ResultHandler{
		screeningRepo: screeningRepo,
	}
}

// HandleGetResult handles GET /result/:id. For completed screenings the
// stored envelope is returned whole, so the response doubles as the JSON
// export of the run.
func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	idParam := c.Params("id")
	screeningID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid screening ID format",
		})
	}

	screening, err := h.screeningRepo.FindByID(screeningID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Screening not found",
		})
	}

	response := models.ResultResponse{
		ID:     screening.ID.String(),
		Status: string(screening.Status),
	}

	if screening.Status == models.StatusCompleted && screening.ResultJSON != nil {
		var result models.ScreeningResult
		if err := json.Unmarshal([]byte(*screening.ResultJSON), &result); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Stored result is unreadable",
			})
		}
		response.Result = &result
	}

	if screening.Status == models.StatusFailed {
		response.ErrorMessage = screening.ErrorMessage
	}

	return c.JSON(response)
}
