package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentgate/internal/models"
	"talentgate/internal/repositories"
	"talentgate/internal/services"
)

type ScreenHandler struct {
	screeningRepo repositories.ScreeningRepository
	docRepo       repositories.DocumentRepository
	worker        services.Worker
	modelReady    bool
}

func NewScreenHandler(
	screeningRepo repositories.ScreeningRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
	modelReady bool,
) *ScreenHandler {
	return &ScreenHandler{
		screeningRepo: screeningRepo,
		docRepo:       docRepo,
		worker:        worker,
		modelReady:    modelReady,
	}
}

// HandleScreen handles POST /screen. Empty resume text, empty job
// requirements, and missing model credentials are all rejected here,
// before any model call is made.
func (h *ScreenHandler) HandleScreen(c *fiber.Ctx) error {
	var req models.ScreenRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if !h.modelReady {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Gemini API key is not configured",
		})
	}

	resumeText := strings.TrimSpace(req.ResumeText)
	var documentID *uuid.UUID

	if resumeText == "" && req.DocumentID != "" {
		docID, err := uuid.Parse(req.DocumentID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid document_id format",
			})
		}

		doc, err := h.docRepo.FindByID(docID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Resume document not found",
			})
		}

		resumeText = strings.TrimSpace(doc.ExtractedText)
		documentID = &docID
	}

	if resumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please upload a resume or enter resume text",
		})
	}

	if strings.TrimSpace(req.JobRequirements) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please enter job requirements",
		})
	}

	screening := &models.Screening{
		ID:               uuid.New(),
		ResumeDocumentID: documentID,
		ResumeText:       resumeText,
		JobRequirements:  req.JobRequirements,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.screeningRepo.Create(screening); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create screening job",
		})
	}

	h.worker.EnqueueJob(screening.ID)

	return c.Status(fiber.StatusAccepted).JSON(models.ScreenResponse{
		ID:     screening.ID.String(),
		Status: string(models.StatusQueued),
	})
}
