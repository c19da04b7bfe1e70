package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentgate/internal/models"
)

type stubScreeningRepo struct {
	created []*models.Screening
}

func (s *stubScreeningRepo) Create(screening *models.Screening) error {
	s.created = append(s.created, screening)
	return nil
}

func (s *stubScreeningRepo) FindByID(id uuid.UUID) (*models.Screening, error) {
	return nil, fmt.Errorf("screening not found")
}

func (s *stubScreeningRepo) UpdateStatus(uuid.UUID, models.ScreeningStatus) error { return nil }

func (s *stubScreeningRepo) UpdateResult(uuid.UUID, *models.ScreeningResult, string) error {
	return nil
}

func (s *stubScreeningRepo) UpdateError(uuid.UUID, string) error { return nil }

func (s *stubScreeningRepo) FindPendingJobs(int) ([]models.Screening, error) { return nil, nil }

type stubDocRepo struct {
	doc *models.Document
}

func (s *stubDocRepo) Create(*models.Document) error { return nil }

func (s *stubDocRepo) FindByID(id uuid.UUID) (*models.Document, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("document not found")
	}
	return s.doc, nil
}

type stubWorker struct {
	enqueued []uuid.UUID
}

func (s *stubWorker) Start(ctx context.Context) {}

func (s *stubWorker) EnqueueJob(id uuid.UUID) { s.enqueued = append(s.enqueued, id) }

func (s *stubWorker) Stop() {}

func newScreenTestApp(repo *stubScreeningRepo, docs *stubDocRepo, worker *stubWorker, modelReady bool) *fiber.App {
	handler := NewScreenHandler(repo, docs, worker, modelReady)
	app := fiber.New()
	app.Post("/screen", handler.HandleScreen)
	return app
}

func postScreen(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/screen", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestHandleScreenRejectsEmptyResume(t *testing.T) {
	repo := &stubScreeningRepo{}
	worker := &stubWorker{}
	app := newScreenTestApp(repo, &stubDocRepo{}, worker, true)

	resp := postScreen(t, app, `{"resume_text": "   ", "job_requirements": "Job Title: Engineer"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if len(repo.created) != 0 || len(worker.enqueued) != 0 {
		t.Error("empty resume must be rejected before any screening is created")
	}
}

func TestHandleScreenRejectsEmptyJobRequirements(t *testing.T) {
	repo := &stubScreeningRepo{}
	worker := &stubWorker{}
	app := newScreenTestApp(repo, &stubDocRepo{}, worker, true)

	resp := postScreen(t, app, `{"resume_text": "Jane Doe, engineer", "job_requirements": ""}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if len(worker.enqueued) != 0 {
		t.Error("empty job requirements must not enqueue a screening")
	}
}

func TestHandleScreenRejectsMissingCredentials(t *testing.T) {
	repo := &stubScreeningRepo{}
	worker := &stubWorker{}
	app := newScreenTestApp(repo, &stubDocRepo{}, worker, false)

	resp := postScreen(t, app, `{"resume_text": "Jane Doe", "job_requirements": "Job Title: Engineer"}`)

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", resp.StatusCode)
	}
	if len(worker.enqueued) != 0 {
		t.Error("missing credentials must not enqueue a screening")
	}
}

func TestHandleScreenQueuesValidRequest(t *testing.T) {
	repo := &stubScreeningRepo{}
	worker := &stubWorker{}
	app := newScreenTestApp(repo, &stubDocRepo{}, worker, true)

	resp := postScreen(t, app, `{"resume_text": "Jane Doe, backend engineer", "job_requirements": "Job Title: Engineer"}`)

	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}

	var body models.ScreenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Status != string(models.StatusQueued) {
		t.Errorf("unexpected status %q", body.Status)
	}
	if len(repo.created) != 1 || len(worker.enqueued) != 1 {
		t.Errorf("expected one queued screening, got %d created / %d enqueued",
			len(repo.created), len(worker.enqueued))
	}
}

func TestHandleScreenUsesUploadedDocumentText(t *testing.T) {
	docID := uuid.New()
	repo := &stubScreeningRepo{}
	worker := &stubWorker{}
	docs := &stubDocRepo{doc: &models.Document{ID: docID, ExtractedText: "Jane Doe, engineer"}}
	app := newScreenTestApp(repo, docs, worker, true)

	body := fmt.Sprintf(`{"document_id": %q, "job_requirements": "Job Title: Engineer"}`, docID)
	resp := postScreen(t, app, body)

	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.StatusCode)
	}
	if len(repo.created) != 1 {
		t.Fatal("expected one screening record")
	}
	if repo.created[0].ResumeText != "Jane Doe, engineer" {
		t.Errorf("screening must carry the extracted document text, got %q", repo.created[0].ResumeText)
	}
	if repo.created[0].ResumeDocumentID == nil || *repo.created[0].ResumeDocumentID != docID {
		t.Error("screening must reference the source document")
	}
}
