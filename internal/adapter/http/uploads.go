package http

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"prosjektbank/internal/domain"
)

func storedName(original string) string {
	safe := strings.NewReplacer(" ", "_", "/", "_").Replace(original)
	return strings.ReplaceAll(uuid.New().String(), "-", "") + "_" + safe
}

func attachmentType(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return "image"
	case contentType == "application/pdf":
		return "pdf"
	case strings.Contains(contentType, "word"), strings.Contains(contentType, "document"):
		return "word"
	}
	return "file"
}

// UploadAttachment stores a document under static/project_attachments and
// records it on the project.
func (h *Handler) UploadAttachment(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid project id")
	}
	if _, err := h.projects.Get(c.Context(), projectID); err != nil {
		return respondErr(c, err)
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}

	dir := filepath.Join(h.staticDir, "project_attachments")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return respondErr(c, err)
	}
	name := storedName(fh.Filename)
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return respondErr(c, err)
	}

	att := domain.ProjectAttachment{
		ProjectID:  projectID,
		Filename:   fh.Filename,
		FilePath:   "/static/project_attachments/" + name,
		FileType:   attachmentType(fh.Header.Get("Content-Type")),
		UploadDate: time.Now().Format(time.RFC3339),
	}
	if err := h.projects.AddAttachment(c.Context(), &att); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(att)
}

// DeleteAttachment removes the database row and best-effort deletes the
// stored file.
func (h *Handler) DeleteAttachment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid attachment id")
	}
	att, err := h.projects.GetAttachment(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}

	if rel, ok := strings.CutPrefix(att.FilePath, "/static/"); ok {
		local := filepath.Join(h.staticDir, rel)
		if err := os.Remove(local); err != nil && !os.IsNotExist(err) {
			slog.Warn("could not remove attachment file", "path", local, "error", err)
		}
	}

	if err := h.projects.DeleteAttachment(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(att)
}

// ParseProjectUpload sends an uploaded project brief to the parse service and
// returns the extracted draft fields for form prefill.
func (h *Handler) ParseProjectUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if fh.Header.Get("Content-Type") != "application/pdf" && !strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf") {
		return badRequest(c, "file must be a PDF")
	}

	f, err := fh.Open()
	if err != nil {
		return respondErr(c, err)
	}
	defer f.Close()
	content, err := io.ReadAll(f)
	if err != nil {
		return respondErr(c, err)
	}

	draft, err := h.parser.ParseProjectPDF(c.Context(), fh.Filename, content)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Kunne ikke tolke filen"})
	}
	return c.JSON(draft)
}

// UploadImage stores a project image and returns its public URL.
func (h *Handler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return badRequest(c, "file must be an image")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext == "" {
		ext = ".jpg"
	}
	name := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "") + ext

	dir := filepath.Join(h.staticDir, "uploaded_images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return respondErr(c, err)
	}
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"url": "/static/uploaded_images/" + name})
}
