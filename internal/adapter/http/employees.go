package http

import (
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"prosjektbank/internal/domain"
	"prosjektbank/internal/model"
)

func (h *Handler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.employees.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(employees)
}

func (h *Handler) GetEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}
	e, err := h.employees.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(e)
}

func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	var e domain.Employee
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	if e.Name == "" {
		return badRequest(c, "name is required")
	}
	if err := h.employees.Create(c.Context(), &e); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (h *Handler) UpdateEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}
	var e domain.Employee
	if err := c.BodyParser(&e); err != nil {
		return badRequest(c, "invalid payload")
	}
	e.ID = id
	if err := h.employees.Update(c.Context(), &e); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(e)
}

func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}
	if err := h.employees.Delete(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}

// GenerateBio asks the parse service for a profile text based on the
// employee's stored experience. The text is returned to the form, not saved;
// the user reviews it first.
func (h *Handler) GenerateBio(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}
	e, err := h.employees.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}

	bio, err := h.parser.GenerateBio(c.Context(), e)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Kunne ikke tolke filen"})
	}
	return c.JSON(fiber.Map{"bio": bio})
}

// UploadCV parses an uploaded CV PDF into a draft for the employee form. The
// file itself is kept under static/uploaded_cvs and its link returned with
// the draft; when an employee_id form field is present, the link is recorded
// on that employee right away.
func (h *Handler) UploadCV(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
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

	draft, err := h.parser.ParseCVPDF(c.Context(), fh.Filename, content)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Kunne ikke tolke filen"})
	}

	dir := filepath.Join(h.staticDir, "uploaded_cvs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return respondErr(c, err)
	}
	name := storedName(fh.Filename)
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		return respondErr(c, err)
	}
	link := "/static/uploaded_cvs/" + name

	if raw := c.FormValue("employee_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "invalid employee id")
		}
		if err := h.employees.SetCVLink(c.Context(), id, link); err != nil {
			return respondErr(c, err)
		}
	}

	return c.JSON(struct {
		*model.CVDraft
		CVLink string `json:"cv_link"`
	}{draft, link})
}
