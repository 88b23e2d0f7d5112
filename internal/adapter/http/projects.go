package http

import (
	"github.com/gofiber/fiber/v2"

	"prosjektbank/internal/domain"
)

func (h *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projects.List(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(projects)
}

func (h *Handler) GetProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid project id")
	}
	p, err := h.projects.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var p domain.Project
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	if p.Name == "" {
		return badRequest(c, "name is required")
	}
	if err := h.projects.Create(c.Context(), &p); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid project id")
	}
	var p domain.Project
	if err := c.BodyParser(&p); err != nil {
		return badRequest(c, "invalid payload")
	}
	p.ID = id
	if err := h.projects.Update(c.Context(), &p); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(p)
}

func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid project id")
	}
	if err := h.projects.Delete(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}

func (h *Handler) AddTeamMember(c *fiber.Ctx) error {
	projectID, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid project id")
	}
	if _, err := h.projects.Get(c.Context(), projectID); err != nil {
		return respondErr(c, err)
	}

	var m domain.TeamMember
	if err := c.BodyParser(&m); err != nil {
		return badRequest(c, "invalid payload")
	}
	if m.EmployeeID == 0 || m.Role == "" {
		return badRequest(c, "employee_id and role are required")
	}
	m.ProjectID = projectID

	if err := h.projects.AddTeamMember(c.Context(), &m); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(m)
}

func (h *Handler) UpdateTeamMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid team member id")
	}
	var m domain.TeamMember
	if err := c.BodyParser(&m); err != nil {
		return badRequest(c, "invalid payload")
	}
	m.ID = id
	if err := h.projects.UpdateTeamMember(c.Context(), &m); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(m)
}

func (h *Handler) DeleteTeamMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid team member id")
	}
	if err := h.projects.DeleteTeamMember(c.Context(), id); err != nil {
		return respondErr(c, err)
	}
	return c.JSON(fiber.Map{"deleted": id})
}

func (h *Handler) ListTypes(c *fiber.Ctx) error {
	types, err := h.projects.ListTypes(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(types)
}

func (h *Handler) CreateType(c *fiber.Ctx) error {
	var body struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&body); err != nil || body.Name == "" {
		return badRequest(c, "name is required")
	}
	if err := h.projects.CreateType(c.Context(), body.Name); err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"name": body.Name})
}

func (h *Handler) ListTags(c *fiber.Ctx) error {
	tags, err := h.projects.ListTags(c.Context())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(tags)
}
