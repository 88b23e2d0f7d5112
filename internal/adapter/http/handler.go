package http

import (
	"context"
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"prosjektbank/internal/adapter/repository"
	"prosjektbank/internal/domain"
	"prosjektbank/internal/model"
	"prosjektbank/internal/usecase"
)

// ProjectsStore is what the handlers need from the projects repository.
type ProjectsStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int) error

	AddTeamMember(ctx context.Context, m *domain.TeamMember) error
	UpdateTeamMember(ctx context.Context, m *domain.TeamMember) error
	DeleteTeamMember(ctx context.Context, id int) error

	AddAttachment(ctx context.Context, a *domain.ProjectAttachment) error
	GetAttachment(ctx context.Context, id int) (*domain.ProjectAttachment, error)
	DeleteAttachment(ctx context.Context, id int) error

	ListTypes(ctx context.Context) ([]string, error)
	CreateType(ctx context.Context, name string) error
	ListTags(ctx context.Context) ([]string, error)
}

// EmployeesStore is what the handlers need from the employees repository.
type EmployeesStore interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, id int) (*domain.Employee, error)
	Create(ctx context.Context, e *domain.Employee) error
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int) error
	SetCVLink(ctx context.Context, id int, link string) error
}

// ParseService extracts structured drafts from uploaded PDFs and writes bio
// texts. The real implementation lives in pkg/ai.
type ParseService interface {
	ParseProjectPDF(ctx context.Context, filename string, content []byte) (*domain.ProjectDraft, error)
	ParseCVPDF(ctx context.Context, filename string, content []byte) (*model.CVDraft, error)
	GenerateBio(ctx context.Context, e *domain.Employee) (string, error)
}

type Handler struct {
	projects  ProjectsStore
	employees EmployeesStore
	parser    ParseService
	gen       *usecase.Generator
	hub       *usecase.Hub
	staticDir string
}

func NewHandler(projects ProjectsStore, employees EmployeesStore, parser ParseService, gen *usecase.Generator, hub *usecase.Hub, staticDir string) *Handler {
	return &Handler{
		projects:  projects,
		employees: employees,
		parser:    parser,
		gen:       gen,
		hub:       hub,
		staticDir: staticDir,
	}
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// respondErr maps repository errors to status codes. Anything unexpected is
// logged and hidden behind a generic 500.
func respondErr(c *fiber.Ctx, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	slog.Error("request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
