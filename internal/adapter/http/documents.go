package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"prosjektbank/internal/compose"
	"prosjektbank/internal/usecase"
)

func optionsFromQuery(c *fiber.Ctx) compose.Options {
	def := compose.DefaultOptions()
	return compose.Options{
		ShowEconomy:     c.QueryBool("show_economy", def.ShowEconomy),
		ShowContact:     c.QueryBool("show_contact", def.ShowContact),
		ShowDescription: c.QueryBool("show_description", def.ShowDescription),
		ShowRole:        c.QueryBool("show_role", def.ShowRole),
		ShowRelevance:   c.QueryBool("show_relevance", def.ShowRelevance),
		ShowChallenges:  c.QueryBool("show_challenges", def.ShowChallenges),
	}
}

func imagesFromQuery(c *fiber.Ctx) []string {
	raw := c.Query("images")
	if raw == "" {
		return nil
	}
	var images []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			images = append(images, s)
		}
	}
	return images
}

func sendPDF(c *fiber.Ctx, pdf []byte, filename, disposition string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, disposition+`; filename="`+filename+`"`)
	return c.Send(pdf)
}

// ExportReferencePDF renders a project reference sheet synchronously and
// returns it as a download.
func (h *Handler) ExportReferencePDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	layout := compose.LayoutID(c.Query("layout", string(compose.LayoutStandard)))
	if !layout.Valid() {
		return badRequest(c, "unknown layout")
	}

	p, err := h.projects.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}

	pdf, err := h.gen.RenderProject(c.Context(), p, optionsFromQuery(c), layout, imagesFromQuery(c))
	if err != nil {
		return respondErr(c, err)
	}
	return sendPDF(c, pdf, usecase.ExportFilename(p.Name, "referanse"), "attachment")
}

// ExportCVPDF renders an employee CV synchronously and returns it as a
// download.
func (h *Handler) ExportCVPDF(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid employee id")
	}
	e, err := h.employees.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}

	pdf, err := h.gen.RenderCV(c.Context(), e)
	if err != nil {
		return respondErr(c, err)
	}
	return sendPDF(c, pdf, usecase.ExportFilename(e.Name, "cv"), "attachment")
}

type previewReq struct {
	Token   string           `json:"token"`
	Layout  string           `json:"layout"`
	Options *compose.Options `json:"options"`
	Images  []string         `json:"images"`
}

// StartPreview (re)starts generation for a preview session. Posting again
// with the same token supersedes the in-flight generation; whichever request
// is newest wins.
func (h *Handler) StartPreview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "invalid project id")
	}

	var req previewReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}

	layout := compose.LayoutStandard
	if req.Layout != "" {
		layout = compose.LayoutID(req.Layout)
		if !layout.Valid() {
			return badRequest(c, "unknown layout")
		}
	}
	opts := compose.DefaultOptions()
	if req.Options != nil {
		opts = *req.Options
	}

	p, err := h.projects.Get(c.Context(), id)
	if err != nil {
		return respondErr(c, err)
	}

	token := req.Token
	session, ok := h.hub.Get(token)
	if !ok {
		token, session = h.hub.Open()
	}

	seq := session.Start(usecase.Request{
		Project: p,
		Layout:  layout,
		Options: opts,
		Images:  req.Images,
	})
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"token": token, "seq": seq})
}

// GetPreview polls a session: 202 while generating, the PDF inline once
// ready, 502 with the localized message on failure.
func (h *Handler) GetPreview(c *fiber.Ctx) error {
	session, ok := h.hub.Get(c.Params("token"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown preview token"})
	}

	state, artifact, message := session.Snapshot()
	switch state {
	case usecase.StateReady:
		return sendPDF(c, artifact.PDF, artifact.Filename, "inline")
	case usecase.StateFailed:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": message})
	default:
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "generating"})
	}
}

// DropPreview tears a session down and releases its artifact.
func (h *Handler) DropPreview(c *fiber.Ctx) error {
	h.hub.Drop(c.Params("token"))
	return c.SendStatus(fiber.StatusNoContent)
}
