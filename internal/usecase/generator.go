package usecase

import (
	"context"
	"fmt"
	"strings"

	"prosjektbank/internal/compose"
	"prosjektbank/internal/domain"
)

// Renderer turns composed HTML into PDF bytes. The chromedp implementation
// lives in pkg/infrastructure.
type Renderer interface {
	RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error)
}

// Generator composes a record into a page and renders it. It is stateless;
// every call receives a fresh snapshot of its inputs.
type Generator struct {
	renderer  Renderer
	assetBase string
}

func NewGenerator(r Renderer, assetBase string) *Generator {
	return &Generator{renderer: r, assetBase: assetBase}
}

func (g *Generator) render(ctx context.Context, title string, page *compose.Node) ([]byte, error) {
	html := compose.HTMLDocument(title, page)
	pdf, err := g.renderer.RenderHTMLToPDF(ctx, html)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(string(pdf), "%PDF") {
		return nil, fmt.Errorf("invalid PDF output (len=%d)", len(pdf))
	}
	return pdf, nil
}

// RenderProject produces the reference-sheet PDF for a project under the
// given layout, options and image selection.
func (g *Generator) RenderProject(ctx context.Context, p *domain.Project, o compose.Options, layout compose.LayoutID, images []string) ([]byte, error) {
	page, err := compose.AssembleProject(p, o, layout, images, g.assetBase)
	if err != nil {
		return nil, err
	}
	return g.render(ctx, "Prosjektreferanse - "+p.Name, page)
}

// RenderCV produces the CV PDF for an employee.
func (g *Generator) RenderCV(ctx context.Context, e *domain.Employee) ([]byte, error) {
	page := compose.AssembleCV(e, g.assetBase)
	return g.render(ctx, "CV - "+e.Name, page)
}

// ExportFilename derives the download name: record name with whitespace
// collapsed to underscores plus a fixed suffix.
func ExportFilename(name, suffix string) string {
	base := strings.Join(strings.Fields(name), "_")
	if base == "" {
		base = "dokument"
	}
	return base + "_" + suffix + ".pdf"
}
