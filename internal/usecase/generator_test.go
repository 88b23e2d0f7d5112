package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosjektbank/internal/compose"
	"prosjektbank/internal/domain"
)

// staticRenderer returns fixed bytes, recording the HTML it received.
type staticRenderer struct {
	out      []byte
	err      error
	lastHTML string
}

func (r *staticRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	r.lastHTML = html
	return r.out, r.err
}

var pdfBytes = []byte("%PDF-1.4 fake content")

func TestRenderProjectProducesPDF(t *testing.T) {
	r := &staticRenderer{out: pdfBytes}
	gen := NewGenerator(r, "http://localhost:8000")

	p := &domain.Project{ID: 1, Name: "Testprosjekt", Location: "Oslo"}
	out, err := gen.RenderProject(context.Background(), p, compose.DefaultOptions(), compose.LayoutStandard, nil)
	require.NoError(t, err)
	assert.Equal(t, pdfBytes, out)
	assert.Contains(t, r.lastHTML, "Testprosjekt")
	assert.Contains(t, r.lastHTML, "<!DOCTYPE html>")
}

func TestRenderProjectRejectsUnknownLayout(t *testing.T) {
	gen := NewGenerator(&staticRenderer{out: pdfBytes}, "")

	_, err := gen.RenderProject(context.Background(), &domain.Project{Name: "X"},
		compose.DefaultOptions(), compose.LayoutID("nope"), nil)
	require.ErrorIs(t, err, compose.ErrUnknownLayout)
}

func TestRenderRejectsNonPDFOutput(t *testing.T) {
	gen := NewGenerator(&staticRenderer{out: []byte("<html>error page</html>")}, "")

	_, err := gen.RenderCV(context.Background(), &domain.Employee{Name: "Ola"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid PDF output")
}

func TestExportFilename(t *testing.T) {
	cases := []struct {
		name, suffix, want string
	}{
		{"Kongsvinger ungdomsskole", "referanse", "Kongsvinger_ungdomsskole_referanse.pdf"},
		{"  Skarnes   barnehage  ", "referanse", "Skarnes_barnehage_referanse.pdf"},
		{"Ola Nordmann", "cv", "Ola_Nordmann_cv.pdf"},
		{"", "referanse", "dokument_referanse.pdf"},
		{"   ", "cv", "dokument_cv.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExportFilename(tc.name, tc.suffix))
	}
}
