package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosjektbank/internal/domain"
)

func TestParseProjectPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parse/project", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(10<<20))
		f, fh, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "brief.pdf", fh.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name": "Skarnes barnehage", "location": "Skarnes", "area_m2": 1200, "extracted_images": ["/static/x.jpg"]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	draft, err := c.ParseProjectPDF(context.Background(), "brief.pdf", []byte("%PDF fake"))
	require.NoError(t, err)
	assert.Equal(t, "Skarnes barnehage", draft.Name)
	assert.Equal(t, "Skarnes", draft.Location)
	require.NotNil(t, draft.AreaM2)
	assert.Equal(t, 1200, *draft.AreaM2)
	assert.Equal(t, []string{"/static/x.jpg"}, draft.ExtractedImages)
}

func TestParseProjectPDFSingleAttemptOnFailure(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ParseProjectPDF(context.Background(), "brief.pdf", []byte("%PDF fake"))
	require.Error(t, err)
	assert.Equal(t, 1, attempts, "failed parses must not be retried")
}

func TestParseCVPDFValidatesDraft(t *testing.T) {
	body := `{"name": "Ola Nordmann", "work_experiences": [{"company": "Ø.M. Fjeld AS", "title": "Formann"}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parse/cv", r.URL.Path)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	draft, err := c.ParseCVPDF(context.Background(), "cv.pdf", []byte("%PDF fake"))
	require.NoError(t, err)
	assert.Equal(t, "Ola Nordmann", draft.Name)
	require.Len(t, draft.WorkExperiences, 1)
	assert.Equal(t, "Formann", draft.WorkExperiences[0].Title)
}

func TestParseCVPDFRejectsSchemaViolations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"title": "mangler navn"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.ParseCVPDF(context.Background(), "cv.pdf", []byte("%PDF fake"))
	require.Error(t, err)
}

func TestClientUnconfigured(t *testing.T) {
	c := NewClient("")
	assert.False(t, c.Configured())

	_, err := c.ParseProjectPDF(context.Background(), "x.pdf", nil)
	assert.Error(t, err)
	_, err = c.ParseCVPDF(context.Background(), "x.pdf", nil)
	assert.Error(t, err)
}

func TestGenerateBioDemoModeWhenUnconfigured(t *testing.T) {
	c := NewClient("")
	bio, err := c.GenerateBio(context.Background(), &domain.Employee{Name: "Ola Nordmann", Title: "Prosjektleder"})
	require.NoError(t, err)
	assert.Contains(t, bio, "DEMO-MODUS")
	assert.Contains(t, bio, "Ola Nordmann")
	assert.Contains(t, bio, "Prosjektleder")
}

func TestGenerateBioCallsService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/generate-bio", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"bio": "Ola er en erfaren prosjektleder."}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	bio, err := c.GenerateBio(context.Background(), &domain.Employee{
		Name:  "Ola Nordmann",
		Title: "Prosjektleder",
		WorkExperiences: []domain.WorkExperience{
			{Company: "Ø.M. Fjeld AS", Title: "Formann", TimeFrame: "2010-2015"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Ola er en erfaren prosjektleder.", bio)
}

func TestGenerateBioErrorsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.GenerateBio(context.Background(), &domain.Employee{Name: "Ola"})
	assert.Error(t, err)
}
