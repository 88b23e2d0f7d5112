package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prosjektbank/internal/adapter/repository"
	"prosjektbank/internal/domain"
	"prosjektbank/internal/model"
	"prosjektbank/internal/usecase"
)

type stubProjects struct {
	byID    map[int]*domain.Project
	types   []string
	tags    []string
	created *domain.Project
	deleted []int
}

func (s *stubProjects) List(context.Context) ([]domain.Project, error) {
	var out []domain.Project
	for _, p := range s.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubProjects) Get(_ context.Context, id int) (*domain.Project, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubProjects) Create(_ context.Context, p *domain.Project) error {
	p.ID = 100
	s.created = p
	return nil
}

func (s *stubProjects) Update(_ context.Context, p *domain.Project) error {
	if _, ok := s.byID[p.ID]; !ok {
		return repository.ErrNotFound
	}
	s.byID[p.ID] = p
	return nil
}

func (s *stubProjects) Delete(_ context.Context, id int) error {
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubProjects) AddTeamMember(_ context.Context, m *domain.TeamMember) error {
	m.ID = 11
	return nil
}
func (s *stubProjects) UpdateTeamMember(context.Context, *domain.TeamMember) error { return nil }
func (s *stubProjects) DeleteTeamMember(context.Context, int) error                { return nil }

func (s *stubProjects) AddAttachment(_ context.Context, a *domain.ProjectAttachment) error {
	a.ID = 21
	return nil
}
func (s *stubProjects) GetAttachment(context.Context, int) (*domain.ProjectAttachment, error) {
	return nil, repository.ErrNotFound
}
func (s *stubProjects) DeleteAttachment(context.Context, int) error { return nil }

func (s *stubProjects) ListTypes(context.Context) ([]string, error) { return s.types, nil }
func (s *stubProjects) CreateType(_ context.Context, name string) error {
	s.types = append(s.types, name)
	return nil
}
func (s *stubProjects) ListTags(context.Context) ([]string, error) { return s.tags, nil }

type stubEmployees struct {
	byID    map[int]*domain.Employee
	deleted []int
	cvLinks map[int]string
}

func (s *stubEmployees) List(context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range s.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (s *stubEmployees) Get(_ context.Context, id int) (*domain.Employee, error) {
	if e, ok := s.byID[id]; ok {
		return e, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubEmployees) Create(_ context.Context, e *domain.Employee) error {
	e.ID = 200
	return nil
}

func (s *stubEmployees) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := s.byID[e.ID]; !ok {
		return repository.ErrNotFound
	}
	s.byID[e.ID] = e
	return nil
}

func (s *stubEmployees) Delete(_ context.Context, id int) error {
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.byID, id)
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubEmployees) SetCVLink(_ context.Context, id int, link string) error {
	if _, ok := s.byID[id]; !ok {
		return repository.ErrNotFound
	}
	if s.cvLinks == nil {
		s.cvLinks = map[int]string{}
	}
	s.cvLinks[id] = link
	return nil
}

type stubParser struct {
	projectDraft *domain.ProjectDraft
	cvDraft      *model.CVDraft
	bio          string
	err          error
}

func (s *stubParser) ParseProjectPDF(context.Context, string, []byte) (*domain.ProjectDraft, error) {
	return s.projectDraft, s.err
}
func (s *stubParser) ParseCVPDF(context.Context, string, []byte) (*model.CVDraft, error) {
	return s.cvDraft, s.err
}
func (s *stubParser) GenerateBio(context.Context, *domain.Employee) (string, error) {
	return s.bio, s.err
}

type instantRenderer struct{}

func (instantRenderer) RenderHTMLToPDF(context.Context, string) ([]byte, error) {
	return []byte("%PDF-1.4 test"), nil
}

func newTestApp(t *testing.T, parser *stubParser) (*fiber.App, *stubProjects, *stubEmployees) {
	t.Helper()

	projects := &stubProjects{
		byID: map[int]*domain.Project{
			1: {ID: 1, Name: "Kongsvinger ungdomsskole", Location: "Kongsvinger"},
		},
		types: []string{"Bolig", "Skole"},
		tags:  []string{"breeam"},
	}
	employees := &stubEmployees{
		byID: map[int]*domain.Employee{
			1: {ID: 1, Name: "Ola Nordmann", Title: "Prosjektleder"},
		},
	}
	if parser == nil {
		parser = &stubParser{}
	}

	gen := usecase.NewGenerator(instantRenderer{}, "http://localhost:8000")
	h := NewHandler(projects, employees, parser, gen, usecase.NewHub(gen), t.TempDir())

	app := fiber.New()
	h.Register(app)
	return app, projects, employees
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *nethttp.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	for _, path := range []string{"/", "/health"} {
		resp := doJSON(t, app, "GET", path, nil)
		assert.Equal(t, 200, resp.StatusCode)
	}
}

func TestGetProject(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "GET", "/projects/1", nil)
	require.Equal(t, 200, resp.StatusCode)
	var p domain.Project
	decodeBody(t, resp, &p)
	assert.Equal(t, "Kongsvinger ungdomsskole", p.Name)

	resp = doJSON(t, app, "GET", "/projects/99", nil)
	assert.Equal(t, 404, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/projects/abc", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreateProject(t *testing.T) {
	app, projects, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/projects/", fiber.Map{"location": "Oslo"})
	assert.Equal(t, 400, resp.StatusCode)
	assert.Nil(t, projects.created)

	resp = doJSON(t, app, "POST", "/projects/", fiber.Map{"name": "Nytt bygg", "tags": []string{"nybygg"}})
	require.Equal(t, 201, resp.StatusCode)
	var p domain.Project
	decodeBody(t, resp, &p)
	assert.Equal(t, 100, p.ID)
	require.NotNil(t, projects.created)
	assert.Equal(t, "Nytt bygg", projects.created.Name)
}

func TestDeleteProject(t *testing.T) {
	app, projects, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "DELETE", "/projects/1", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []int{1}, projects.deleted)

	resp = doJSON(t, app, "DELETE", "/projects/1", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestAddTeamMemberValidation(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/projects/99/team", fiber.Map{"employee_id": 1, "role": "Formann"})
	assert.Equal(t, 404, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/projects/1/team", fiber.Map{"employee_id": 1})
	assert.Equal(t, 400, resp.StatusCode)

	resp = doJSON(t, app, "POST", "/projects/1/team", fiber.Map{"employee_id": 1, "role": "Formann"})
	require.Equal(t, 201, resp.StatusCode)
	var m domain.TeamMember
	decodeBody(t, resp, &m)
	assert.Equal(t, 11, m.ID)
	assert.Equal(t, 1, m.ProjectID)
}

func TestTypesAndTags(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "GET", "/types/", nil)
	require.Equal(t, 200, resp.StatusCode)
	var types []string
	decodeBody(t, resp, &types)
	assert.Equal(t, []string{"Bolig", "Skole"}, types)

	resp = doJSON(t, app, "POST", "/types/", fiber.Map{"name": "Hotell"})
	assert.Equal(t, 201, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/tags/", nil)
	require.Equal(t, 200, resp.StatusCode)
	var tags []string
	decodeBody(t, resp, &tags)
	assert.Equal(t, []string{"breeam"}, tags)
}

func TestGenerateBio(t *testing.T) {
	app, _, _ := newTestApp(t, &stubParser{bio: "Ola er en erfaren prosjektleder."})

	resp := doJSON(t, app, "POST", "/employees/1/generate-bio", nil)
	require.Equal(t, 200, resp.StatusCode)
	var out map[string]string
	decodeBody(t, resp, &out)
	assert.Equal(t, "Ola er en erfaren prosjektleder.", out["bio"])
}

func TestGenerateBioParseServiceDown(t *testing.T) {
	app, _, _ := newTestApp(t, &stubParser{err: fmt.Errorf("connection refused")})

	resp := doJSON(t, app, "POST", "/employees/1/generate-bio", nil)
	require.Equal(t, 502, resp.StatusCode)
	var out map[string]string
	decodeBody(t, resp, &out)
	assert.Equal(t, "Kunne ikke tolke filen", out["error"])
}

func multipartPDF(t *testing.T, field, filename string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	hdr := make(map[string][]string)
	hdr["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename)}
	hdr["Content-Type"] = []string{"application/pdf"}
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write([]byte("%PDF fake"))
	require.NoError(t, err)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadCV(t *testing.T) {
	app, _, _ := newTestApp(t, &stubParser{cvDraft: &model.CVDraft{Name: "Ola Nordmann"}})

	body, contentType := multipartPDF(t, "file", "cv.pdf", nil)
	req := httptest.NewRequest("POST", "/employees/upload-cv", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var out struct {
		model.CVDraft
		CVLink string `json:"cv_link"`
	}
	decodeBody(t, resp, &out)
	assert.Equal(t, "Ola Nordmann", out.Name)
	assert.True(t, strings.HasPrefix(out.CVLink, "/static/uploaded_cvs/"), "got %q", out.CVLink)
}

func TestUploadCVRecordsLinkOnEmployee(t *testing.T) {
	app, _, employees := newTestApp(t, &stubParser{cvDraft: &model.CVDraft{Name: "Ola Nordmann"}})

	body, contentType := multipartPDF(t, "file", "cv.pdf", map[string]string{"employee_id": "1"})
	req := httptest.NewRequest("POST", "/employees/upload-cv", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	resp.Body.Close()

	link, ok := employees.cvLinks[1]
	require.True(t, ok, "cv link should have been recorded")
	assert.True(t, strings.HasPrefix(link, "/static/uploaded_cvs/"), "got %q", link)

	// An unknown employee id turns the upload into a 404.
	body, contentType = multipartPDF(t, "file", "cv.pdf", map[string]string{"employee_id": "99"})
	req = httptest.NewRequest("POST", "/employees/upload-cv", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDeleteEmployee(t *testing.T) {
	app, _, employees := newTestApp(t, nil)

	resp := doJSON(t, app, "DELETE", "/employees/1", nil)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, []int{1}, employees.deleted)

	resp = doJSON(t, app, "DELETE", "/employees/1", nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestParseProjectUpload(t *testing.T) {
	app, _, _ := newTestApp(t, &stubParser{projectDraft: &domain.ProjectDraft{Name: "Skarnes barnehage"}})

	body, contentType := multipartPDF(t, "file", "brief.pdf", nil)
	req := httptest.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var draft domain.ProjectDraft
	decodeBody(t, resp, &draft)
	assert.Equal(t, "Skarnes barnehage", draft.Name)
}

func TestExportReferencePDF(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "GET", "/projects/1/reference.pdf?layout=standard_2", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Kongsvinger_ungdomsskole_referanse.pdf")

	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "%PDF"))
}

func TestExportReferencePDFRejectsUnknownLayout(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	resp := doJSON(t, app, "GET", "/projects/1/reference.pdf?layout=sidebar", nil)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestExportCVPDF(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "GET", "/employees/1/cv.pdf", nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "Ola_Nordmann_cv.pdf")
}

func TestPreviewFlow(t *testing.T) {
	app, _, _ := newTestApp(t, nil)

	resp := doJSON(t, app, "POST", "/projects/1/preview", fiber.Map{"layout": "gallery"})
	require.Equal(t, 202, resp.StatusCode)
	var started struct {
		Token string `json:"token"`
		Seq   uint64 `json:"seq"`
	}
	decodeBody(t, resp, &started)
	require.NotEmpty(t, started.Token)
	assert.Equal(t, uint64(1), started.Seq)

	require.Eventually(t, func() bool {
		r := doJSON(t, app, "GET", "/preview/"+started.Token, nil)
		defer r.Body.Close()
		return r.StatusCode == 200
	}, 5*time.Second, 20*time.Millisecond)

	resp = doJSON(t, app, "GET", "/preview/"+started.Token, nil)
	require.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inline")

	// Restarting with the same token bumps the sequence number.
	resp = doJSON(t, app, "POST", "/projects/1/preview", fiber.Map{"token": started.Token, "layout": "standard"})
	require.Equal(t, 202, resp.StatusCode)
	var restarted struct {
		Token string `json:"token"`
		Seq   uint64 `json:"seq"`
	}
	decodeBody(t, resp, &restarted)
	assert.Equal(t, started.Token, restarted.Token)
	assert.Equal(t, uint64(2), restarted.Seq)

	resp = doJSON(t, app, "DELETE", "/preview/"+started.Token, nil)
	assert.Equal(t, 204, resp.StatusCode)

	resp = doJSON(t, app, "GET", "/preview/"+started.Token, nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestPreviewRejectsUnknownLayout(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	resp := doJSON(t, app, "POST", "/projects/1/preview", fiber.Map{"layout": "sidebar"})
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPreviewUnknownTokenIs404(t *testing.T) {
	app, _, _ := newTestApp(t, nil)
	resp := doJSON(t, app, "GET", "/preview/ukjent", nil)
	assert.Equal(t, 404, resp.StatusCode)
}
