package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"prosjektbank/internal/domain"
	"prosjektbank/internal/model"
)

// Client calls the parse service that extracts structured data from uploaded
// PDFs and writes bio texts. Calls are single-attempt: the user is waiting on
// an upload dialog, so failing fast beats retrying.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether a parse service URL was provided. Without one
// the bio endpoint falls back to demo mode and parsing is unavailable.
func (c *Client) Configured() bool { return c.baseURL != "" }

func (c *Client) postPDF(ctx context.Context, path, filename string, content []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("parse service returned status %d", resp.StatusCode)
	}
	return body, nil
}

// ParseProjectPDF sends a project brief to the parse service and returns the
// extracted draft fields.
func (c *Client) ParseProjectPDF(ctx context.Context, filename string, content []byte) (*domain.ProjectDraft, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("parse service is not configured")
	}
	body, err := c.postPDF(ctx, "/parse/project", filename, content)
	if err != nil {
		return nil, err
	}
	var draft domain.ProjectDraft
	if err := json.Unmarshal(body, &draft); err != nil {
		return nil, fmt.Errorf("parse service returned invalid json: %w", err)
	}
	return &draft, nil
}

// ParseCVPDF sends a CV to the parse service, validates the response against
// the draft schema and returns it.
func (c *Client) ParseCVPDF(ctx context.Context, filename string, content []byte) (*model.CVDraft, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("parse service is not configured")
	}
	body, err := c.postPDF(ctx, "/parse/cv", filename, content)
	if err != nil {
		return nil, err
	}
	if err := model.ValidateCVDraft(body); err != nil {
		return nil, err
	}
	var draft model.CVDraft
	if err := json.Unmarshal(body, &draft); err != nil {
		return nil, fmt.Errorf("parse service returned invalid json: %w", err)
	}
	return &draft, nil
}

// GenerateBio asks the service for a profile text based on the employee's
// experience. Unconfigured installs get a canned Norwegian text so the form
// flow still works in demos.
func (c *Client) GenerateBio(ctx context.Context, e *domain.Employee) (string, error) {
	if !c.Configured() {
		return demoBio(e), nil
	}

	payload := bioRequest{
		Name:            e.Name,
		Title:           e.Title,
		KeyCompetencies: e.KeyCompetencies,
	}
	for _, exp := range e.WorkExperiences {
		payload.Experience = append(payload.Experience,
			fmt.Sprintf("%s hos %s (%s)", exp.Title, exp.Company, exp.TimeFrame))
	}
	for _, edu := range e.Educations {
		payload.Education = append(payload.Education,
			fmt.Sprintf("%s fra %s (%s)", edu.Degree, edu.Institution, edu.TimeFrame))
	}
	for _, tm := range e.TeamMemberships {
		if tm.Project == nil {
			continue
		}
		payload.Projects = append(payload.Projects,
			fmt.Sprintf("%s: Rolle: %s. %s %s", tm.Project.Name, tm.Role, tm.CVRelevance, tm.RoleSummary))
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-bio", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("parse service returned status %d", resp.StatusCode)
	}

	var out struct {
		Bio string `json:"bio"`
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", fmt.Errorf("parse service returned invalid json: %w", err)
	}
	return out.Bio, nil
}

type bioRequest struct {
	Name            string   `json:"name"`
	Title           string   `json:"title"`
	KeyCompetencies []string `json:"key_competencies"`
	Experience      []string `json:"experience"`
	Education       []string `json:"education"`
	Projects        []string `json:"projects"`
}

func demoBio(e *domain.Employee) string {
	first := e.Name
	if fields := strings.Fields(e.Name); len(fields) > 0 {
		first = fields[0]
	}
	title := e.Title
	if title == "" {
		title = "medarbeider"
	}
	return fmt.Sprintf("(DEMO-MODUS - Legg inn API-nøkkel for full versjon)\n\n"+
		"%s er en svært erfaren %s i Ø.M. Fjeld. Gjennom sin karriere har vedkommende "+
		"opparbeidet seg solid kompetanse innen planlegging og gjennomføring av komplekse "+
		"byggeprosjekter. %s er kjent for å levere med høyeste kvalitet og har særlig fokus "+
		"på god dialog med kunden. Erfaringen inkluderer prosjekter med høy teknisk "+
		"kompleksitet, hvor %s har vist seg som en handlekraftig og løsningsorientert "+
		"ressursperson.", e.Name, title, first, first)
}
