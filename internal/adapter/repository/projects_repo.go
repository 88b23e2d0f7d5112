package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"prosjektbank/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

type ProjectsRepo struct {
	pool *pgxpool.Pool
}

func NewProjectsRepo(pool *pgxpool.Pool) *ProjectsRepo {
	return &ProjectsRepo{pool: pool}
}

const projectColumns = `id, name, COALESCE(description,''), COALESCE(type,''), COALESCE(location,''),
	COALESCE(time_frame,''), COALESCE(relevance,''), COALESCE(challenges,''), COALESCE(contract_type,''),
	COALESCE(performed_by,''), COALESCE(certification,''), COALESCE(client,''), COALESCE(role_description,''),
	area_m2, contract_value_mnok, COALESCE(contact_person,''), COALESCE(contact_email,''),
	COALESCE(contact_phone,''), COALESCE(image_url,''), COALESCE(tags,'[]')`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var tagsB []byte
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Type, &p.Location,
		&p.TimeFrame, &p.Relevance, &p.Challenges, &p.ContractType,
		&p.PerformedBy, &p.Certification, &p.Client, &p.RoleDescription,
		&p.AreaM2, &p.ContractValueMNOK, &p.ContactPerson, &p.ContactEmail,
		&p.ContactPhone, &p.ImageURL, &tagsB)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tagsB, &p.Tags); err != nil {
		p.Tags = nil
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return &p, nil
}

// List returns every project, newest first, with images attached. Full
// relations are loaded by Get.
func (r *ProjectsRepo) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range projects {
		imgs, err := r.listImages(ctx, projects[i].ID)
		if err != nil {
			return nil, err
		}
		projects[i].Images = imgs
		projects[i].Attachments = []domain.ProjectAttachment{}
		projects[i].TeamMembers = []domain.TeamMember{}
	}
	return projects, nil
}

// Get loads one project with images, attachments and team members (each with
// its employee).
func (r *ProjectsRepo) Get(ctx context.Context, id int) (*domain.Project, error) {
	p, err := scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if p.Images, err = r.listImages(ctx, id); err != nil {
		return nil, err
	}
	if p.Attachments, err = r.listAttachments(ctx, id); err != nil {
		return nil, err
	}
	if p.TeamMembers, err = r.listTeamMembers(ctx, id); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectsRepo) listImages(ctx context.Context, projectID int) ([]domain.ProjectImage, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, url FROM project_images WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	imgs := []domain.ProjectImage{}
	for rows.Next() {
		var img domain.ProjectImage
		if err := rows.Scan(&img.ID, &img.URL); err != nil {
			return nil, err
		}
		imgs = append(imgs, img)
	}
	return imgs, rows.Err()
}

func (r *ProjectsRepo) listAttachments(ctx context.Context, projectID int) ([]domain.ProjectAttachment, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, project_id, filename, file_path, COALESCE(file_type,''), COALESCE(upload_date,'')
		FROM project_attachments WHERE project_id = $1 ORDER BY id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	atts := []domain.ProjectAttachment{}
	for rows.Next() {
		var a domain.ProjectAttachment
		if err := rows.Scan(&a.ID, &a.ProjectID, &a.Filename, &a.FilePath, &a.FileType, &a.UploadDate); err != nil {
			return nil, err
		}
		atts = append(atts, a)
	}
	return atts, rows.Err()
}

func (r *ProjectsRepo) listTeamMembers(ctx context.Context, projectID int) ([]domain.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `SELECT tm.id, tm.project_id, tm.employee_id, tm.role,
			COALESCE(tm.cv_relevance,''), COALESCE(tm.role_summary,''),
			COALESCE(tm.reference_name,''), COALESCE(tm.reference_phone,''),
			e.name, COALESCE(e.title,''), COALESCE(e.image_url,'')
		FROM project_team_members tm
		JOIN employees e ON e.id = tm.employee_id
		WHERE tm.project_id = $1 ORDER BY tm.id`, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		var m domain.TeamMember
		var e domain.Employee
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.EmployeeID, &m.Role,
			&m.CVRelevance, &m.RoleSummary, &m.ReferenceName, &m.ReferencePhone,
			&e.Name, &e.Title, &e.ImageURL); err != nil {
			return nil, err
		}
		e.ID = m.EmployeeID
		m.Employee = &e
		members = append(members, m)
	}
	return members, rows.Err()
}

// Create inserts a project and its images, and records any new type or tags
// for the dropdowns.
func (r *ProjectsRepo) Create(ctx context.Context, p *domain.Project) error {
	tagsB, _ := json.Marshal(p.Tags)

	err := r.pool.QueryRow(ctx, `INSERT INTO projects
		(name, description, type, location, time_frame, relevance, challenges, contract_type,
		 performed_by, certification, client, role_description, area_m2, contract_value_mnok,
		 contact_person, contact_email, contact_phone, image_url, tags)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		RETURNING id`,
		p.Name, p.Description, p.Type, p.Location, p.TimeFrame, p.Relevance, p.Challenges,
		p.ContractType, p.PerformedBy, p.Certification, p.Client, p.RoleDescription,
		p.AreaM2, p.ContractValueMNOK, p.ContactPerson, p.ContactEmail, p.ContactPhone,
		p.ImageURL, tagsB).Scan(&p.ID)
	if err != nil {
		return err
	}

	if err := r.replaceImages(ctx, p.ID, p.Images); err != nil {
		return err
	}
	return r.recordTypeAndTags(ctx, p)
}

// Update rewrites the project row and replaces its image set.
func (r *ProjectsRepo) Update(ctx context.Context, p *domain.Project) error {
	tagsB, _ := json.Marshal(p.Tags)

	tag, err := r.pool.Exec(ctx, `UPDATE projects SET
		name = $2, description = $3, type = $4, location = $5, time_frame = $6,
		relevance = $7, challenges = $8, contract_type = $9, performed_by = $10,
		certification = $11, client = $12, role_description = $13, area_m2 = $14,
		contract_value_mnok = $15, contact_person = $16, contact_email = $17,
		contact_phone = $18, image_url = $19, tags = $20
		WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Type, p.Location, p.TimeFrame,
		p.Relevance, p.Challenges, p.ContractType, p.PerformedBy,
		p.Certification, p.Client, p.RoleDescription, p.AreaM2,
		p.ContractValueMNOK, p.ContactPerson, p.ContactEmail,
		p.ContactPhone, p.ImageURL, tagsB)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if err := r.replaceImages(ctx, p.ID, p.Images); err != nil {
		return err
	}
	return r.recordTypeAndTags(ctx, p)
}

func (r *ProjectsRepo) replaceImages(ctx context.Context, projectID int, imgs []domain.ProjectImage) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM project_images WHERE project_id = $1`, projectID); err != nil {
		return err
	}
	for i := range imgs {
		err := r.pool.QueryRow(ctx, `INSERT INTO project_images (project_id, url) VALUES ($1,$2) RETURNING id`,
			projectID, imgs[i].URL).Scan(&imgs[i].ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *ProjectsRepo) recordTypeAndTags(ctx context.Context, p *domain.Project) error {
	if p.Type != "" {
		if _, err := r.pool.Exec(ctx, `INSERT INTO project_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, p.Type); err != nil {
			return err
		}
	}
	for _, t := range p.Tags {
		if _, err := r.pool.Exec(ctx, `INSERT INTO tags (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, t); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a project; images, attachments and team rows go with it via
// ON DELETE CASCADE.
func (r *ProjectsRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddTeamMember links an employee to a project.
func (r *ProjectsRepo) AddTeamMember(ctx context.Context, m *domain.TeamMember) error {
	return r.pool.QueryRow(ctx, `INSERT INTO project_team_members
		(project_id, employee_id, role, cv_relevance, role_summary, reference_name, reference_phone)
		VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING id`,
		m.ProjectID, m.EmployeeID, m.Role, m.CVRelevance, m.RoleSummary,
		m.ReferenceName, m.ReferencePhone).Scan(&m.ID)
}

func (r *ProjectsRepo) UpdateTeamMember(ctx context.Context, m *domain.TeamMember) error {
	tag, err := r.pool.Exec(ctx, `UPDATE project_team_members SET
		role = $2, cv_relevance = $3, role_summary = $4, reference_name = $5, reference_phone = $6
		WHERE id = $1`,
		m.ID, m.Role, m.CVRelevance, m.RoleSummary, m.ReferenceName, m.ReferencePhone)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProjectsRepo) DeleteTeamMember(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM project_team_members WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddAttachment stores a reference to an uploaded document.
func (r *ProjectsRepo) AddAttachment(ctx context.Context, a *domain.ProjectAttachment) error {
	return r.pool.QueryRow(ctx, `INSERT INTO project_attachments
		(project_id, filename, file_path, file_type, upload_date)
		VALUES ($1,$2,$3,$4,$5) RETURNING id`,
		a.ProjectID, a.Filename, a.FilePath, a.FileType, a.UploadDate).Scan(&a.ID)
}

func (r *ProjectsRepo) GetAttachment(ctx context.Context, id int) (*domain.ProjectAttachment, error) {
	var a domain.ProjectAttachment
	err := r.pool.QueryRow(ctx, `SELECT id, project_id, filename, file_path, COALESCE(file_type,''), COALESCE(upload_date,'')
		FROM project_attachments WHERE id = $1`, id).
		Scan(&a.ID, &a.ProjectID, &a.Filename, &a.FilePath, &a.FileType, &a.UploadDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ProjectsRepo) DeleteAttachment(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM project_attachments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTypes returns the type names for the creatable dropdown.
func (r *ProjectsRepo) ListTypes(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM project_types ORDER BY name`)
}

// CreateType registers a new type name; duplicates are ignored.
func (r *ProjectsRepo) CreateType(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("type name is required")
	}
	_, err := r.pool.Exec(ctx, `INSERT INTO project_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	return err
}

// ListTags returns every tag ever used, for autocomplete.
func (r *ProjectsRepo) ListTags(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT name FROM tags ORDER BY name`)
}

func (r *ProjectsRepo) listNames(ctx context.Context, sql string) ([]string, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
