package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"prosjektbank/internal/domain"
)

type EmployeesRepo struct {
	pool *pgxpool.Pool
}

func NewEmployeesRepo(pool *pgxpool.Pool) *EmployeesRepo {
	return &EmployeesRepo{pool: pool}
}

const employeeColumns = `id, name, COALESCE(title,''), COALESCE(company,''), COALESCE(email,''),
	COALESCE(phone,''), COALESCE(image_url,''), COALESCE(cv_link,''), COALESCE(bio,''),
	COALESCE(languages,'[]'), COALESCE(key_competencies,'[]')`

func scanEmployee(row pgx.Row) (*domain.Employee, error) {
	var e domain.Employee
	var langsB, compB []byte
	err := row.Scan(&e.ID, &e.Name, &e.Title, &e.Company, &e.Email,
		&e.Phone, &e.ImageURL, &e.CVLink, &e.Bio, &langsB, &compB)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(langsB, &e.Languages); err != nil {
		e.Languages = nil
	}
	if err := json.Unmarshal(compB, &e.KeyCompetencies); err != nil {
		e.KeyCompetencies = nil
	}
	if e.Languages == nil {
		e.Languages = []string{}
	}
	if e.KeyCompetencies == nil {
		e.KeyCompetencies = []string{}
	}
	return &e, nil
}

// List returns every employee, alphabetically, without nested relations.
func (r *EmployeesRepo) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		e.WorkExperiences = []domain.WorkExperience{}
		e.Educations = []domain.Education{}
		e.Certifications = []domain.Certification{}
		e.TeamMemberships = []domain.TeamMember{}
		employees = append(employees, *e)
	}
	return employees, rows.Err()
}

// Get loads one employee with experience, education, certifications and
// project memberships (each with its project, for the CV sheet).
func (r *EmployeesRepo) Get(ctx context.Context, id int) (*domain.Employee, error) {
	e, err := scanEmployee(r.pool.QueryRow(ctx, `SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if e.WorkExperiences, err = r.listWorkExperiences(ctx, id); err != nil {
		return nil, err
	}
	if e.Educations, err = r.listEducations(ctx, id); err != nil {
		return nil, err
	}
	if e.Certifications, err = r.listCertifications(ctx, id); err != nil {
		return nil, err
	}
	if e.TeamMemberships, err = r.listMemberships(ctx, id); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *EmployeesRepo) listWorkExperiences(ctx context.Context, employeeID int) ([]domain.WorkExperience, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, company, title, COALESCE(description,''), COALESCE(time_frame,'')
		FROM work_experiences WHERE employee_id = $1 ORDER BY id`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exps := []domain.WorkExperience{}
	for rows.Next() {
		var w domain.WorkExperience
		if err := rows.Scan(&w.ID, &w.Company, &w.Title, &w.Description, &w.TimeFrame); err != nil {
			return nil, err
		}
		exps = append(exps, w)
	}
	return exps, rows.Err()
}

func (r *EmployeesRepo) listEducations(ctx context.Context, employeeID int) ([]domain.Education, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, institution, degree, COALESCE(time_frame,'')
		FROM educations WHERE employee_id = $1 ORDER BY id`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	edus := []domain.Education{}
	for rows.Next() {
		var e domain.Education
		if err := rows.Scan(&e.ID, &e.Institution, &e.Degree, &e.TimeFrame); err != nil {
			return nil, err
		}
		edus = append(edus, e)
	}
	return edus, rows.Err()
}

func (r *EmployeesRepo) listCertifications(ctx context.Context, employeeID int) ([]domain.Certification, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, COALESCE(year,'')
		FROM certifications WHERE employee_id = $1 ORDER BY id`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := []domain.Certification{}
	for rows.Next() {
		var c domain.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Year); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

func (r *EmployeesRepo) listMemberships(ctx context.Context, employeeID int) ([]domain.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `SELECT tm.id, tm.project_id, tm.employee_id, tm.role,
			COALESCE(tm.cv_relevance,''), COALESCE(tm.role_summary,''),
			COALESCE(tm.reference_name,''), COALESCE(tm.reference_phone,''),
			p.name, COALESCE(p.type,''), COALESCE(p.time_frame,''),
			COALESCE(p.client,''), COALESCE(p.contract_type,'')
		FROM project_team_members tm
		JOIN projects p ON p.id = tm.project_id
		WHERE tm.employee_id = $1 ORDER BY tm.project_id DESC`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.TeamMember{}
	for rows.Next() {
		var m domain.TeamMember
		var p domain.Project
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.EmployeeID, &m.Role,
			&m.CVRelevance, &m.RoleSummary, &m.ReferenceName, &m.ReferencePhone,
			&p.Name, &p.Type, &p.TimeFrame, &p.Client, &p.ContractType); err != nil {
			return nil, err
		}
		p.ID = m.ProjectID
		m.Project = &p
		members = append(members, m)
	}
	return members, rows.Err()
}

// Create inserts an employee and the nested CV lists.
func (r *EmployeesRepo) Create(ctx context.Context, e *domain.Employee) error {
	langsB, _ := json.Marshal(e.Languages)
	compB, _ := json.Marshal(e.KeyCompetencies)

	err := r.pool.QueryRow(ctx, `INSERT INTO employees
		(name, title, company, email, phone, image_url, cv_link, bio, languages, key_competencies)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) RETURNING id`,
		e.Name, e.Title, e.Company, e.Email, e.Phone, e.ImageURL, e.CVLink,
		e.Bio, langsB, compB).Scan(&e.ID)
	if err != nil {
		return err
	}
	return r.replaceCVLists(ctx, e)
}

// Update rewrites the employee row and replaces the nested CV lists. The form
// always submits the complete lists, so replace is simpler than diffing.
func (r *EmployeesRepo) Update(ctx context.Context, e *domain.Employee) error {
	langsB, _ := json.Marshal(e.Languages)
	compB, _ := json.Marshal(e.KeyCompetencies)

	tag, err := r.pool.Exec(ctx, `UPDATE employees SET
		name = $2, title = $3, company = $4, email = $5, phone = $6,
		image_url = $7, cv_link = $8, bio = $9, languages = $10, key_competencies = $11
		WHERE id = $1`,
		e.ID, e.Name, e.Title, e.Company, e.Email, e.Phone,
		e.ImageURL, e.CVLink, e.Bio, langsB, compB)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return r.replaceCVLists(ctx, e)
}

func (r *EmployeesRepo) replaceCVLists(ctx context.Context, e *domain.Employee) error {
	for _, table := range []string{"work_experiences", "educations", "certifications"} {
		if _, err := r.pool.Exec(ctx, `DELETE FROM `+table+` WHERE employee_id = $1`, e.ID); err != nil {
			return err
		}
	}

	for i := range e.WorkExperiences {
		w := &e.WorkExperiences[i]
		err := r.pool.QueryRow(ctx, `INSERT INTO work_experiences (employee_id, company, title, description, time_frame)
			VALUES ($1,$2,$3,$4,$5) RETURNING id`,
			e.ID, w.Company, w.Title, w.Description, w.TimeFrame).Scan(&w.ID)
		if err != nil {
			return err
		}
	}
	for i := range e.Educations {
		edu := &e.Educations[i]
		err := r.pool.QueryRow(ctx, `INSERT INTO educations (employee_id, institution, degree, time_frame)
			VALUES ($1,$2,$3,$4) RETURNING id`,
			e.ID, edu.Institution, edu.Degree, edu.TimeFrame).Scan(&edu.ID)
		if err != nil {
			return err
		}
	}
	for i := range e.Certifications {
		c := &e.Certifications[i]
		err := r.pool.QueryRow(ctx, `INSERT INTO certifications (employee_id, name, year)
			VALUES ($1,$2,$3) RETURNING id`,
			e.ID, c.Name, c.Year).Scan(&c.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an employee. CV rows cascade; project memberships do too.
func (r *EmployeesRepo) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetCVLink records the stored path of an uploaded CV file.
func (r *EmployeesRepo) SetCVLink(ctx context.Context, id int, link string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE employees SET cv_link = $2 WHERE id = $1`, id, link)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
