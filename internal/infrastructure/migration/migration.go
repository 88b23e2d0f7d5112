package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// Migration represents one idempotent schema step.
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all schema migrations on startup. Every step uses
// IF NOT EXISTS so reruns are harmless.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{Name: "create_base_tables", Up: createBaseTables},
		{Name: "add_challenges_to_projects", Up: addChallengesToProjects},
		{Name: "add_role_description_to_projects", Up: addRoleDescriptionToProjects},
		{Name: "seed_project_types", Up: seedProjectTypes},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

func createBaseTables(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS projects (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			type TEXT,
			location TEXT,
			time_frame TEXT,
			relevance TEXT,
			challenges TEXT,
			contract_type TEXT,
			performed_by TEXT,
			certification TEXT,
			client TEXT,
			role_description TEXT,
			area_m2 INTEGER,
			contract_value_mnok DOUBLE PRECISION,
			contact_person TEXT,
			contact_email TEXT,
			contact_phone TEXT,
			image_url TEXT,
			tags JSONB DEFAULT '[]'::jsonb
		)`,
		`CREATE TABLE IF NOT EXISTS project_images (
			id SERIAL PRIMARY KEY,
			project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			url TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS project_attachments (
			id SERIAL PRIMARY KEY,
			project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			filename TEXT NOT NULL,
			file_path TEXT NOT NULL,
			file_type TEXT,
			upload_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS project_types (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE
		)`,
		`CREATE TABLE IF NOT EXISTS employees (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			title TEXT,
			company TEXT,
			email TEXT,
			phone TEXT,
			image_url TEXT,
			cv_link TEXT,
			bio TEXT,
			languages JSONB DEFAULT '[]'::jsonb,
			key_competencies JSONB DEFAULT '[]'::jsonb
		)`,
		`CREATE TABLE IF NOT EXISTS work_experiences (
			id SERIAL PRIMARY KEY,
			employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			company TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			time_frame TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS educations (
			id SERIAL PRIMARY KEY,
			employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			institution TEXT NOT NULL,
			degree TEXT NOT NULL,
			time_frame TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS certifications (
			id SERIAL PRIMARY KEY,
			employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			year TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS project_team_members (
			id SERIAL PRIMARY KEY,
			project_id INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
			employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			role TEXT NOT NULL,
			cv_relevance TEXT,
			role_summary TEXT,
			reference_name TEXT,
			reference_phone TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// addChallengesToProjects covers databases created before the field existed.
func addChallengesToProjects(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `ALTER TABLE projects ADD COLUMN IF NOT EXISTS challenges TEXT`); err != nil {
		slog.Warn("Error adding challenges column (may already exist)", "error", err)
	}
	return nil
}

func addRoleDescriptionToProjects(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `ALTER TABLE projects ADD COLUMN IF NOT EXISTS role_description TEXT`); err != nil {
		slog.Warn("Error adding role_description column (may already exist)", "error", err)
	}
	return nil
}

// seedProjectTypes fills the type dropdown with the standard categories.
func seedProjectTypes(ctx context.Context, pool *pgxpool.Pool) error {
	types := []string{
		"Barnehage", "Bolig", "Helse og omsorg", "Hotell", "Næring",
		"Offentlig", "Skole", "Spesialbygg", "Undervisning",
	}
	for _, t := range types {
		if _, err := pool.Exec(ctx, `INSERT INTO project_types (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, t); err != nil {
			return err
		}
	}
	return nil
}
