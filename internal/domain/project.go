package domain

// Project is a finished construction project used for reference sheets.
// Nearly every field is optional; rendering suppresses whatever is missing.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type,omitempty"`
	Location    string `json:"location,omitempty"`

	// Free-text period, e.g. "Juni 2022 – desember 2022" or just "2024".
	TimeFrame string `json:"time_frame,omitempty"`

	Relevance       string `json:"relevance,omitempty"`
	Challenges      string `json:"challenges,omitempty"`
	ContractType    string `json:"contract_type,omitempty"`
	PerformedBy     string `json:"performed_by,omitempty"`
	Certification   string `json:"certification,omitempty"`
	Client          string `json:"client,omitempty"`
	RoleDescription string `json:"role_description,omitempty"`

	AreaM2            *int     `json:"area_m2,omitempty"`
	ContractValueMNOK *float64 `json:"contract_value_mnok,omitempty"`

	ContactPerson string `json:"contact_person,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`

	// ImageURL is the legacy single-image field kept for old records.
	ImageURL string   `json:"image_url,omitempty"`
	Tags     []string `json:"tags"`

	Images      []ProjectImage      `json:"images"`
	Attachments []ProjectAttachment `json:"attachments"`
	TeamMembers []TeamMember        `json:"team_members"`
}

type ProjectImage struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

type ProjectAttachment struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"project_id"`
	Filename   string `json:"filename"`
	FilePath   string `json:"file_path"`
	FileType   string `json:"file_type,omitempty"`
	UploadDate string `json:"upload_date,omitempty"`
}

// TeamMember links an employee to a project with CV-specific fields on the
// bridge itself.
type TeamMember struct {
	ID         int    `json:"id"`
	ProjectID  int    `json:"project_id"`
	EmployeeID int    `json:"employee_id"`
	Role       string `json:"role"`

	CVRelevance    string `json:"cv_relevance,omitempty"`
	RoleSummary    string `json:"role_summary,omitempty"`
	ReferenceName  string `json:"reference_name,omitempty"`
	ReferencePhone string `json:"reference_phone,omitempty"`

	Employee *Employee `json:"employee,omitempty"`
	Project  *Project  `json:"project,omitempty"`
}

// ProjectDraft holds the fields the parse service manages to extract from an
// uploaded project brief. Everything is optional; the form is prefilled with
// whatever came back.
type ProjectDraft struct {
	Name              string   `json:"name,omitempty"`
	Description       string   `json:"description,omitempty"`
	Type              string   `json:"type,omitempty"`
	Location          string   `json:"location,omitempty"`
	TimeFrame         string   `json:"time_frame,omitempty"`
	ContractType      string   `json:"contract_type,omitempty"`
	PerformedBy       string   `json:"performed_by,omitempty"`
	AreaM2            *int     `json:"area_m2,omitempty"`
	ContractValueMNOK *float64 `json:"contract_value_mnok,omitempty"`
	Client            string   `json:"client,omitempty"`
	ContactPerson     string   `json:"contact_person,omitempty"`
	ContactEmail      string   `json:"contact_email,omitempty"`
	ContactPhone      string   `json:"contact_phone,omitempty"`
	ExtractedImages   []string `json:"extracted_images,omitempty"`
}
