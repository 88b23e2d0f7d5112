package domain

// Employee is a CV-bank entry.
type Employee struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title,omitempty"`
	Company  string `json:"company,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	CVLink   string `json:"cv_link,omitempty"`
	Bio      string `json:"bio,omitempty"`

	Languages       []string `json:"languages"`
	KeyCompetencies []string `json:"key_competencies"`

	WorkExperiences []WorkExperience `json:"work_experiences"`
	Educations      []Education      `json:"educations"`
	Certifications  []Certification  `json:"certifications"`
	TeamMemberships []TeamMember     `json:"team_memberships"`
}

type WorkExperience struct {
	ID          int    `json:"id"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	TimeFrame   string `json:"time_frame,omitempty"`
}

type Education struct {
	ID          int    `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	TimeFrame   string `json:"time_frame,omitempty"`
}

type Certification struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Year string `json:"year,omitempty"`
}
