package model

// CVDraft matches the JSON the parse service returns for an uploaded CV.
// The handler forwards a validated draft to the frontend for form prefill;
// nothing is persisted until the user saves.

type CVDraft struct {
	Name            string                `json:"name"`
	Title           string                `json:"title,omitempty"`
	Bio             string                `json:"bio,omitempty"`
	Languages       []string              `json:"languages"`
	KeyCompetencies []string              `json:"key_competencies"`
	WorkExperiences []WorkExperienceDraft `json:"work_experiences"`
	Educations      []EducationDraft      `json:"educations"`
}

type WorkExperienceDraft struct {
	Company     string `json:"company"`
	Title       string `json:"title"`
	TimeFrame   string `json:"time_frame,omitempty"`
	Description string `json:"description,omitempty"`
}

type EducationDraft struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	TimeFrame   string `json:"time_frame,omitempty"`
}
