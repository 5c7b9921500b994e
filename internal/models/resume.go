// ABOUTME: Structured resume profile extracted from an uploaded document
// ABOUTME: Fields left empty by the parser mean "no data", never an error
package models

// PersonalInfo holds contact details pulled out of the resume header.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
}

// Experience is a single work-experience entry. Year fields stay as
// strings because resumes write things like "present" or "current".
type Experience struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project is a named project with a short description.
type Project struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ResumeProfile is the full structured record for one uploaded resume.
// A re-upload replaces the profile wholesale.
type ResumeProfile struct {
	PersonalInfo   PersonalInfo `json:"personal_info"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Skills         []string     `json:"skills"`
	Projects       []Project    `json:"projects"`
	Certifications []string     `json:"certifications"`
	RawText        string       `json:"raw_text"`
}

// QuestionIntent classifies a question for the rule-based engine.
type QuestionIntent string

const (
	IntentEducation      QuestionIntent = "education"
	IntentExperience     QuestionIntent = "experience"
	IntentSkills         QuestionIntent = "skills"
	IntentProjects       QuestionIntent = "projects"
	IntentCurrentJob     QuestionIntent = "currentJob"
	IntentPersonalInfo   QuestionIntent = "personalInfo"
	IntentJobDescription QuestionIntent = "jobDescriptionAnalysis"
	IntentGeneralSearch  QuestionIntent = "generalSearch"
)
