package dto

type JobRequest struct {
	Title          string `json:"title"`
	Department     string `json:"department"`
	Description    string `json:"description"`
	RequiredSkills string `json:"required_skills"`
	EmploymentType string `json:"employment_type"`
}
