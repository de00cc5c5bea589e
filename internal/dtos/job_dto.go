package dtos

type AddJobRequest struct {
	JobTitle        string   `json:"job_title" binding:"required,min=3,max=100"`
	JobLocation     string   `json:"job_location" binding:"required,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"working_time" binding:"required,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniority_level" binding:"required,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"job_description" binding:"required,min=10,max=2000"`
	TechnicalSkills []string `json:"technical_skills" binding:"required,min=1,dive,min=1"`
	SoftSkills      []string `json:"soft_skills" binding:"required,min=1,dive,min=1"`

	// The owning company is addressed by its unique email.
	CompanyEmail string `json:"company_email" binding:"required,email"`
}

// UpdateJobRequest merges partially: absent fields keep prior values.
type UpdateJobRequest struct {
	JobTitle        string   `json:"job_title" binding:"omitempty,min=3,max=100"`
	JobLocation     string   `json:"job_location" binding:"omitempty,oneof=onsite remotely hybrid"`
	WorkingTime     string   `json:"working_time" binding:"omitempty,oneof=part-time full-time"`
	SeniorityLevel  string   `json:"seniority_level" binding:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobDescription  string   `json:"job_description" binding:"omitempty,min=10,max=2000"`
	TechnicalSkills []string `json:"technical_skills" binding:"omitempty,min=1,dive,min=1"`
	SoftSkills      []string `json:"soft_skills" binding:"omitempty,min=1,dive,min=1"`
}

// FilterJobsQuery selects jobs by exact equality on any provided field.
type FilterJobsQuery struct {
	WorkingTime    string `form:"working_time" binding:"omitempty,oneof=part-time full-time"`
	JobLocation    string `form:"job_location" binding:"omitempty,oneof=onsite remotely hybrid"`
	SeniorityLevel string `form:"seniority_level" binding:"omitempty,oneof=Junior Mid-Level Senior Team-Lead CTO"`
	JobTitle       string `form:"job_title"`
}

type JobsByCompanyQuery struct {
	CompanyName string `form:"company_name" binding:"required"`
}
