package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role controls which routes an account can reach.
type Role string

const (
	RoleUser      Role = "User"
	RoleCompanyHR Role = "Company_HR"
)

// Status tracks whether an account currently holds a session.
type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// Deletes are permanent: a removed account or company frees its unique
// identifiers (email, username, mobile, company name) for reuse.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	FirstName     string     `gorm:"not null" json:"first_name"`
	LastName      string     `gorm:"not null" json:"last_name"`
	Username      string     `gorm:"uniqueIndex;not null" json:"username"`
	Email         string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"not null" json:"-"`
	RecoveryEmail string     `json:"recovery_email,omitempty"`
	DOB           time.Time  `json:"dob"`
	MobileNumber  string     `gorm:"uniqueIndex;not null" json:"mobile_number"`
	Role          Role       `gorm:"not null" json:"role"`
	Status        Status     `gorm:"default:offline" json:"status"`
	OTPCode       string     `json:"-"`
	OTPExpiry     *time.Time `json:"-"`
	Confirmed     bool       `gorm:"default:false" json:"confirmed"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyName       string `gorm:"uniqueIndex;not null" json:"company_name"`
	Description       string `gorm:"type:text;not null" json:"description"`
	Industry          string `gorm:"not null" json:"industry"`
	Address           string `gorm:"not null" json:"address"`
	NumberOfEmployees string `gorm:"not null" json:"number_of_employees"`
	CompanyEmail      string `gorm:"uniqueIndex;not null" json:"company_email"`

	// HR owner. GORM needs Preload() to fill the association.
	CompanyHRID uint `gorm:"not null" json:"company_hr_id"`
	CompanyHR   User `gorm:"constraint:OnDelete:CASCADE" json:"company_hr,omitempty"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobTitle       string `gorm:"not null" json:"job_title"`
	JobLocation    string `gorm:"not null" json:"job_location"`
	WorkingTime    string `gorm:"not null" json:"working_time"`
	SeniorityLevel string `gorm:"not null" json:"seniority_level"`
	JobDescription string `gorm:"type:text;not null" json:"job_description"`

	TechnicalSkills datatypes.JSONSlice[string] `json:"technical_skills"`
	SoftSkills      datatypes.JSONSlice[string] `json:"soft_skills"`

	AddedByID uint `gorm:"not null" json:"added_by_id"`
	AddedBy   User `gorm:"constraint:OnDelete:CASCADE" json:"added_by,omitempty"`

	CompanyID uint    `gorm:"not null" json:"company_id"`
	Company   Company `gorm:"constraint:OnDelete:CASCADE" json:"company,omitempty"`

	// 'omitempty' prevents infinite loops when fetching a Job -> Applications -> Job -> ...
	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"applications,omitempty"`
}

type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	JobID uint `gorm:"not null;index" json:"job_id"`
	Job   Job  `json:"job,omitempty"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	User   User `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`

	ResumeFile      string    `gorm:"not null" json:"resume_file"`
	CoverLetterFile string    `gorm:"not null" json:"cover_letter_file"`
	AppliedAt       time.Time `gorm:"index;not null" json:"applied_at"`
}
