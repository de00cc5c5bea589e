package repository

import (
	"context"
	"errors"
	"time"

	"github.com/openhired/jobboard/internal/models"
)

// ErrNotFound is returned whenever a lookup matches no record.
var ErrNotFound = errors.New("repository: record not found")

// UserRepository persists account records.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	// FindByIdentifier matches a user by email, recovery email, or
	// mobile number, whichever is non-empty.
	FindByIdentifier(ctx context.Context, email, recoveryEmail, mobile string) (*models.User, error)
	FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error)
	MobileTaken(ctx context.Context, mobile string, excludeID uint) (bool, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
}

// CompanySearch carries the company search criteria. Provided fields
// are ANDed; Name matches partially and case-insensitively, the rest
// match exactly.
type CompanySearch struct {
	Name     string
	Email    string
	Industry string
}

// CompanyRepository persists company profiles.
type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id uint) (*models.Company, error)
	FindByEmail(ctx context.Context, email string) (*models.Company, error)
	FindByName(ctx context.Context, name string) (*models.Company, error)
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)
	EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error)
	Search(ctx context.Context, criteria CompanySearch) ([]models.Company, error)
	Save(ctx context.Context, company *models.Company) error
	Delete(ctx context.Context, id uint) error
}

// JobFilter selects jobs by exact field equality; empty fields are
// ignored.
type JobFilter struct {
	WorkingTime    string
	JobLocation    string
	SeniorityLevel string
	JobTitle       string
}

// JobRepository persists job postings.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindByID(ctx context.Context, id uint) (*models.Job, error)
	// FindAll returns every job with its company and creator resolved.
	FindAll(ctx context.Context) ([]models.Job, error)
	FindByCompanyID(ctx context.Context, companyID uint) ([]models.Job, error)
	Filter(ctx context.Context, filter JobFilter) ([]models.Job, error)
	Save(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id uint) error
}

// ApplicationRepository persists job applications. Applications are
// append-only; there is no update or delete path.
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	// FindByJobID resolves the applicant and job for each application.
	FindByJobID(ctx context.Context, jobID uint) ([]models.Application, error)
	// FindForCompanyBetween returns applications against any of the
	// company's jobs submitted within [from, to].
	FindForCompanyBetween(ctx context.Context, companyID uint, from, to time.Time) ([]models.Application, error)
}
