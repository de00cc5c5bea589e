package handlers

import (
	"context"
	"time"

	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/repository"
)

// stubUserRepo resolves exactly one account, for the auth middleware.
type stubUserRepo struct {
	user *models.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		copied := *s.user
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByIdentifier(ctx context.Context, email, recoveryEmail, mobile string) (*models.User, error) {
	return nil, repository.ErrNotFound
}

func (s *stubUserRepo) FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) MobileTaken(ctx context.Context, mobile string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) Save(ctx context.Context, user *models.User) error { return nil }
func (s *stubUserRepo) Delete(ctx context.Context, id uint) error         { return nil }

// stubJobRepo resolves exactly one posting.
type stubJobRepo struct {
	job *models.Job
}

func (s *stubJobRepo) Create(ctx context.Context, job *models.Job) error { return nil }

func (s *stubJobRepo) FindByID(ctx context.Context, id uint) (*models.Job, error) {
	if s.job != nil && s.job.ID == id {
		copied := *s.job
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubJobRepo) FindAll(ctx context.Context) ([]models.Job, error) { return nil, nil }

func (s *stubJobRepo) FindByCompanyID(ctx context.Context, companyID uint) ([]models.Job, error) {
	return nil, nil
}

func (s *stubJobRepo) Filter(ctx context.Context, filter repository.JobFilter) ([]models.Job, error) {
	return nil, nil
}

func (s *stubJobRepo) Save(ctx context.Context, job *models.Job) error { return nil }
func (s *stubJobRepo) Delete(ctx context.Context, id uint) error       { return nil }

// stubCompanyRepo resolves exactly one company.
type stubCompanyRepo struct {
	company *models.Company
}

func (s *stubCompanyRepo) Create(ctx context.Context, company *models.Company) error { return nil }

func (s *stubCompanyRepo) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	if s.company != nil && s.company.ID == id {
		copied := *s.company
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (s *stubCompanyRepo) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	return nil, repository.ErrNotFound
}

func (s *stubCompanyRepo) FindByName(ctx context.Context, name string) (*models.Company, error) {
	return nil, repository.ErrNotFound
}

func (s *stubCompanyRepo) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubCompanyRepo) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return false, nil
}

func (s *stubCompanyRepo) Search(ctx context.Context, criteria repository.CompanySearch) ([]models.Company, error) {
	return nil, nil
}

func (s *stubCompanyRepo) Save(ctx context.Context, company *models.Company) error { return nil }
func (s *stubCompanyRepo) Delete(ctx context.Context, id uint) error               { return nil }

// applicationRecorder stores created applications and remembers the
// last date window it was queried with.
type applicationRecorder struct {
	applications []models.Application
	nextID       uint
	windowFrom   time.Time
	windowTo     time.Time
}

func (r *applicationRecorder) Create(ctx context.Context, application *models.Application) error {
	r.nextID++
	application.ID = r.nextID
	r.applications = append(r.applications, *application)
	return nil
}

func (r *applicationRecorder) FindByJobID(ctx context.Context, jobID uint) ([]models.Application, error) {
	var out []models.Application
	for _, app := range r.applications {
		if app.JobID == jobID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *applicationRecorder) FindForCompanyBetween(ctx context.Context, companyID uint, from, to time.Time) ([]models.Application, error) {
	r.windowFrom = from
	r.windowTo = to
	return r.applications, nil
}
