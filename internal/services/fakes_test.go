package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/repository"
)

// In-memory repository fakes backing the service tests.

type memUserRepo struct {
	nextID uint
	users  map[uint]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = m.nextID
	m.nextID++
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := m.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) FindByIdentifier(_ context.Context, email, recoveryEmail, mobile string) (*models.User, error) {
	for _, user := range m.users {
		if (email != "" && user.Email == email) ||
			(recoveryEmail != "" && user.RecoveryEmail == recoveryEmail) ||
			(mobile != "" && user.MobileNumber == mobile) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) FindByRecoveryEmail(_ context.Context, recoveryEmail string) ([]models.User, error) {
	var matched []models.User
	for _, user := range m.users {
		if user.RecoveryEmail == recoveryEmail {
			matched = append(matched, *user)
		}
	}
	return matched, nil
}

func (m *memUserRepo) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	for _, user := range m.users {
		if user.ID != excludeID && user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) UsernameTaken(_ context.Context, username string, excludeID uint) (bool, error) {
	for _, user := range m.users {
		if user.ID != excludeID && user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) MobileTaken(_ context.Context, mobile string, excludeID uint) (bool, error) {
	for _, user := range m.users {
		if user.ID != excludeID && user.MobileNumber == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUserRepo) Save(_ context.Context, user *models.User) error {
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *memUserRepo) Delete(_ context.Context, id uint) error {
	delete(m.users, id)
	return nil
}

type memCompanyRepo struct {
	nextID    uint
	companies map[uint]*models.Company
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{nextID: 1, companies: make(map[uint]*models.Company)}
}

func (m *memCompanyRepo) Create(_ context.Context, company *models.Company) error {
	company.ID = m.nextID
	m.nextID++
	clone := *company
	m.companies[company.ID] = &clone
	return nil
}

func (m *memCompanyRepo) FindByID(_ context.Context, id uint) (*models.Company, error) {
	if company, ok := m.companies[id]; ok {
		clone := *company
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memCompanyRepo) FindByEmail(_ context.Context, email string) (*models.Company, error) {
	for _, company := range m.companies {
		if company.CompanyEmail == email {
			clone := *company
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memCompanyRepo) FindByName(_ context.Context, name string) (*models.Company, error) {
	for _, company := range m.companies {
		if company.CompanyName == name {
			clone := *company
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memCompanyRepo) NameTaken(_ context.Context, name string, excludeID uint) (bool, error) {
	for _, company := range m.companies {
		if company.ID != excludeID && company.CompanyName == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCompanyRepo) EmailTaken(_ context.Context, email string, excludeID uint) (bool, error) {
	for _, company := range m.companies {
		if company.ID != excludeID && company.CompanyEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCompanyRepo) Search(_ context.Context, criteria repository.CompanySearch) ([]models.Company, error) {
	var matched []models.Company
	for _, company := range m.companies {
		if criteria.Name != "" &&
			!strings.Contains(strings.ToLower(company.CompanyName), strings.ToLower(criteria.Name)) {
			continue
		}
		if criteria.Email != "" && company.CompanyEmail != criteria.Email {
			continue
		}
		if criteria.Industry != "" && company.Industry != criteria.Industry {
			continue
		}
		matched = append(matched, *company)
	}
	return matched, nil
}

func (m *memCompanyRepo) Save(_ context.Context, company *models.Company) error {
	clone := *company
	m.companies[company.ID] = &clone
	return nil
}

func (m *memCompanyRepo) Delete(_ context.Context, id uint) error {
	delete(m.companies, id)
	return nil
}

type memJobRepo struct {
	nextID uint
	jobs   map[uint]*models.Job
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{nextID: 1, jobs: make(map[uint]*models.Job)}
}

func (m *memJobRepo) Create(_ context.Context, job *models.Job) error {
	job.ID = m.nextID
	m.nextID++
	clone := *job
	m.jobs[job.ID] = &clone
	return nil
}

func (m *memJobRepo) FindByID(_ context.Context, id uint) (*models.Job, error) {
	if job, ok := m.jobs[id]; ok {
		clone := *job
		return &clone, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memJobRepo) FindAll(_ context.Context) ([]models.Job, error) {
	var jobs []models.Job
	for _, job := range m.jobs {
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (m *memJobRepo) FindByCompanyID(_ context.Context, companyID uint) ([]models.Job, error) {
	var jobs []models.Job
	for _, job := range m.jobs {
		if job.CompanyID == companyID {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

func (m *memJobRepo) Filter(_ context.Context, filter repository.JobFilter) ([]models.Job, error) {
	var jobs []models.Job
	for _, job := range m.jobs {
		if filter.WorkingTime != "" && job.WorkingTime != filter.WorkingTime {
			continue
		}
		if filter.JobLocation != "" && job.JobLocation != filter.JobLocation {
			continue
		}
		if filter.SeniorityLevel != "" && job.SeniorityLevel != filter.SeniorityLevel {
			continue
		}
		if filter.JobTitle != "" && job.JobTitle != filter.JobTitle {
			continue
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (m *memJobRepo) Save(_ context.Context, job *models.Job) error {
	clone := *job
	m.jobs[job.ID] = &clone
	return nil
}

func (m *memJobRepo) Delete(_ context.Context, id uint) error {
	delete(m.jobs, id)
	return nil
}

type memApplicationRepo struct {
	nextID       uint
	applications map[uint]*models.Application
	jobs         *memJobRepo
}

func newMemApplicationRepo(jobs *memJobRepo) *memApplicationRepo {
	return &memApplicationRepo{nextID: 1, applications: make(map[uint]*models.Application), jobs: jobs}
}

func (m *memApplicationRepo) Create(_ context.Context, application *models.Application) error {
	application.ID = m.nextID
	m.nextID++
	clone := *application
	m.applications[application.ID] = &clone
	return nil
}

func (m *memApplicationRepo) FindByJobID(_ context.Context, jobID uint) ([]models.Application, error) {
	var matched []models.Application
	for _, application := range m.applications {
		if application.JobID == jobID {
			matched = append(matched, *application)
		}
	}
	return matched, nil
}

func (m *memApplicationRepo) FindForCompanyBetween(_ context.Context, companyID uint, from, to time.Time) ([]models.Application, error) {
	var matched []models.Application
	for _, application := range m.applications {
		job, ok := m.jobs.jobs[application.JobID]
		if !ok || job.CompanyID != companyID {
			continue
		}
		if application.AppliedAt.Before(from) || application.AppliedAt.After(to) {
			continue
		}
		matched = append(matched, *application)
	}
	return matched, nil
}

// recorderMailer captures outbound mail for assertions.
type recorderMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

func (r *recorderMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, sentMail{To: to, Subject: subject, Body: htmlBody})
	return nil
}

func (r *recorderMailer) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func (r *recorderMailer) last() sentMail {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return sentMail{}
	}
	return r.sent[len(r.sent)-1]
}
