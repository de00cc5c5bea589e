package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/openhired/jobboard/internal/apperr"
	"github.com/openhired/jobboard/internal/dtos"
	"github.com/openhired/jobboard/internal/mailer"
	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/repository"
)

// JobService owns job postings and the apply-to-job flow.
type JobService struct {
	jobs         repository.JobRepository
	companies    repository.CompanyRepository
	applications repository.ApplicationRepository
	mail         mailer.Sender
	logger       *zap.Logger
}

func NewJobService(
	jobs repository.JobRepository,
	companies repository.CompanyRepository,
	applications repository.ApplicationRepository,
	mail mailer.Sender,
	logger *zap.Logger,
) *JobService {
	return &JobService{
		jobs:         jobs,
		companies:    companies,
		applications: applications,
		mail:         mail,
		logger:       logger,
	}
}

// Add posts a job under the company addressed by its unique email.
func (s *JobService) Add(ctx context.Context, addedBy *models.User, req dtos.AddJobRequest) (*models.Job, error) {
	company, err := s.companies.FindByEmail(ctx, req.CompanyEmail)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("company_not_found", "Company does not exist.")
		}
		return nil, apperr.Internal(err)
	}

	job := &models.Job{
		JobTitle:        req.JobTitle,
		JobLocation:     req.JobLocation,
		WorkingTime:     req.WorkingTime,
		SeniorityLevel:  req.SeniorityLevel,
		JobDescription:  req.JobDescription,
		TechnicalSkills: datatypes.NewJSONSlice(req.TechnicalSkills),
		SoftSkills:      datatypes.NewJSONSlice(req.SoftSkills),
		AddedByID:       addedBy.ID,
		CompanyID:       company.ID,
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperr.Internal(err)
	}
	return job, nil
}

// Update merges the provided fields; anything absent keeps its prior
// value. The acting user is notified by email.
func (s *JobService) Update(ctx context.Context, actor *models.User, id uint, req dtos.UpdateJobRequest) (*models.Job, error) {
	job, err := s.findJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.JobTitle != "" {
		job.JobTitle = req.JobTitle
	}
	if req.JobLocation != "" {
		job.JobLocation = req.JobLocation
	}
	if req.WorkingTime != "" {
		job.WorkingTime = req.WorkingTime
	}
	if req.SeniorityLevel != "" {
		job.SeniorityLevel = req.SeniorityLevel
	}
	if req.JobDescription != "" {
		job.JobDescription = req.JobDescription
	}
	if len(req.TechnicalSkills) > 0 {
		job.TechnicalSkills = datatypes.NewJSONSlice(req.TechnicalSkills)
	}
	if len(req.SoftSkills) > 0 {
		job.SoftSkills = datatypes.NewJSONSlice(req.SoftSkills)
	}

	if err := s.jobs.Save(ctx, job); err != nil {
		return nil, apperr.Internal(err)
	}

	subject, body := mailer.JobUpdatedBody(job.JobTitle)
	notify(s.logger, s.mail, actor.Email, subject, body)
	return job, nil
}

// Delete removes a posting.
func (s *JobService) Delete(ctx context.Context, id uint) error {
	if _, err := s.findJob(ctx, id); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// AllWithCompany lists every posting with its company and creator
// resolved.
func (s *JobService) AllWithCompany(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobs.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(jobs) == 0 {
		return nil, apperr.NotFound("not_found", "No jobs found.")
	}
	return jobs, nil
}

// ByCompanyName lists postings for an exactly-named company.
func (s *JobService) ByCompanyName(ctx context.Context, companyName string) ([]models.Job, error) {
	company, err := s.companies.FindByName(ctx, companyName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("company_not_found", "Company not found.")
		}
		return nil, apperr.Internal(err)
	}

	jobs, err := s.jobs.FindByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(jobs) == 0 {
		return nil, apperr.NotFound("not_found", "No jobs found for this company.")
	}
	return jobs, nil
}

// Filter selects postings by exact equality on the provided fields; a
// filter value never partially matches.
func (s *JobService) Filter(ctx context.Context, filter repository.JobFilter) ([]models.Job, error) {
	jobs, err := s.jobs.Filter(ctx, filter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(jobs) == 0 {
		return nil, apperr.NotFound("not_found", "No jobs found matching the criteria.")
	}
	return jobs, nil
}

// Apply records an application with the saved attachment paths. The
// job linkage is the application's foreign key, so there is no second
// write to keep consistent.
func (s *JobService) Apply(ctx context.Context, applicant *models.User, jobID uint, resumeFile, coverLetterFile string) (*models.Application, error) {
	job, err := s.findJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	application := &models.Application{
		JobID:           job.ID,
		UserID:          applicant.ID,
		ResumeFile:      resumeFile,
		CoverLetterFile: coverLetterFile,
		AppliedAt:       time.Now(),
	}
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, apperr.Internal(err)
	}
	return application, nil
}

func (s *JobService) findJob(ctx context.Context, id uint) (*models.Job, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("job_not_found", "Job not found.")
		}
		return nil, apperr.Internal(err)
	}
	return job, nil
}
