package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/apperr"
	"github.com/openhired/jobboard/internal/dtos"
	"github.com/openhired/jobboard/internal/mailer"
	"github.com/openhired/jobboard/internal/models"
	"github.com/openhired/jobboard/internal/repository"
)

// CompanyService owns company profiles and the application reporting
// reads that hang off them.
type CompanyService struct {
	companies    repository.CompanyRepository
	jobs         repository.JobRepository
	applications repository.ApplicationRepository
	mail         mailer.Sender
	logger       *zap.Logger
}

func NewCompanyService(
	companies repository.CompanyRepository,
	jobs repository.JobRepository,
	applications repository.ApplicationRepository,
	mail mailer.Sender,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		mail:         mail,
		logger:       logger,
	}
}

// Add registers a company owned by the acting HR user.
func (s *CompanyService) Add(ctx context.Context, owner *models.User, req dtos.AddCompanyRequest) (*models.Company, error) {
	if taken, err := s.companies.EmailTaken(ctx, req.CompanyEmail, 0); err != nil {
		return nil, apperr.Internal(err)
	} else if taken {
		return nil, apperr.Conflict("company_exists", "A company with this email already exists.")
	}
	if taken, err := s.companies.NameTaken(ctx, req.CompanyName, 0); err != nil {
		return nil, apperr.Internal(err)
	} else if taken {
		return nil, apperr.Conflict("company_exists", "A company with this name already exists.")
	}

	company := &models.Company{
		CompanyName:       req.CompanyName,
		Description:       req.Description,
		Industry:          req.Industry,
		Address:           req.Address,
		NumberOfEmployees: req.NumberOfEmployees,
		CompanyEmail:      req.CompanyEmail,
		CompanyHRID:       owner.ID,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, apperr.Internal(err)
	}
	return company, nil
}

// Update applies a partial change to the company at id and notifies the
// acting user.
func (s *CompanyService) Update(ctx context.Context, actor *models.User, id uint, req dtos.UpdateCompanyRequest) (*models.Company, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CompanyEmail != "" && req.CompanyEmail != company.CompanyEmail {
		if taken, err := s.companies.EmailTaken(ctx, req.CompanyEmail, id); err != nil {
			return nil, apperr.Internal(err)
		} else if taken {
			return nil, apperr.Conflict("company_exists", "A company with this email already exists.")
		}
		company.CompanyEmail = req.CompanyEmail
	}
	if req.CompanyName != "" && req.CompanyName != company.CompanyName {
		if taken, err := s.companies.NameTaken(ctx, req.CompanyName, id); err != nil {
			return nil, apperr.Internal(err)
		} else if taken {
			return nil, apperr.Conflict("company_exists", "A company with this name already exists.")
		}
		company.CompanyName = req.CompanyName
	}
	if req.Description != "" {
		company.Description = req.Description
	}
	if req.Industry != "" {
		company.Industry = req.Industry
	}
	if req.Address != "" {
		company.Address = req.Address
	}
	if req.NumberOfEmployees != "" {
		company.NumberOfEmployees = req.NumberOfEmployees
	}

	if err := s.companies.Save(ctx, company); err != nil {
		return nil, apperr.Internal(err)
	}

	subject, body := mailer.CompanyUpdatedBody(company.CompanyName)
	notify(s.logger, s.mail, actor.Email, subject, body)
	return company, nil
}

// Delete removes the company addressed by id, not by the caller.
func (s *CompanyService) Delete(ctx context.Context, actor *models.User, id uint) error {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return err
	}
	if err := s.companies.Delete(ctx, company.ID); err != nil {
		return apperr.Internal(err)
	}

	subject, body := mailer.CompanyDeletedBody(company.CompanyName)
	notify(s.logger, s.mail, actor.Email, subject, body)
	return nil
}

// Search matches companies against the provided criteria: partial
// case-insensitive name, exact email, exact industry, ANDed together.
func (s *CompanyService) Search(ctx context.Context, criteria repository.CompanySearch) ([]models.Company, error) {
	companies, err := s.companies.Search(ctx, criteria)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if len(companies) == 0 {
		return nil, apperr.NotFound("not_found", "No companies found with the specified criteria.")
	}
	return companies, nil
}

// DataAndJobs returns a company together with its postings.
func (s *CompanyService) DataAndJobs(ctx context.Context, id uint) (*models.Company, []models.Job, error) {
	company, err := s.findCompany(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	jobs, err := s.jobs.FindByCompanyID(ctx, id)
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	return company, jobs, nil
}

// ApplicationsForJob lists a posting's applications with the applicant
// and job resolved.
func (s *CompanyService) ApplicationsForJob(ctx context.Context, jobID uint) ([]models.Application, error) {
	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("job_not_found", "Job not found.")
		}
		return nil, apperr.Internal(err)
	}
	applications, err := s.applications.FindByJobID(ctx, jobID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return applications, nil
}

// ApplicationsOnDate returns the company's applications submitted on
// the given calendar day, [00:00:00.000, 23:59:59.999].
func (s *CompanyService) ApplicationsOnDate(ctx context.Context, companyID uint, day time.Time) ([]models.Application, error) {
	if _, err := s.findCompany(ctx, companyID); err != nil {
		return nil, err
	}

	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	to := from.Add(24*time.Hour - time.Millisecond)

	applications, err := s.applications.FindForCompanyBetween(ctx, companyID, from, to)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return applications, nil
}

func (s *CompanyService) findCompany(ctx context.Context, id uint) (*models.Company, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("company_not_found", "Company not found.")
		}
		return nil, apperr.Internal(err)
	}
	return company, nil
}
