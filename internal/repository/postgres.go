package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/openhired/jobboard/internal/models"
)

// gormUserRepository backs UserRepository with GORM.
type gormUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &gormUserRepository{db: db}
}

func (r *gormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *gormUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByIdentifier(ctx context.Context, email, recoveryEmail, mobile string) (*models.User, error) {
	query := r.db.WithContext(ctx)
	var conditions *gorm.DB
	if email != "" {
		conditions = query.Where("email = ?", email)
	}
	if recoveryEmail != "" {
		clause := query.Where("recovery_email = ?", recoveryEmail)
		if conditions == nil {
			conditions = clause
		} else {
			conditions = conditions.Or(clause)
		}
	}
	if mobile != "" {
		clause := query.Where("mobile_number = ?", mobile)
		if conditions == nil {
			conditions = clause
		} else {
			conditions = conditions.Or(clause)
		}
	}
	if conditions == nil {
		return nil, ErrNotFound
	}

	var user models.User
	if err := query.Where(conditions).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *gormUserRepository) FindByRecoveryEmail(ctx context.Context, recoveryEmail string) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).Where("recovery_email = ?", recoveryEmail).Find(&users).Error
	return users, err
}

func (r *gormUserRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	return r.taken(ctx, "email = ?", email, excludeID)
}

func (r *gormUserRepository) UsernameTaken(ctx context.Context, username string, excludeID uint) (bool, error) {
	return r.taken(ctx, "username = ?", username, excludeID)
}

func (r *gormUserRepository) MobileTaken(ctx context.Context, mobile string, excludeID uint) (bool, error) {
	return r.taken(ctx, "mobile_number = ?", mobile, excludeID)
}

func (r *gormUserRepository) taken(ctx context.Context, cond, value string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).
		Where(cond, value).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormUserRepository) Save(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *gormUserRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, id).Error
}

// gormCompanyRepository backs CompanyRepository with GORM.
type gormCompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) CompanyRepository {
	return &gormCompanyRepository{db: db}
}

func (r *gormCompanyRepository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

func (r *gormCompanyRepository) FindByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).First(&company, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *gormCompanyRepository) FindByEmail(ctx context.Context, email string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Where("company_email = ?", email).First(&company).Error
	if err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *gormCompanyRepository) FindByName(ctx context.Context, name string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Where("company_name = ?", name).First(&company).Error
	if err != nil {
		return nil, translate(err)
	}
	return &company, nil
}

func (r *gormCompanyRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("company_name = ?", name).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormCompanyRepository) EmailTaken(ctx context.Context, email string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("company_email = ?", email).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *gormCompanyRepository) Search(ctx context.Context, criteria CompanySearch) ([]models.Company, error) {
	query := r.db.WithContext(ctx).Model(&models.Company{})
	if criteria.Name != "" {
		query = query.Where("company_name ILIKE ?", "%"+escapeLike(criteria.Name)+"%")
	}
	if criteria.Email != "" {
		query = query.Where("company_email = ?", criteria.Email)
	}
	if criteria.Industry != "" {
		query = query.Where("industry = ?", criteria.Industry)
	}

	var companies []models.Company
	err := query.Find(&companies).Error
	return companies, err
}

func (r *gormCompanyRepository) Save(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Save(company).Error
}

func (r *gormCompanyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Company{}, id).Error
}

// gormJobRepository backs JobRepository with GORM.
type gormJobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &gormJobRepository{db: db}
}

func (r *gormJobRepository) Create(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *gormJobRepository) FindByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := r.db.WithContext(ctx).First(&job, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &job, nil
}

func (r *gormJobRepository) FindAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Preload("Company").
		Preload("AddedBy").
		Find(&jobs).Error
	return jobs, err
}

func (r *gormJobRepository) FindByCompanyID(ctx context.Context, companyID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Find(&jobs).Error
	return jobs, err
}

func (r *gormJobRepository) Filter(ctx context.Context, filter JobFilter) ([]models.Job, error) {
	query := r.db.WithContext(ctx).Model(&models.Job{})
	if filter.WorkingTime != "" {
		query = query.Where("working_time = ?", filter.WorkingTime)
	}
	if filter.JobLocation != "" {
		query = query.Where("job_location = ?", filter.JobLocation)
	}
	if filter.SeniorityLevel != "" {
		query = query.Where("seniority_level = ?", filter.SeniorityLevel)
	}
	if filter.JobTitle != "" {
		query = query.Where("job_title = ?", filter.JobTitle)
	}

	var jobs []models.Job
	err := query.Preload("Applications").Find(&jobs).Error
	return jobs, err
}

func (r *gormJobRepository) Save(ctx context.Context, job *models.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

func (r *gormJobRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Job{}, id).Error
}

// gormApplicationRepository backs ApplicationRepository with GORM.
type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

func (r *gormApplicationRepository) FindByJobID(ctx context.Context, jobID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Job").
		Where("job_id = ?", jobID).
		Find(&applications).Error
	return applications, err
}

func (r *gormApplicationRepository) FindForCompanyBetween(ctx context.Context, companyID uint, from, to time.Time) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Job").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.company_id = ?", companyID).
		Where("applications.applied_at BETWEEN ? AND ?", from, to).
		Find(&applications).Error
	return applications, err
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// escapeLike neutralizes LIKE wildcards in user-supplied search terms.
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}
