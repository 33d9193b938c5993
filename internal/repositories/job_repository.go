package repositories

import (
	"errors"

	"festacconnect_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("job application not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
)

// JobFilter drives the jobs-board browse query.
type JobFilter struct {
	Status models.JobStatus
	Type   models.JobType
	Search string // substring over title/company/location
	UserID string
	Limit  int
	Offset int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindWithFilter(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error)
	Update(db *gorm.DB, job *models.Job) error
	Delete(db *gorm.DB, id string) error

	// Applications
	CreateApplication(db *gorm.DB, application *models.JobApplication) error
	FindApplication(db *gorm.DB, jobID, userID string) (*models.JobApplication, error)
	FindApplicationsByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error)
	FindApplicationsByUser(db *gorm.DB, userID string) ([]models.JobApplication, error)
	UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error
	DeleteApplication(db *gorm.DB, id string) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindWithFilter(db *gorm.DB, filter JobFilter) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.UserID != "" {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"title ILIKE ? OR company ILIKE ? OR location ILIKE ?",
			like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var jobs []models.Job
	err := query.Find(&jobs).Error
	return jobs, total, err
}

func (r *JobRepositoryImpl) Update(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.JobApplication{}, "job_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Job{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}

// CreateApplication inserts the application; the unique index on
// (job_id, user_id) turns a concurrent double-apply into ErrAlreadyApplied
// instead of a duplicate row.
func (r *JobRepositoryImpl) CreateApplication(db *gorm.DB, application *models.JobApplication) error {
	if err := db.Create(application).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *JobRepositoryImpl) FindApplication(db *gorm.DB, jobID, userID string) (*models.JobApplication, error) {
	var application models.JobApplication
	err := db.First(&application, "job_id = ? AND user_id = ?", jobID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *JobRepositoryImpl) FindApplicationsByJob(db *gorm.DB, jobID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *JobRepositoryImpl) FindApplicationsByUser(db *gorm.DB, userID string) ([]models.JobApplication, error) {
	var applications []models.JobApplication
	err := db.Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *JobRepositoryImpl) UpdateApplicationStatus(db *gorm.DB, id string, status models.ApplicationStatus) error {
	result := db.Model(&models.JobApplication{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeleteApplication(db *gorm.DB, id string) error {
	result := db.Delete(&models.JobApplication{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
