package services

import (
	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/internal/services/dto"
	"festacconnect_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	Create(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Get(db *gorm.DB, id string) (*dto.JobResponse, error)
	Browse(db *gorm.DB, criteria dto.JobSearchCriteria) (*dto.JobListResponse, error)
	MyJobs(db *gorm.DB, userID string) (*dto.JobListResponse, error)
	Update(db *gorm.DB, userID, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	Delete(db *gorm.DB, userID, id string, isAdmin bool) error

	Apply(db *gorm.DB, userID, jobID string, req *dto.ApplyJobRequest) (*dto.ApplicationResponse, error)
	WithdrawApplication(db *gorm.DB, userID, jobID string) error
	JobApplications(db *gorm.DB, userID, jobID string) ([]*dto.ApplicationResponse, error)
	MyApplications(db *gorm.DB, userID string) ([]*dto.ApplicationResponse, error)
	SetApplicationStatus(db *gorm.DB, userID, applicationID string, status models.ApplicationStatus) error
}

type JobServiceImpl struct {
	jobRepo          repositories.JobRepository
	notificationRepo repositories.NotificationRepository
}

func NewJobService(jobRepo repositories.JobRepository, notificationRepo repositories.NotificationRepository) JobService {
	return &JobServiceImpl{jobRepo: jobRepo, notificationRepo: notificationRepo}
}

func (s *JobServiceImpl) Create(db *gorm.DB, userID string, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	jobType := models.JobTypeFullTime
	if req.Type != "" {
		jobType = models.JobType(req.Type)
	}

	job := &models.Job{
		UserID:          userID,
		Title:           req.Title,
		Company:         req.Company,
		Location:        req.Location,
		Type:            jobType,
		Salary:          req.Salary,
		Description:     req.Description,
		Requirements:    req.Requirements,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		ContactWhatsapp: req.ContactWhatsapp,
		Status:          models.JobStatusActive,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) Get(db *gorm.DB, id string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) Browse(db *gorm.DB, criteria dto.JobSearchCriteria) (*dto.JobListResponse, error) {
	page, pageSize := normalizePage(criteria.Page, criteria.PageSize)

	filter := repositories.JobFilter{
		Status: models.JobStatusActive,
		Type:   models.JobType(criteria.Type),
		Search: criteria.Search,
		Limit:  pageSize,
		Offset: (page - 1) * pageSize,
	}

	jobs, total, err := s.jobRepo.FindWithFilter(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobList(jobs, total, page, pageSize), nil
}

func (s *JobServiceImpl) MyJobs(db *gorm.DB, userID string) (*dto.JobListResponse, error) {
	jobs, total, err := s.jobRepo.FindWithFilter(db, repositories.JobFilter{UserID: userID})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobList(jobs, total, 1, len(jobs)), nil
}

func (s *JobServiceImpl) Update(db *gorm.DB, userID, id string, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Type != nil {
		job.Type = models.JobType(*req.Type)
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Requirements != nil {
		job.Requirements = *req.Requirements
	}
	if req.ContactEmail != nil {
		job.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		job.ContactPhone = *req.ContactPhone
	}
	if req.ContactWhatsapp != nil {
		job.ContactWhatsapp = *req.ContactWhatsapp
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildJobResponse(job), nil
}

func (s *JobServiceImpl) Delete(db *gorm.DB, userID, id string, isAdmin bool) error {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if job.UserID != userID && !isAdmin {
		return apperrors.ErrNotOwner
	}
	if err := s.jobRepo.Delete(db, id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// Apply submits an application. The unique index on (job, user) is the
// duplicate guard; the poster gets a notification outside the hot path.
func (s *JobServiceImpl) Apply(db *gorm.DB, userID, jobID string, req *dto.ApplyJobRequest) (*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.Status != models.JobStatusActive {
		return nil, apperrors.ErrInvalidStatus("job", "Job is no longer accepting applications")
	}
	if job.UserID == userID {
		return nil, apperrors.ErrInvalidOperation("job", "Cannot apply to your own job")
	}

	application := &models.JobApplication{
		JobID:       jobID,
		UserID:      userID,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
		Status:      models.ApplicationStatusSubmitted,
	}

	if err := s.jobRepo.CreateApplication(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrAlreadyApplied) {
			return nil, apperrors.ErrConflict(err, "job", "You already applied to this job")
		}
		return nil, apperrors.InternalError(err)
	}

	_ = s.notificationRepo.Create(db, &models.Notification{
		UserID:  job.UserID,
		Type:    "job_application",
		Title:   "New application",
		Message: "Someone applied to " + job.Title,
		Link:    "/jobs/" + job.ID,
	})

	return buildApplicationResponse(application), nil
}

func (s *JobServiceImpl) WithdrawApplication(db *gorm.DB, userID, jobID string) error {
	application, err := s.jobRepo.FindApplication(db, jobID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if err := s.jobRepo.DeleteApplication(db, application.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// JobApplications lists applications for a job; only the poster may see
// them.
func (s *JobServiceImpl) JobApplications(db *gorm.DB, userID, jobID string) ([]*dto.ApplicationResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.UserID != userID {
		return nil, apperrors.ErrNotOwner
	}

	applications, err := s.jobRepo.FindApplicationsByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationList(applications), nil
}

func (s *JobServiceImpl) MyApplications(db *gorm.DB, userID string) ([]*dto.ApplicationResponse, error) {
	applications, err := s.jobRepo.FindApplicationsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildApplicationList(applications), nil
}

func (s *JobServiceImpl) SetApplicationStatus(db *gorm.DB, userID, applicationID string, status models.ApplicationStatus) error {
	var application models.JobApplication
	if err := db.Preload("Job").First(&application, "id = ?", applicationID).Error; err != nil {
		return apperrors.ErrNotFound(err)
	}
	if application.Job == nil || application.Job.UserID != userID {
		return apperrors.ErrNotOwner
	}

	if err := s.jobRepo.UpdateApplicationStatus(db, applicationID, status); err != nil {
		return apperrors.InternalError(err)
	}

	_ = s.notificationRepo.Create(db, &models.Notification{
		UserID:  application.UserID,
		Type:    "job_application",
		Title:   "Application " + string(status),
		Message: "Your application for " + application.Job.Title + " was " + string(status),
		Link:    "/jobs/" + application.JobID,
	})
	return nil
}

func buildJobResponse(job *models.Job) *dto.JobResponse {
	return &dto.JobResponse{
		ID:              job.ID,
		UserID:          job.UserID,
		Title:           job.Title,
		Company:         job.Company,
		Location:        job.Location,
		Type:            string(job.Type),
		Salary:          job.Salary,
		Description:     job.Description,
		Requirements:    job.Requirements,
		ContactEmail:    job.ContactEmail,
		ContactPhone:    job.ContactPhone,
		ContactWhatsapp: job.ContactWhatsapp,
		Status:          string(job.Status),
		CreatedAt:       job.CreatedAt,
		UpdatedAt:       job.UpdatedAt,
	}
}

func buildJobList(jobs []models.Job, total int64, page, pageSize int) *dto.JobListResponse {
	responses := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		responses = append(responses, buildJobResponse(&jobs[i]))
	}
	return &dto.JobListResponse{
		Jobs:       responses,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}
}

func buildApplicationResponse(application *models.JobApplication) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:          application.ID,
		JobID:       application.JobID,
		UserID:      application.UserID,
		CoverLetter: application.CoverLetter,
		ResumeURL:   application.ResumeURL,
		Status:      string(application.Status),
		CreatedAt:   application.CreatedAt,
	}
	if application.Job != nil {
		resp.Job = buildJobResponse(application.Job)
	}
	return resp
}

func buildApplicationList(applications []models.JobApplication) []*dto.ApplicationResponse {
	responses := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, buildApplicationResponse(&applications[i]))
	}
	return responses
}
