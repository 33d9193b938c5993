package dto

import "time"

// ======================
// Request DTOs
// ======================

type CreateJobRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	Company         string `json:"company" validate:"required,max=200"`
	Location        string `json:"location" validate:"omitempty,max=200"`
	Type            string `json:"type" validate:"omitempty,oneof=full-time part-time contract freelance"`
	Salary          string `json:"salary" validate:"omitempty,max=100"`
	Description     string `json:"description" validate:"omitempty,max=5000"`
	Requirements    string `json:"requirements" validate:"omitempty,max=5000"`
	ContactEmail    string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone    string `json:"contact_phone" validate:"omitempty,max=20"`
	ContactWhatsapp string `json:"contact_whatsapp" validate:"omitempty,max=20"`
}

type UpdateJobRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Company         *string `json:"company,omitempty" validate:"omitempty,max=200"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Type            *string `json:"type,omitempty" validate:"omitempty,oneof=full-time part-time contract freelance"`
	Salary          *string `json:"salary,omitempty" validate:"omitempty,max=100"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Requirements    *string `json:"requirements,omitempty" validate:"omitempty,max=5000"`
	ContactEmail    *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone    *string `json:"contact_phone,omitempty" validate:"omitempty,max=20"`
	ContactWhatsapp *string `json:"contact_whatsapp,omitempty" validate:"omitempty,max=20"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
}

type JobSearchCriteria struct {
	Type     string `form:"type" validate:"omitempty,oneof=full-time part-time contract freelance"`
	Search   string `form:"q" validate:"omitempty,max=200"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

type ApplyJobRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeURL   string `json:"resume_url" validate:"omitempty,url"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=submitted reviewed accepted rejected"`
}

// ======================
// Response DTOs
// ======================

type JobResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	Salary          string    `json:"salary,omitempty"`
	Description     string    `json:"description"`
	Requirements    string    `json:"requirements,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	ContactWhatsapp string    `json:"contact_whatsapp,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type JobListResponse struct {
	Jobs       []*JobResponse `json:"jobs"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

type ApplicationResponse struct {
	ID          string       `json:"id"`
	JobID       string       `json:"job_id"`
	UserID      string       `json:"user_id"`
	CoverLetter string       `json:"cover_letter,omitempty"`
	ResumeURL   string       `json:"resume_url,omitempty"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
	Job         *JobResponse `json:"job,omitempty"`
}
