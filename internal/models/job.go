package models

type Job struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;index" json:"user_id"`

	Title        string  `gorm:"not null" json:"title"`
	Company      string  `gorm:"not null" json:"company"`
	Location     string  `json:"location"`
	Type         JobType `gorm:"type:varchar(20);default:'full-time';index" json:"type"`
	Salary       string  `json:"salary"` // free text, e.g. "₦150,000 - ₦200,000/month"
	Description  string  `json:"description"`
	Requirements string  `json:"requirements"`

	ContactEmail    string `json:"contact_email"`
	ContactPhone    string `json:"contact_phone"`
	ContactWhatsapp string `json:"contact_whatsapp"`

	Status JobStatus `gorm:"type:varchar(20);default:'active';index" json:"status"`
}

// JobApplication links an applicant to a job. At most one per
// (job, applicant) pair, enforced by a unique index; the duplicate-key
// error is the "already applied" signal.
type JobApplication struct {
	BaseModel
	JobID       string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_user" json:"job_id"`
	UserID      string            `gorm:"type:uuid;not null;uniqueIndex:idx_application_job_user" json:"user_id"`
	CoverLetter string            `json:"cover_letter"`
	ResumeURL   string            `json:"resume_url"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:'submitted'" json:"status"`

	// Relations
	Job *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`
}
