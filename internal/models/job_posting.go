package models

import (
	"time"

	"github.com/google/uuid"
)

type JobPostingStatus string

const (
	JobPostingStatusOpen   JobPostingStatus = "open"
	JobPostingStatusClosed JobPostingStatus = "closed"
)

// JobPosting for the job_posting table. Column and JSON names follow the
// schema the frontend already consumes.
type JobPosting struct {
	ID              int64            `json:"job_posting_id"`
	AccountID       uuid.UUID        `json:"account_id"`
	CompanyID       *int64           `json:"company_id"`
	PositionName    string           `json:"position_name"`
	JobDescription  string           `json:"job_description"`
	Requirements    string           `json:"requirements"`
	Benefits        string           `json:"benefits"`
	Salary          *float64         `json:"salary"`
	Deadline        *time.Time       `json:"deadline"`
	ExperienceYears int              `json:"experience_years"`
	EducationLevel  string           `json:"education_level"`
	WorkingTime     string           `json:"working_time"`
	Status          JobPostingStatus `json:"status"`
	CreatedAt       time.Time        `json:"created_at"`
}
