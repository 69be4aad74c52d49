package dtos

import "github.com/jobvip/backend/internal/models"

// JobSearchQuery carries the parsed query parameters of the job search
// endpoint. Pointer fields distinguish "absent" from zero values.
type JobSearchQuery struct {
	Page       int
	Limit      int
	Search     string
	Location   string
	Status     string
	WorkTypes  []string
	Industries []string
	SalaryMin  *float64
	SalaryMax  *float64
	ExpMin     *int
	ExpMax     *int
}

// JobSummary is a job posting enriched with best-effort company and
// taxonomy data for list views.
type JobSummary struct {
	models.JobPosting
	CompanyName   *string  `json:"company_name"`
	AddressDetail *string  `json:"address_detail"`
	Industries    []string `json:"industries"`
	WorkTypes     []string `json:"work_types"`
}

type JobSearchResponse struct {
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
	Total int           `json:"total"`
	Jobs  []*JobSummary `json:"jobs"`
}

// JobDetailResponse is the full assembled view of a single posting.
// Slice fields are never null in the JSON output.
type JobDetailResponse struct {
	models.JobPosting
	Company          *models.Company `json:"company"`
	AddressDetail    *string         `json:"address_detail"`
	Skills           []string        `json:"skills"`
	Industries       []string        `json:"industries"`
	WorkTypes        []string        `json:"work_types"`
	RequirementsList []string        `json:"requirements_list"`
	BenefitsList     []string        `json:"benefits_list"`
}

type FilterOptionsResponse struct {
	WorkTypes  []string `json:"workTypes"`
	Industries []string `json:"industries"`
}

type CreateJobPostingRequest struct {
	AccountID       string   `json:"account_id" validate:"required,uuid"`
	CompanyID       *int64   `json:"company_id" validate:"required"`
	PositionName    string   `json:"position_name" validate:"required"`
	JobDescription  string   `json:"job_description" validate:"required"`
	Requirements    string   `json:"requirements"`
	Benefits        string   `json:"benefits"`
	Salary          *float64 `json:"salary"`
	Deadline        string   `json:"deadline"`
	ExperienceYears int      `json:"experience_years" validate:"gte=0"`
	EducationLevel  string   `json:"education_level"`
	WorkingTime     string   `json:"working_time"`
}

type CreateJobPostingResponse struct {
	Success bool               `json:"success"`
	Job     *models.JobPosting `json:"job"`
}
