package models

// Industry for the industry table, linked to companies via
// company_industry and to job postings via job_posting_industry.
type Industry struct {
	ID   int64  `json:"industry_id"`
	Name string `json:"name"`
}

// CompanyIndustry is a row of the company_industry pivot table.
type CompanyIndustry struct {
	CompanyID  int64 `json:"company_id"`
	IndustryID int64 `json:"industry_id"`
}

// WorkType rows hang directly off a job posting.
type WorkType struct {
	ID           int64  `json:"work_type_id"`
	JobPostingID int64  `json:"job_posting_id"`
	Name         string `json:"work_type_name"`
}

// Skill for the skill table, linked to job postings via job_posting_skill.
type Skill struct {
	ID   int64  `json:"skill_id"`
	Name string `json:"name"`
}
