package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/models"
	"github.com/jobvip/backend/internal/repositories"
	"github.com/jobvip/backend/internal/utils"
)

// ---------------------------------------------------------------------
// JobService interface
// ---------------------------------------------------------------------

type JobService interface {
	CreateJobPosting(ctx context.Context, req *dtos.CreateJobPostingRequest) (*models.JobPosting, error)
	ListAll(ctx context.Context) ([]*models.JobPosting, error)
	FilterOptions(ctx context.Context) (*dtos.FilterOptionsResponse, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jobService struct {
	jobPostingRepo repositories.JobPostingRepository
	industryRepo   repositories.IndustryRepository
	workTypeRepo   repositories.WorkTypeRepository
}

func NewJobService(
	jobPostingRepo repositories.JobPostingRepository,
	industryRepo repositories.IndustryRepository,
	workTypeRepo repositories.WorkTypeRepository,
) JobService {
	return &jobService{
		jobPostingRepo: jobPostingRepo,
		industryRepo:   industryRepo,
		workTypeRepo:   workTypeRepo,
	}
}

func (s *jobService) CreateJobPosting(ctx context.Context, req *dtos.CreateJobPostingRequest) (*models.JobPosting, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation, "account_id must be a valid UUID")
	}

	jp := &models.JobPosting{
		AccountID:       accountID,
		CompanyID:       req.CompanyID,
		PositionName:    req.PositionName,
		JobDescription:  req.JobDescription,
		Requirements:    req.Requirements,
		Benefits:        req.Benefits,
		Salary:          req.Salary,
		ExperienceYears: req.ExperienceYears,
		EducationLevel:  req.EducationLevel,
		WorkingTime:     req.WorkingTime,
		Status:          models.JobPostingStatusOpen,
	}

	if req.Deadline != "" {
		deadline, parseErr := time.Parse("2006-01-02", req.Deadline)
		if parseErr != nil {
			return nil, utils.NewAppError(http.StatusBadRequest, utils.ErrCodeValidation, "deadline must be YYYY-MM-DD")
		}
		jp.Deadline = &deadline
	}

	if err := s.jobPostingRepo.Create(ctx, jp); err != nil {
		return nil, err
	}
	return jp, nil
}

func (s *jobService) ListAll(ctx context.Context) ([]*models.JobPosting, error) {
	return s.jobPostingRepo.ListAll(ctx)
}

// FilterOptions reports the distinct work type and industry names so the
// client can populate its filter dropdowns.
func (s *jobService) FilterOptions(ctx context.Context) (*dtos.FilterOptionsResponse, error) {
	workTypes, err := s.workTypeRepo.ListDistinctNames(ctx)
	if err != nil {
		return nil, err
	}
	industries, err := s.industryRepo.ListDistinctNames(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dtos.FilterOptionsResponse{
		WorkTypes:  workTypes,
		Industries: industries,
	}
	if resp.WorkTypes == nil {
		resp.WorkTypes = []string{}
	}
	if resp.Industries == nil {
		resp.Industries = []string{}
	}
	return resp, nil
}
