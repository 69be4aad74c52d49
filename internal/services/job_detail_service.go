package services

import (
	"context"
	"net/http"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/repositories"
	"github.com/jobvip/backend/internal/utils"
)

// ---------------------------------------------------------------------
// JobDetailService interface
// ---------------------------------------------------------------------

type JobDetailService interface {
	GetJobDetail(ctx context.Context, jobPostingID int64) (*dtos.JobDetailResponse, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jobDetailService struct {
	jobPostingRepo repositories.JobPostingRepository
	companyRepo    repositories.CompanyRepository
	addressRepo    repositories.AddressRepository
	industryRepo   repositories.IndustryRepository
	workTypeRepo   repositories.WorkTypeRepository
	skillRepo      repositories.SkillRepository
}

func NewJobDetailService(
	jobPostingRepo repositories.JobPostingRepository,
	companyRepo repositories.CompanyRepository,
	addressRepo repositories.AddressRepository,
	industryRepo repositories.IndustryRepository,
	workTypeRepo repositories.WorkTypeRepository,
	skillRepo repositories.SkillRepository,
) JobDetailService {
	return &jobDetailService{
		jobPostingRepo: jobPostingRepo,
		companyRepo:    companyRepo,
		addressRepo:    addressRepo,
		industryRepo:   industryRepo,
		workTypeRepo:   workTypeRepo,
		skillRepo:      skillRepo,
	}
}

// GetJobDetail assembles the full posting view: company, its first
// address, the skill/industry/work-type names and the requirements and
// benefits blocks split into lines. Slice fields are always non-nil.
func (s *jobDetailService) GetJobDetail(ctx context.Context, jobPostingID int64) (*dtos.JobDetailResponse, error) {
	jp, err := s.jobPostingRepo.GetByID(ctx, jobPostingID)
	if err != nil {
		return nil, err
	}
	if jp == nil {
		return nil, utils.NewAppError(http.StatusNotFound, utils.ErrCodeNotFound, "Job posting not found")
	}

	detail := &dtos.JobDetailResponse{
		JobPosting:       *jp,
		Skills:           []string{},
		Industries:       []string{},
		WorkTypes:        []string{},
		RequirementsList: splitLines(jp.Requirements),
		BenefitsList:     splitLines(jp.Benefits),
	}

	if jp.CompanyID != nil {
		company, err := s.companyRepo.GetByID(ctx, *jp.CompanyID)
		if err != nil {
			return nil, err
		}
		detail.Company = company

		address, err := s.addressRepo.FirstByCompanyID(ctx, *jp.CompanyID)
		if err != nil {
			return nil, err
		}
		if address != nil {
			detail.AddressDetail = &address.AddressDetail
		}
	}

	skills, err := s.skillRepo.ListNamesByJobPostingID(ctx, jobPostingID)
	if err != nil {
		return nil, err
	}
	if skills != nil {
		detail.Skills = dedupe(skills)
	}

	industries, err := s.industryRepo.ListNamesByJobPostingID(ctx, jobPostingID)
	if err != nil {
		return nil, err
	}
	if industries != nil {
		detail.Industries = dedupe(industries)
	}

	workTypes, err := s.workTypeRepo.ListNamesByJobPostingID(ctx, jobPostingID)
	if err != nil {
		return nil, err
	}
	if workTypes != nil {
		detail.WorkTypes = dedupe(workTypes)
	}

	return detail, nil
}
