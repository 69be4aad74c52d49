package services

import (
	"context"
	"sync"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/models"
	"github.com/jobvip/backend/internal/repositories"
	"github.com/jobvip/backend/internal/utils"
)

// ---------------------------------------------------------------------
// JobSearchService interface
// ---------------------------------------------------------------------

type JobSearchService interface {
	Search(ctx context.Context, q *dtos.JobSearchQuery) (*dtos.JobSearchResponse, error)
}

// ---------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------

type jobSearchService struct {
	jobPostingRepo repositories.JobPostingRepository
	companyRepo    repositories.CompanyRepository
	addressRepo    repositories.AddressRepository
	industryRepo   repositories.IndustryRepository
	workTypeRepo   repositories.WorkTypeRepository
}

func NewJobSearchService(
	jobPostingRepo repositories.JobPostingRepository,
	companyRepo repositories.CompanyRepository,
	addressRepo repositories.AddressRepository,
	industryRepo repositories.IndustryRepository,
	workTypeRepo repositories.WorkTypeRepository,
) JobSearchService {
	return &jobSearchService{
		jobPostingRepo: jobPostingRepo,
		companyRepo:    companyRepo,
		addressRepo:    addressRepo,
		industryRepo:   industryRepo,
		workTypeRepo:   workTypeRepo,
	}
}

// Search resolves taxonomy filters to ID sets, runs the windowed query
// and enriches the page with best-effort company data. When a requested
// work type or industry matches nothing the whole search short-circuits
// to an empty result without touching the job_posting table.
func (s *jobSearchService) Search(ctx context.Context, q *dtos.JobSearchQuery) (*dtos.JobSearchResponse, error) {
	filter := repositories.JobPostingFilter{
		Search:    q.Search,
		Location:  q.Location,
		Status:    q.Status,
		SalaryMin: q.SalaryMin,
		SalaryMax: q.SalaryMax,
		ExpMin:    q.ExpMin,
		ExpMax:    q.ExpMax,
	}

	emptyResult := &dtos.JobSearchResponse{
		Page:  q.Page,
		Limit: q.Limit,
		Total: 0,
		Jobs:  []*dtos.JobSummary{},
	}

	if len(q.WorkTypes) > 0 {
		jobIDs, err := s.workTypeRepo.ListJobPostingIDsByNames(ctx, q.WorkTypes)
		if err != nil {
			return nil, err
		}
		if len(jobIDs) == 0 {
			return emptyResult, nil
		}
		filter.JobPostingIDs = jobIDs
	}

	if len(q.Industries) > 0 {
		industries, err := s.industryRepo.ListByNames(ctx, q.Industries)
		if err != nil {
			return nil, err
		}
		if len(industries) == 0 {
			return emptyResult, nil
		}
		industryIDs := make([]int64, 0, len(industries))
		for _, ind := range industries {
			industryIDs = append(industryIDs, ind.ID)
		}

		companyIDs, err := s.industryRepo.ListCompanyIDsByIndustryIDs(ctx, industryIDs)
		if err != nil {
			return nil, err
		}
		if len(companyIDs) == 0 {
			return emptyResult, nil
		}
		filter.CompanyIDs = companyIDs
	}

	offset := (q.Page - 1) * q.Limit
	jobs, total, err := s.jobPostingRepo.Search(ctx, filter, offset, q.Limit)
	if err != nil {
		return nil, err
	}

	summaries := s.enrich(ctx, jobs)

	return &dtos.JobSearchResponse{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Jobs:  summaries,
	}, nil
}

// enrich decorates one result page with company names, first addresses,
// industries and work types. The four lookups run concurrently and each
// one is best effort: on error it is logged and its fields stay at their
// defaults, the page itself is still served.
func (s *jobSearchService) enrich(ctx context.Context, jobs []*models.JobPosting) []*dtos.JobSummary {
	companyIDs := make([]int64, 0, len(jobs))
	jobIDs := make([]int64, 0, len(jobs))
	seenCompany := make(map[int64]struct{})
	for _, jp := range jobs {
		jobIDs = append(jobIDs, jp.ID)
		if jp.CompanyID == nil {
			continue
		}
		if _, ok := seenCompany[*jp.CompanyID]; ok {
			continue
		}
		seenCompany[*jp.CompanyID] = struct{}{}
		companyIDs = append(companyIDs, *jp.CompanyID)
	}

	var (
		wg sync.WaitGroup

		companyNames      map[int64]string
		companyAddresses  map[int64]string
		companyIndustries map[int64][]string
		jobWorkTypes      map[int64][]string
	)

	wg.Add(4)

	go func() {
		defer wg.Done()
		if len(companyIDs) == 0 {
			return
		}
		companies, err := s.companyRepo.ListByIDs(ctx, companyIDs)
		if err != nil {
			utils.Logger.WithError(err).Warn("Job search enrichment: company lookup failed")
			return
		}
		companyNames = make(map[int64]string, len(companies))
		for _, c := range companies {
			companyNames[c.ID] = c.Name
		}
	}()

	go func() {
		defer wg.Done()
		if len(companyIDs) == 0 {
			return
		}
		addresses, err := s.addressRepo.ListByCompanyIDs(ctx, companyIDs)
		if err != nil {
			utils.Logger.WithError(err).Warn("Job search enrichment: address lookup failed")
			return
		}
		// First address per company wins.
		companyAddresses = make(map[int64]string)
		for _, a := range addresses {
			if _, ok := companyAddresses[a.CompanyID]; !ok {
				companyAddresses[a.CompanyID] = a.AddressDetail
			}
		}
	}()

	go func() {
		defer wg.Done()
		if len(companyIDs) == 0 {
			return
		}
		pivots, err := s.industryRepo.ListCompanyIndustries(ctx, companyIDs)
		if err != nil {
			utils.Logger.WithError(err).Warn("Job search enrichment: company industry lookup failed")
			return
		}
		industryIDs := make([]int64, 0, len(pivots))
		seen := make(map[int64]struct{})
		for _, p := range pivots {
			if _, ok := seen[p.IndustryID]; ok {
				continue
			}
			seen[p.IndustryID] = struct{}{}
			industryIDs = append(industryIDs, p.IndustryID)
		}
		if len(industryIDs) == 0 {
			return
		}
		industries, err := s.industryRepo.ListByIDs(ctx, industryIDs)
		if err != nil {
			utils.Logger.WithError(err).Warn("Job search enrichment: industry name lookup failed")
			return
		}
		names := make(map[int64]string, len(industries))
		for _, ind := range industries {
			names[ind.ID] = ind.Name
		}
		companyIndustries = make(map[int64][]string)
		for _, p := range pivots {
			if name, ok := names[p.IndustryID]; ok {
				companyIndustries[p.CompanyID] = append(companyIndustries[p.CompanyID], name)
			}
		}
		for id, list := range companyIndustries {
			companyIndustries[id] = dedupe(list)
		}
	}()

	go func() {
		defer wg.Done()
		if len(jobIDs) == 0 {
			return
		}
		workTypes, err := s.workTypeRepo.ListByJobPostingIDs(ctx, jobIDs)
		if err != nil {
			utils.Logger.WithError(err).Warn("Job search enrichment: work type lookup failed")
			return
		}
		jobWorkTypes = make(map[int64][]string)
		for _, wt := range workTypes {
			jobWorkTypes[wt.JobPostingID] = append(jobWorkTypes[wt.JobPostingID], wt.Name)
		}
		for id, list := range jobWorkTypes {
			jobWorkTypes[id] = dedupe(list)
		}
	}()

	wg.Wait()

	summaries := make([]*dtos.JobSummary, 0, len(jobs))
	for _, jp := range jobs {
		summary := &dtos.JobSummary{
			JobPosting: *jp,
			Industries: []string{},
			WorkTypes:  []string{},
		}
		if jp.CompanyID != nil {
			if name, ok := companyNames[*jp.CompanyID]; ok {
				summary.CompanyName = &name
			}
			if addr, ok := companyAddresses[*jp.CompanyID]; ok {
				summary.AddressDetail = &addr
			}
			if list, ok := companyIndustries[*jp.CompanyID]; ok {
				summary.Industries = list
			}
		}
		if list, ok := jobWorkTypes[jp.ID]; ok {
			summary.WorkTypes = list
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
