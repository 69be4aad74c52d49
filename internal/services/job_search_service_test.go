package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/models"
)

func int64Ptr(v int64) *int64 { return &v }

func newSearchFixture() (*fakeJobPostingRepo, *fakeCompanyRepo, *fakeAddressRepo, *fakeIndustryRepo, *fakeWorkTypeRepo, JobSearchService) {
	jobRepo := &fakeJobPostingRepo{
		jobs: []*models.JobPosting{
			{ID: 1, PositionName: "Backend Engineer", CompanyID: int64Ptr(10)},
			{ID: 2, PositionName: "Data Analyst", CompanyID: int64Ptr(20)},
			{ID: 3, PositionName: "Intern"},
		},
	}
	companyRepo := &fakeCompanyRepo{companies: map[int64]*models.Company{
		10: {ID: 10, Name: "Acme"},
		20: {ID: 20, Name: "Globex"},
	}}
	addressRepo := &fakeAddressRepo{addresses: []*models.Address{
		{ID: 1, CompanyID: 10, AddressDetail: "12 Main St"},
		{ID: 2, CompanyID: 10, AddressDetail: "99 Second St"},
	}}
	industryRepo := &fakeIndustryRepo{
		industries: map[int64]string{100: "Software", 200: "Finance"},
		namesToIDs: map[string]int64{"Software": 100, "Finance": 200},
		companyIndustries: []models.CompanyIndustry{
			{CompanyID: 10, IndustryID: 100},
			{CompanyID: 20, IndustryID: 200},
		},
	}
	workTypeRepo := &fakeWorkTypeRepo{
		byNames: map[string][]int64{"Full-time": {1, 2}},
		workTypes: []models.WorkType{
			{ID: 1, JobPostingID: 1, Name: "Full-time"},
			{ID: 2, JobPostingID: 1, Name: "Remote"},
			{ID: 3, JobPostingID: 2, Name: "Full-time"},
		},
	}
	svc := NewJobSearchService(jobRepo, companyRepo, addressRepo, industryRepo, workTypeRepo)
	return jobRepo, companyRepo, addressRepo, industryRepo, workTypeRepo, svc
}

func TestSearchPassesWindowToRepo(t *testing.T) {
	jobRepo, _, _, _, _, svc := newSearchFixture()

	resp, err := svc.Search(context.Background(), &dtos.JobSearchQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Equal(t, 2, resp.Page)
	require.Equal(t, 2, resp.Limit)
	require.Equal(t, 2, jobRepo.lastOffset)
	require.Equal(t, 2, jobRepo.lastLimit)
	require.Equal(t, 3, resp.Total)
}

func TestSearchUnknownWorkTypeShortCircuits(t *testing.T) {
	jobRepo, _, _, _, _, svc := newSearchFixture()

	resp, err := svc.Search(context.Background(), &dtos.JobSearchQuery{
		Page: 1, Limit: 20,
		WorkTypes: []string{"Telepathy"},
	})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Total)
	require.NotNil(t, resp.Jobs)
	require.Empty(t, resp.Jobs)
	require.False(t, jobRepo.searched, "repo search must be skipped on empty work type resolution")
}

func TestSearchUnknownIndustryShortCircuits(t *testing.T) {
	jobRepo, _, _, _, _, svc := newSearchFixture()

	resp, err := svc.Search(context.Background(), &dtos.JobSearchQuery{
		Page: 1, Limit: 20,
		Industries: []string{"Alchemy"},
	})
	require.NoError(t, err)
	require.Equal(t, 0, resp.Total)
	require.Empty(t, resp.Jobs)
	require.False(t, jobRepo.searched)
}

func TestSearchResolvesTaxonomyFilters(t *testing.T) {
	jobRepo, _, _, _, _, svc := newSearchFixture()

	_, err := svc.Search(context.Background(), &dtos.JobSearchQuery{
		Page: 1, Limit: 20,
		WorkTypes:  []string{"Full-time"},
		Industries: []string{"Software"},
	})
	require.NoError(t, err)
	require.True(t, jobRepo.searched)
	require.ElementsMatch(t, []int64{1, 2}, jobRepo.lastFilter.JobPostingIDs)
	require.ElementsMatch(t, []int64{10}, jobRepo.lastFilter.CompanyIDs)
}

func TestSearchEnrichment(t *testing.T) {
	_, _, _, _, _, svc := newSearchFixture()

	resp, err := svc.Search(context.Background(), &dtos.JobSearchQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 3)

	first := resp.Jobs[0]
	require.NotNil(t, first.CompanyName)
	require.Equal(t, "Acme", *first.CompanyName)
	require.NotNil(t, first.AddressDetail)
	require.Equal(t, "12 Main St", *first.AddressDetail, "first address per company wins")
	require.Equal(t, []string{"Software"}, first.Industries)
	require.Equal(t, []string{"Full-time", "Remote"}, first.WorkTypes)

	// A posting without a company still serializes with empty slices.
	third := resp.Jobs[2]
	require.Nil(t, third.CompanyName)
	require.Nil(t, third.AddressDetail)
	require.NotNil(t, third.Industries)
	require.Empty(t, third.Industries)
	require.NotNil(t, third.WorkTypes)
	require.Empty(t, third.WorkTypes)
}

func TestSearchEnrichmentIsBestEffort(t *testing.T) {
	_, companyRepo, addressRepo, industryRepo, workTypeRepo, svc := newSearchFixture()
	companyRepo.fail = true
	addressRepo.fail = true
	industryRepo.fail = true
	workTypeRepo.fail = true

	// Taxonomy filters are off so the failing repos are only hit during
	// enrichment, which must degrade instead of failing the request.
	resp, err := svc.Search(context.Background(), &dtos.JobSearchQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, resp.Jobs, 3)
	for _, job := range resp.Jobs {
		require.Nil(t, job.CompanyName)
		require.Nil(t, job.AddressDetail)
		require.NotNil(t, job.Industries)
		require.Empty(t, job.Industries)
		require.NotNil(t, job.WorkTypes)
		require.Empty(t, job.WorkTypes)
	}
}
