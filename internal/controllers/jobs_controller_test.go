package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJobSearchQueryDefaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/jobs", nil)

	q := parseJobSearchQuery(r)
	require.Equal(t, 1, q.Page)
	require.Equal(t, 20, q.Limit)
	require.Empty(t, q.Search)
	require.Nil(t, q.WorkTypes)
	require.Nil(t, q.SalaryMin)
	require.Nil(t, q.ExpMax)
}

func TestParseJobSearchQueryGarbagePaging(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/jobs?page=abc&limit=-5", nil)

	q := parseJobSearchQuery(r)
	require.Equal(t, 1, q.Page)
	require.Equal(t, 20, q.Limit)
}

func TestParseJobSearchQueryFullSet(t *testing.T) {
	r := httptest.NewRequest(
		"GET",
		"/api/jobs?page=3&limit=5&search=golang&location=Hanoi&status=open"+
			"&workTypes=Full-time,%20Remote,&industries=Software"+
			"&salaryMin=1000&salaryMax=2500.5&expMin=1&expMax=5",
		nil,
	)

	q := parseJobSearchQuery(r)
	require.Equal(t, 3, q.Page)
	require.Equal(t, 5, q.Limit)
	require.Equal(t, "golang", q.Search)
	require.Equal(t, "Hanoi", q.Location)
	require.Equal(t, "open", q.Status)
	require.Equal(t, []string{"Full-time", "Remote"}, q.WorkTypes)
	require.Equal(t, []string{"Software"}, q.Industries)
	require.NotNil(t, q.SalaryMin)
	require.Equal(t, 1000.0, *q.SalaryMin)
	require.NotNil(t, q.SalaryMax)
	require.Equal(t, 2500.5, *q.SalaryMax)
	require.NotNil(t, q.ExpMin)
	require.Equal(t, 1, *q.ExpMin)
	require.NotNil(t, q.ExpMax)
	require.Equal(t, 5, *q.ExpMax)
}

func TestParseJobSearchQueryMalformedRangeIgnored(t *testing.T) {
	r := httptest.NewRequest(
		"GET",
		"/api/jobs?salaryMin=lots&salaryMax=2000&expMin=many&expMax=5",
		nil,
	)

	q := parseJobSearchQuery(r)
	require.Nil(t, q.SalaryMin)
	require.NotNil(t, q.SalaryMax)
	require.Equal(t, 2000.0, *q.SalaryMax)
	require.Nil(t, q.ExpMin)
	require.NotNil(t, q.ExpMax)
	require.Equal(t, 5, *q.ExpMax)
}
