package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/jobvip/backend/internal/dtos"
	"github.com/jobvip/backend/internal/services"
	"github.com/jobvip/backend/internal/utils"
)

var jobValidate = validator.New()

type JobsController struct {
	jobService       services.JobService
	jobSearchService services.JobSearchService
	jobDetailService services.JobDetailService
}

func NewJobsController(
	jobService services.JobService,
	jobSearchService services.JobSearchService,
	jobDetailService services.JobDetailService,
) *JobsController {
	return &JobsController{
		jobService:       jobService,
		jobSearchService: jobSearchService,
		jobDetailService: jobDetailService,
	}
}

// ----------------------------------------------------------------
// GET /api/jobs
// ----------------------------------------------------------------
func (c *JobsController) SearchJobsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := parseJobSearchQuery(r)

	resp, svcErr := c.jobSearchService.Search(ctx, q)
	if svcErr != nil {
		utils.Logger.WithError(svcErr).Error("Failed to search job postings")
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to search jobs", nil, svcErr,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/jobs/{id}
// GET /api/jobPosting/listJobPostingId/{id}
// ----------------------------------------------------------------
func (c *JobsController) GetJobDetailHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Job id must be an integer", nil, err,
		)
		return
	}

	detail, svcErr := c.jobDetailService.GetJobDetail(ctx, id)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// ----------------------------------------------------------------
// GET /api/filters
// ----------------------------------------------------------------
func (c *JobsController) FilterOptionsHandler(w http.ResponseWriter, r *http.Request) {
	resp, err := c.jobService.FilterOptions(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to load filter options")
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to load filter options", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// ----------------------------------------------------------------
// GET /api/jobPosting/listJobPosting
// ----------------------------------------------------------------
func (c *JobsController) ListAllJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := c.jobService.ListAll(r.Context())
	if err != nil {
		utils.Logger.WithError(err).Error("Failed to list job postings")
		utils.RespondErrorWithCode(
			w, http.StatusInternalServerError, utils.ErrCodeInternal,
			"Failed to list jobs", nil, err,
		)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, jobs)
}

// ----------------------------------------------------------------
// POST /api/jobPosting/postJobPosting
// ----------------------------------------------------------------
func (c *JobsController) CreateJobHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeInvalidPayload,
			"Invalid JSON for create-job payload", nil, err,
		)
		return
	}
	if err := jobValidate.Struct(req); err != nil {
		utils.RespondErrorWithCode(
			w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil,
		)
		return
	}

	jp, svcErr := c.jobService.CreateJobPosting(r.Context(), &req)
	if svcErr != nil {
		utils.HandleAppError(w, svcErr)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dtos.CreateJobPostingResponse{
		Success: true,
		Job:     jp,
	})
}

// ----------------------------------------------------------------
// Query parsing
// ----------------------------------------------------------------

// parseJobSearchQuery reads the search parameters. page and limit fall
// back to 1 and 20 on absent or garbage input, and numeric range params
// that fail to parse are dropped rather than rejected.
func parseJobSearchQuery(r *http.Request) *dtos.JobSearchQuery {
	qv := r.URL.Query()

	page, err := strconv.Atoi(qv.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(qv.Get("limit"))
	if err != nil || limit < 1 {
		limit = 20
	}

	q := &dtos.JobSearchQuery{
		Page:       page,
		Limit:      limit,
		Search:     strings.TrimSpace(qv.Get("search")),
		Location:   strings.TrimSpace(qv.Get("location")),
		Status:     strings.TrimSpace(qv.Get("status")),
		WorkTypes:  splitCSVParam(qv.Get("workTypes")),
		Industries: splitCSVParam(qv.Get("industries")),
	}

	q.SalaryMin = parseFloatParam(qv.Get("salaryMin"))
	q.SalaryMax = parseFloatParam(qv.Get("salaryMax"))
	q.ExpMin = parseIntParam(qv.Get("expMin"))
	q.ExpMax = parseIntParam(qv.Get("expMax"))

	return q
}

func splitCSVParam(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntParam(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
