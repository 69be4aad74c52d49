package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"

	"github.com/jobvip/backend/internal/models"
)

// JobPostingFilter holds the already-parsed predicates for a windowed
// search. Nil / zero fields mean "no constraint". JobPostingIDs and
// CompanyIDs are in-set filters resolved from work types and industries.
type JobPostingFilter struct {
	Search   string
	Location string
	Status   string

	SalaryMin *float64
	SalaryMax *float64
	ExpMin    *int
	ExpMax    *int

	JobPostingIDs []int64
	CompanyIDs    []int64
}

type JobPostingRepository interface {
	Create(ctx context.Context, jp *models.JobPosting) error
	GetByID(ctx context.Context, id int64) (*models.JobPosting, error)
	ListAll(ctx context.Context) ([]*models.JobPosting, error)

	// Search returns one page plus the exact total count of the filtered
	// set, independent of the pagination window.
	Search(ctx context.Context, f JobPostingFilter, offset, limit int) ([]*models.JobPosting, int, error)
}

type jobPostingRepo struct{ db DB }

func NewJobPostingRepository(db DB) JobPostingRepository { return &jobPostingRepo{db: db} }

func baseSelectJobPosting() string {
	return `
		SELECT job_posting_id, account_id, company_id, position_name,
		       job_description, requirements, benefits, salary, deadline,
		       experience_years, education_level, working_time, status, created_at
		FROM job_posting
	`
}

func scanJobPosting(row pgx.Row) (*models.JobPosting, error) {
	var jp models.JobPosting
	if err := row.Scan(
		&jp.ID, &jp.AccountID, &jp.CompanyID, &jp.PositionName,
		&jp.JobDescription, &jp.Requirements, &jp.Benefits, &jp.Salary, &jp.Deadline,
		&jp.ExperienceYears, &jp.EducationLevel, &jp.WorkingTime, &jp.Status, &jp.CreatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &jp, nil
}

/* ---------- Create ---------- */

func (r *jobPostingRepo) Create(ctx context.Context, jp *models.JobPosting) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO job_posting (
			account_id, company_id, position_name, job_description,
			requirements, benefits, salary, deadline, experience_years,
			education_level, working_time, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,NOW())
		RETURNING job_posting_id, created_at
	`, jp.AccountID, jp.CompanyID, jp.PositionName, jp.JobDescription,
		jp.Requirements, jp.Benefits, jp.Salary, jp.Deadline, jp.ExperienceYears,
		jp.EducationLevel, jp.WorkingTime, jp.Status)
	return row.Scan(&jp.ID, &jp.CreatedAt)
}

/* ---------- Reads ---------- */

func (r *jobPostingRepo) GetByID(ctx context.Context, id int64) (*models.JobPosting, error) {
	row := r.db.QueryRow(ctx, baseSelectJobPosting()+" WHERE job_posting_id=$1", id)
	return scanJobPosting(row)
}

func (r *jobPostingRepo) ListAll(ctx context.Context) ([]*models.JobPosting, error) {
	rows, err := r.db.Query(ctx, baseSelectJobPosting()+" ORDER BY job_posting_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.JobPosting
	for rows.Next() {
		jp, err := scanJobPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, jp)
	}
	return out, rows.Err()
}

/* ---------- Search ---------- */

func (r *jobPostingRepo) Search(ctx context.Context, f JobPostingFilter, offset, limit int) ([]*models.JobPosting, int, error) {
	where, args := buildJobPostingWhere(f)

	var total int
	countQuery := "SELECT COUNT(*) FROM job_posting" + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	pageQuery := fmt.Sprintf(
		"%s%s ORDER BY job_posting_id OFFSET $%d LIMIT $%d",
		baseSelectJobPosting(), where, len(args)+1, len(args)+2,
	)
	pageArgs := append(args, offset, limit)

	rows, err := r.db.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*models.JobPosting
	for rows.Next() {
		jp, err := scanJobPosting(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, jp)
	}
	return out, total, rows.Err()
}

// buildJobPostingWhere translates a filter into a WHERE clause with
// positional args. Categories are ANDed; only the free-text search is an
// OR across its three columns.
func buildJobPostingWhere(f JobPostingFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	next := func(v interface{}) int {
		args = append(args, v)
		return len(args)
	}

	if f.Status != "" {
		conds = append(conds, fmt.Sprintf("status=$%d", next(f.Status)))
	}
	if f.Search != "" {
		n := next("%" + f.Search + "%")
		conds = append(conds, fmt.Sprintf(
			"(position_name ILIKE $%d OR job_description ILIKE $%d OR requirements ILIKE $%d)",
			n, n, n,
		))
	}
	if f.Location != "" {
		conds = append(conds, fmt.Sprintf("working_time ILIKE $%d", next("%"+f.Location+"%")))
	}
	if f.SalaryMin != nil {
		conds = append(conds, fmt.Sprintf("salary >= $%d", next(*f.SalaryMin)))
	}
	if f.SalaryMax != nil {
		conds = append(conds, fmt.Sprintf("salary <= $%d", next(*f.SalaryMax)))
	}
	if f.ExpMin != nil {
		conds = append(conds, fmt.Sprintf("experience_years >= $%d", next(*f.ExpMin)))
	}
	if f.ExpMax != nil {
		conds = append(conds, fmt.Sprintf("experience_years <= $%d", next(*f.ExpMax)))
	}
	if f.JobPostingIDs != nil {
		conds = append(conds, fmt.Sprintf("job_posting_id = ANY($%d)", next(f.JobPostingIDs)))
	}
	if f.CompanyIDs != nil {
		conds = append(conds, fmt.Sprintf("company_id = ANY($%d)", next(f.CompanyIDs)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
