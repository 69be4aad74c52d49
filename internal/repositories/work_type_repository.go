package repositories

import (
	"context"

	"github.com/jobvip/backend/internal/models"
)

type WorkTypeRepository interface {
	ListJobPostingIDsByNames(ctx context.Context, names []string) ([]int64, error)
	ListByJobPostingIDs(ctx context.Context, jobPostingIDs []int64) ([]models.WorkType, error)
	ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error)
	ListDistinctNames(ctx context.Context) ([]string, error)
}

type workTypeRepo struct{ db DB }

func NewWorkTypeRepository(db DB) WorkTypeRepository { return &workTypeRepo{db: db} }

func (r *workTypeRepo) ListJobPostingIDsByNames(ctx context.Context, names []string) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT job_posting_id FROM work_type WHERE work_type_name = ANY($1)
	`, names)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *workTypeRepo) ListByJobPostingIDs(ctx context.Context, jobPostingIDs []int64) ([]models.WorkType, error) {
	rows, err := r.db.Query(ctx, `
		SELECT work_type_id, job_posting_id, work_type_name
		FROM work_type
		WHERE job_posting_id = ANY($1)
		ORDER BY work_type_id
	`, jobPostingIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.WorkType
	for rows.Next() {
		var wt models.WorkType
		if err := rows.Scan(&wt.ID, &wt.JobPostingID, &wt.Name); err != nil {
			return nil, err
		}
		out = append(out, wt)
	}
	return out, rows.Err()
}

func (r *workTypeRepo) ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT work_type_name FROM work_type WHERE job_posting_id=$1 ORDER BY work_type_id
	`, jobPostingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func (r *workTypeRepo) ListDistinctNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT work_type_name FROM work_type ORDER BY work_type_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
