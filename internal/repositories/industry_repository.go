package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/jobvip/backend/internal/models"
)

type IndustryRepository interface {
	ListByNames(ctx context.Context, names []string) ([]*models.Industry, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*models.Industry, error)
	ListDistinctNames(ctx context.Context) ([]string, error)

	// company_industry pivot
	ListCompanyIDsByIndustryIDs(ctx context.Context, industryIDs []int64) ([]int64, error)
	ListCompanyIndustries(ctx context.Context, companyIDs []int64) ([]models.CompanyIndustry, error)

	// job_posting_industry pivot
	ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error)
}

type industryRepo struct{ db DB }

func NewIndustryRepository(db DB) IndustryRepository { return &industryRepo{db: db} }

func scanIndustry(row pgx.Row) (*models.Industry, error) {
	var in models.Industry
	if err := row.Scan(&in.ID, &in.Name); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &in, nil
}

func (r *industryRepo) listIndustries(ctx context.Context, query string, args ...interface{}) ([]*models.Industry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Industry
	for rows.Next() {
		in, err := scanIndustry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *industryRepo) ListByNames(ctx context.Context, names []string) ([]*models.Industry, error) {
	return r.listIndustries(ctx, `SELECT industry_id, name FROM industry WHERE name = ANY($1)`, names)
}

func (r *industryRepo) ListByIDs(ctx context.Context, ids []int64) ([]*models.Industry, error) {
	return r.listIndustries(ctx, `SELECT industry_id, name FROM industry WHERE industry_id = ANY($1)`, ids)
}

func (r *industryRepo) ListDistinctNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT name FROM industry ORDER BY name`)
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

func (r *industryRepo) ListCompanyIDsByIndustryIDs(ctx context.Context, industryIDs []int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT company_id FROM company_industry WHERE industry_id = ANY($1)
	`, industryIDs)
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

func (r *industryRepo) ListCompanyIndustries(ctx context.Context, companyIDs []int64) ([]models.CompanyIndustry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT company_id, industry_id FROM company_industry WHERE company_id = ANY($1)
	`, companyIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CompanyIndustry
	for rows.Next() {
		var ci models.CompanyIndustry
		if err := rows.Scan(&ci.CompanyID, &ci.IndustryID); err != nil {
			return nil, err
		}
		out = append(out, ci)
	}
	return out, rows.Err()
}

func (r *industryRepo) ListNamesByJobPostingID(ctx context.Context, jobPostingID int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.name
		FROM job_posting_industry jpi
		JOIN industry i ON i.industry_id = jpi.industry_id
		WHERE jpi.job_posting_id = $1
		ORDER BY i.name
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
