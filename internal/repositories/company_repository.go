package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/jobvip/backend/internal/models"
)

type CompanyRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Company, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*models.Company, error)
}

type companyRepo struct{ db DB }

func NewCompanyRepository(db DB) CompanyRepository { return &companyRepo{db: db} }

func baseSelectCompany() string {
	return `SELECT company_id, name, description, size, website FROM company`
}

func scanCompany(row pgx.Row) (*models.Company, error) {
	var c models.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Size, &c.Website); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	row := r.db.QueryRow(ctx, baseSelectCompany()+" WHERE company_id=$1", id)
	return scanCompany(row)
}

func (r *companyRepo) ListByIDs(ctx context.Context, ids []int64) ([]*models.Company, error) {
	rows, err := r.db.Query(ctx, baseSelectCompany()+" WHERE company_id = ANY($1)", ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
