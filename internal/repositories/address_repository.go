package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/jobvip/backend/internal/models"
)

type AddressRepository interface {
	// FirstByCompanyID returns the company's first address row, or nil.
	FirstByCompanyID(ctx context.Context, companyID int64) (*models.Address, error)
	ListByCompanyIDs(ctx context.Context, companyIDs []int64) ([]*models.Address, error)
}

type addressRepo struct{ db DB }

func NewAddressRepository(db DB) AddressRepository { return &addressRepo{db: db} }

func baseSelectAddress() string {
	return `SELECT address_id, company_id, address_detail FROM address`
}

func scanAddress(row pgx.Row) (*models.Address, error) {
	var a models.Address
	if err := row.Scan(&a.ID, &a.CompanyID, &a.AddressDetail); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *addressRepo) FirstByCompanyID(ctx context.Context, companyID int64) (*models.Address, error) {
	row := r.db.QueryRow(ctx, baseSelectAddress()+" WHERE company_id=$1 ORDER BY address_id LIMIT 1", companyID)
	return scanAddress(row)
}

func (r *addressRepo) ListByCompanyIDs(ctx context.Context, companyIDs []int64) ([]*models.Address, error) {
	rows, err := r.db.Query(ctx, baseSelectAddress()+" WHERE company_id = ANY($1) ORDER BY address_id", companyIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
