package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"

	"github.com/jobvip/backend/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

type AccountRepository interface {
	Create(ctx context.Context, a *models.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByPhoneNumber(ctx context.Context, phone string) (*models.Account, error)
	ListActive(ctx context.Context) ([]*models.Account, error)

	UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) error
	TouchUpdatedAt(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type accountRepo struct{ db DB }

func NewAccountRepository(db DB) AccountRepository { return &accountRepo{db: db} }

func baseSelectAccount() string {
	return `
		SELECT account_id, email, phone_number, password, status,
		       gender, date_of_birth, company_id, created_at, updated_at
		FROM account
	`
}

func scanAccount(row pgx.Row) (*models.Account, error) {
	var a models.Account
	if err := row.Scan(
		&a.ID, &a.Email, &a.PhoneNumber, &a.Password, &a.Status,
		&a.Gender, &a.DateOfBirth, &a.CompanyID, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

/* ---------- Create ---------- */

func (r *accountRepo) Create(ctx context.Context, a *models.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO account (
			account_id, email, phone_number, password, status,
			gender, date_of_birth, company_id, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW(),NOW())
	`, a.ID, a.Email, a.PhoneNumber, a.Password, a.Status,
		a.Gender, a.DateOfBirth, a.CompanyID)
	return err
}

/* ---------- Reads ---------- */

func (r *accountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	row := r.db.QueryRow(ctx, baseSelectAccount()+" WHERE account_id=$1", id)
	return scanAccount(row)
}

func (r *accountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	row := r.db.QueryRow(ctx, baseSelectAccount()+" WHERE email=$1", email)
	return scanAccount(row)
}

func (r *accountRepo) GetByPhoneNumber(ctx context.Context, phone string) (*models.Account, error) {
	row := r.db.QueryRow(ctx, baseSelectAccount()+" WHERE phone_number=$1", phone)
	return scanAccount(row)
}

func (r *accountRepo) ListActive(ctx context.Context) ([]*models.Account, error) {
	rows, err := r.db.Query(ctx, baseSelectAccount()+" WHERE status=$1 ORDER BY created_at", models.AccountStatusActive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

/* ---------- Updates / Delete ---------- */

func (r *accountRepo) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE account SET password=$1, updated_at=NOW() WHERE email=$2
	`, passwordHash, email)
	return err
}

func (r *accountRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.AccountStatus) error {
	_, err := r.db.Exec(ctx, `
		UPDATE account SET status=$1, updated_at=NOW() WHERE account_id=$2
	`, status, id)
	return err
}

func (r *accountRepo) TouchUpdatedAt(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE account SET updated_at=NOW() WHERE account_id=$1`, id)
	return err
}

func (r *accountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM account WHERE account_id=$1`, id)
	return err
}
