package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"xintern-backend/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	FindByExactName(ctx context.Context, name string) ([]domain.Company, error)
	ResolveByName(ctx context.Context, name string) (*domain.Company, error)
	Find(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	UpdateLogo(ctx context.Context, id uuid.UUID, logoURL string) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Groups(ctx context.Context, nameQuery string, limit int) ([]domain.CompanyGroup, error)
	Top(ctx context.Context, limit int) ([]domain.TopCompany, error)
}

type companyRepository struct {
	db *sqlx.DB
}

func NewCompanyRepository(db *sqlx.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	query := `
		INSERT INTO companies (company_id, name, logo, location)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		company.ID, company.Name, company.Logo, company.Location,
	).Scan(&company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	var company domain.Company
	query := `SELECT * FROM companies WHERE company_id = $1`

	err := r.db.GetContext(ctx, &company, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) FindByExactName(ctx context.Context, name string) ([]domain.Company, error) {
	var companies []domain.Company
	query := `SELECT * FROM companies WHERE name = $1 ORDER BY created_at`

	err := r.db.SelectContext(ctx, &companies, query, name)
	return companies, err
}

// ResolveByName matches the trimmed name case-insensitively and returns
// the oldest match, or nil when no company carries that name.
func (r *companyRepository) ResolveByName(ctx context.Context, name string) (*domain.Company, error) {
	var company domain.Company
	query := `
		SELECT * FROM companies
		WHERE lower(name) = lower(btrim($1))
		ORDER BY created_at
		LIMIT 1`

	err := r.db.GetContext(ctx, &company, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) Find(ctx context.Context, filter domain.CompanyFilter) ([]domain.Company, error) {
	if filter.ID != nil {
		company, err := r.GetByID(ctx, *filter.ID)
		if err != nil || company == nil {
			return nil, err
		}
		return []domain.Company{*company}, nil
	}

	query := `SELECT * FROM companies WHERE 1=1`
	args := []any{}
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		query += ` AND name ILIKE $1`
	}
	if filter.Location != "" {
		args = append(args, "%"+filter.Location+"%")
		if len(args) == 1 {
			query += ` AND location ILIKE $1`
		} else {
			query += ` AND location ILIKE $2`
		}
	}
	query += ` ORDER BY created_at`

	var companies []domain.Company
	err := r.db.SelectContext(ctx, &companies, query, args...)
	return companies, err
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	query := `
		UPDATE companies
		SET name = $2, logo = $3, location = $4, updated_at = NOW()
		WHERE company_id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		company.ID, company.Name, company.Logo, company.Location,
	).Scan(&company.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundErr("Company does not exist.")
	}
	return err
}

func (r *companyRepository) UpdateLogo(ctx context.Context, id uuid.UUID, logoURL string) error {
	query := `UPDATE companies SET logo = $2, updated_at = NOW() WHERE company_id = $1`
	result, err := r.db.ExecContext(ctx, query, id, logoURL)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NotFoundErr("Company does not exist.")
	}
	return nil
}

func (r *companyRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE company_id = $1`, id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Groups buckets companies by lower-cased name, keeping the
// first-created row's original casing and logo as the representative.
// An empty nameQuery aggregates the whole table.
func (r *companyRepository) Groups(ctx context.Context, nameQuery string, limit int) ([]domain.CompanyGroup, error) {
	query := `
		SELECT DISTINCT ON (lower(name))
			lower(name) AS group_key, name, logo
		FROM companies
		WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY lower(name), created_at`
	args := []any{nameQuery}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	var groups []domain.CompanyGroup
	err := r.db.SelectContext(ctx, &groups, query, args...)
	return groups, err
}

// Top ranks company names by review count, descending.
func (r *companyRepository) Top(ctx context.Context, limit int) ([]domain.TopCompany, error) {
	query := `
		SELECT c.name,
			min(c.company_id::text)::uuid AS company_id,
			min(c.logo) AS logo,
			count(r.review_id) AS count
		FROM reviews r
		JOIN companies c ON c.company_id = r.company_id
		GROUP BY c.name
		ORDER BY count DESC
		LIMIT $1`

	var top []domain.TopCompany
	err := r.db.SelectContext(ctx, &top, query, limit)
	return top, err
}
