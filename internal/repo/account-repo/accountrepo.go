package accountrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/internal/pg"
)

const accountColumns = `id, email, password_hash, full_name, role, created_at, updated_at`

const (
	getByIDQuery = `
		SELECT ` + accountColumns + `
		FROM profiles
		WHERE id = $1
	`
	getByEmailQuery = `
		SELECT ` + accountColumns + `
		FROM profiles
		WHERE lower(email) = lower($1)
	`
	listQuery = `
		SELECT ` + accountColumns + `
		FROM profiles
		ORDER BY full_name NULLS LAST, email
	`
	updateRoleQuery = `
		UPDATE profiles
		SET role = $2, updated_at = now()
		WHERE id = $1
	`
	createQuery = `
		INSERT INTO profiles (id, email, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	linkMemberQuery = `
		UPDATE festeros
		SET user_id = $1
		WHERE lower(email) = lower($2) AND user_id IS NULL
	`
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.DisplayName, &a.Role, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.getOne(ctx, getByIDQuery, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.getOne(ctx, getByEmailQuery, email)
}

func (r *Repository) getOne(ctx context.Context, query, arg string) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pg.IsInvalidText(err) {
			return nil, nil
		}
		zap.L().Error("can't find account", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.db.Query(ctx, listQuery)
	if err != nil {
		zap.L().Error("can't list accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			zap.L().Error("can't scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate account rows", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func (r *Repository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	tag, err := r.db.Exec(ctx, updateRoleQuery, id, string(role))
	if err != nil {
		if pg.IsInvalidText(err) {
			return domain.ErrNotFound
		}
		zap.L().Error("can't update account role", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateAndLink stores the account and binds it to the unlinked roster
// members sharing its email, in one transaction. It returns the number
// of members linked.
func (r *Repository) CreateAndLink(ctx context.Context, account *domain.Account) (int64, error) {
	var linked int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, createQuery,
			account.ID, account.Email, account.PasswordHash, account.DisplayName, string(account.Role),
		).Scan(&account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return domain.ErrEmailTaken
			}
			zap.L().Error("can't save account", zap.Error(err))
			return err
		}

		tag, err := r.db.Exec(ctx, linkMemberQuery, account.ID, account.Email)
		if err != nil {
			zap.L().Error("can't link account to member", zap.Error(err))
			return err
		}
		linked = tag.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return linked, nil
}
