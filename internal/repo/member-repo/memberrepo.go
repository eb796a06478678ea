package memberrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/internal/pg"
)

const memberColumns = `id, user_id, nombre, primer_apellido, segundo_apellido, email, telefono, fecha_nacimiento, created_at`

const (
	listQuery = `
		SELECT ` + memberColumns + `
		FROM festeros
		ORDER BY primer_apellido, nombre
	`
	getByIDQuery = `
		SELECT ` + memberColumns + `
		FROM festeros
		WHERE id = $1
	`
	getByAccountQuery = `
		SELECT ` + memberColumns + `
		FROM festeros
		WHERE user_id = $1
	`
	existsByEmailQuery = `
		SELECT EXISTS (SELECT 1 FROM festeros WHERE lower(email) = lower($1))
	`
	createQuery = `
		INSERT INTO festeros (id, nombre, primer_apellido, segundo_apellido, email, telefono, fecha_nacimiento)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + memberColumns
	updateQuery = `
		UPDATE festeros
		SET nombre = $2, primer_apellido = $3, segundo_apellido = $4, email = $5, telefono = $6, fecha_nacimiento = $7
		WHERE id = $1
		RETURNING ` + memberColumns
	deleteQuery = `
		DELETE FROM festeros
		WHERE id = $1
	`
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanMember(row pgx.Row) (*domain.Member, error) {
	var m domain.Member
	err := row.Scan(&m.ID, &m.AccountID, &m.GivenName, &m.FirstFamilyName, &m.SecondFamilyName, &m.Email, &m.Phone, &m.BirthDate, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := r.db.Query(ctx, listQuery)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, *m)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate member rows", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	return r.getOne(ctx, getByIDQuery, id)
}

func (r *Repository) GetByAccountID(ctx context.Context, accountID string) (*domain.Member, error) {
	return r.getOne(ctx, getByAccountQuery, accountID)
}

func (r *Repository) getOne(ctx context.Context, query string, arg string) (*domain.Member, error) {
	m, err := scanMember(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pg.IsInvalidText(err) {
			return nil, nil
		}
		zap.L().Error("can't get member", zap.Error(err))
		return nil, err
	}
	return m, nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsByEmailQuery, email).Scan(&exists); err != nil {
		zap.L().Error("can't check member email", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	created, err := scanMember(r.db.QueryRow(ctx, createQuery,
		member.ID, member.GivenName, member.FirstFamilyName, member.SecondFamilyName,
		member.Email, member.Phone, member.BirthDate,
	))
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, domain.ErrEmailTaken
		}
		zap.L().Error("can't create member", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) Update(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	updated, err := scanMember(r.db.QueryRow(ctx, updateQuery,
		member.ID, member.GivenName, member.FirstFamilyName, member.SecondFamilyName,
		member.Email, member.Phone, member.BirthDate,
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows), pg.IsInvalidText(err):
			return nil, domain.ErrNotFound
		case pg.IsUniqueViolation(err):
			return nil, domain.ErrEmailTaken
		}
		zap.L().Error("can't update member", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteQuery, id)
	if err != nil {
		switch {
		case pg.IsForeignKeyViolation(err):
			return domain.ErrMemberHasAssignments
		case pg.IsInvalidText(err):
			return domain.ErrNotFound
		}
		zap.L().Error("can't delete member", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
