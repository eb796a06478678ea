package drawrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/internal/pg"
)

const drawColumns = `id, name, draw_date, ticket_price, surcharge, status, created_at`

const (
	listQuery = `
		SELECT ` + drawColumns + `
		FROM lottery_draws
		ORDER BY draw_date DESC, created_at DESC
	`
	getByIDQuery = `
		SELECT ` + drawColumns + `
		FROM lottery_draws
		WHERE id = $1
	`
	lockByIDQuery = `
		SELECT ` + drawColumns + `
		FROM lottery_draws
		WHERE id = $1
		FOR UPDATE
	`
	createQuery = `
		INSERT INTO lottery_draws (id, name, draw_date, ticket_price, surcharge, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + drawColumns
	updateQuery = `
		UPDATE lottery_draws
		SET name = $2, draw_date = $3, ticket_price = $4, surcharge = $5, status = $6
		WHERE id = $1
		RETURNING ` + drawColumns
	deleteQuery = `
		DELETE FROM lottery_draws
		WHERE id = $1
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

func scanDraw(row pgx.Row) (*domain.Draw, error) {
	var d domain.Draw
	err := row.Scan(&d.ID, &d.Name, &d.DrawDate, &d.TicketPrice, &d.Surcharge, &d.Status, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Draw, error) {
	rows, err := r.db.Query(ctx, listQuery)
	if err != nil {
		zap.L().Error("can't list draws", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	draws := []domain.Draw{}
	for rows.Next() {
		d, err := scanDraw(rows)
		if err != nil {
			zap.L().Error("can't scan draw row", zap.Error(err))
			return nil, err
		}
		draws = append(draws, *d)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate draw rows", zap.Error(err))
		return nil, err
	}
	return draws, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Draw, error) {
	d, err := scanDraw(r.db.QueryRow(ctx, getByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pg.IsInvalidText(err) {
			return nil, nil
		}
		zap.L().Error("can't get draw", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *Repository) Create(ctx context.Context, draw *domain.Draw) (*domain.Draw, error) {
	created, err := scanDraw(r.db.QueryRow(ctx, createQuery,
		draw.ID, draw.Name, draw.DrawDate, draw.TicketPrice, draw.Surcharge, string(draw.Status),
	))
	if err != nil {
		zap.L().Error("can't create draw", zap.Error(err))
		return nil, err
	}
	return created, nil
}

// Update locks the draw row, lets apply mutate it and writes the result
// back in the same transaction. An error from apply aborts the update.
func (r *Repository) Update(ctx context.Context, id string, apply func(*domain.Draw) error) (*domain.Draw, error) {
	var updated *domain.Draw
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := scanDraw(r.db.QueryRow(ctx, lockByIDQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) || pg.IsInvalidText(err) {
				return domain.ErrNotFound
			}
			zap.L().Error("can't lock draw", zap.Error(err))
			return err
		}

		if err := apply(current); err != nil {
			return err
		}

		updated, err = scanDraw(r.db.QueryRow(ctx, updateQuery,
			id, current.Name, current.DrawDate, current.TicketPrice, current.Surcharge, string(current.Status),
		))
		if err != nil {
			zap.L().Error("can't update draw", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, deleteQuery, id)
	if err != nil {
		if pg.IsInvalidText(err) {
			return domain.ErrNotFound
		}
		zap.L().Error("can't delete draw", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
