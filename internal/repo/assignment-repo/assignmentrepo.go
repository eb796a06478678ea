package assignmentrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
	"github.com/GlebRadaev/festeros/internal/pg"
)

const assignmentColumns = `id, draw_id, festero_id, quantity, amount_paid, status, created_at, updated_at`

const (
	listByDrawQuery = `
		SELECT ` + assignmentColumns + `
		FROM lottery_assignments
		WHERE draw_id = $1
	`
	upsertQuery = `
		INSERT INTO lottery_assignments (draw_id, festero_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (draw_id, festero_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()
		RETURNING ` + assignmentColumns
	bulkUpsertQuery = `
		INSERT INTO lottery_assignments (draw_id, festero_id, quantity)
		SELECT $1, f.id, $2
		FROM festeros f
		ON CONFLICT (draw_id, festero_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()
	`
	recordPaymentQuery = `
		INSERT INTO lottery_assignments (draw_id, festero_id, amount_paid, status)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), 'pending'))
		ON CONFLICT (draw_id, festero_id)
		DO UPDATE SET amount_paid = EXCLUDED.amount_paid,
			status = COALESCE(NULLIF($4, ''), lottery_assignments.status),
			updated_at = now()
		RETURNING ` + assignmentColumns
	listByMemberQuery = `
		SELECT a.id, a.draw_id, a.festero_id, a.quantity, a.amount_paid, a.status, a.created_at, a.updated_at,
			d.id, d.name, d.draw_date, d.ticket_price, d.surcharge, d.status, d.created_at
		FROM lottery_assignments a
		JOIN lottery_draws d ON d.id = a.draw_id
		WHERE a.festero_id = $1
		ORDER BY d.draw_date DESC, a.created_at DESC
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

func scanAssignment(row pgx.Row) (*domain.Assignment, error) {
	var a domain.Assignment
	err := row.Scan(&a.ID, &a.DrawID, &a.MemberID, &a.Quantity, &a.AmountPaid, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) ListByDraw(ctx context.Context, drawID string) ([]domain.Assignment, error) {
	rows, err := r.db.Query(ctx, listByDrawQuery, drawID)
	if err != nil {
		zap.L().Error("can't list draw assignments", zap.String("draw_id", drawID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	assignments := []domain.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			zap.L().Error("can't scan assignment row", zap.Error(err))
			return nil, err
		}
		assignments = append(assignments, *a)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate assignment rows", zap.Error(err))
		return nil, err
	}
	return assignments, nil
}

// Upsert sets the ticket quantity of a member for a draw. Payment fields of
// an existing row are left as they are.
func (r *Repository) Upsert(ctx context.Context, drawID, memberID string, quantity int) (*domain.Assignment, error) {
	a, err := scanAssignment(r.db.QueryRow(ctx, upsertQuery, drawID, memberID, quantity))
	if err != nil {
		if pg.IsForeignKeyViolation(err) || pg.IsInvalidText(err) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't upsert assignment", zap.Error(err))
		return nil, err
	}
	return a, nil
}

// BulkUpsert gives every roster member the same quantity for a draw and
// returns the number of rows written.
func (r *Repository) BulkUpsert(ctx context.Context, drawID string, quantity int) (int64, error) {
	tag, err := r.db.Exec(ctx, bulkUpsertQuery, drawID, quantity)
	if err != nil {
		if pg.IsForeignKeyViolation(err) || pg.IsInvalidText(err) {
			return 0, domain.ErrNotFound
		}
		zap.L().Error("can't bulk upsert assignments", zap.String("draw_id", drawID), zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// RecordPayment stores the amount paid by a member for a draw. A blank
// status keeps the one already stored.
func (r *Repository) RecordPayment(ctx context.Context, drawID, memberID string, amount float64, status string) (*domain.Assignment, error) {
	a, err := scanAssignment(r.db.QueryRow(ctx, recordPaymentQuery, drawID, memberID, amount, status))
	if err != nil {
		if pg.IsForeignKeyViolation(err) || pg.IsInvalidText(err) {
			return nil, domain.ErrNotFound
		}
		zap.L().Error("can't record payment", zap.Error(err))
		return nil, err
	}
	return a, nil
}

func (r *Repository) ListByMember(ctx context.Context, memberID string) ([]domain.MemberAssignment, error) {
	rows, err := r.db.Query(ctx, listByMemberQuery, memberID)
	if err != nil {
		zap.L().Error("can't list member assignments", zap.String("member_id", memberID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	result := []domain.MemberAssignment{}
	for rows.Next() {
		var a domain.Assignment
		var d domain.Draw
		err := rows.Scan(
			&a.ID, &a.DrawID, &a.MemberID, &a.Quantity, &a.AmountPaid, &a.Status, &a.CreatedAt, &a.UpdatedAt,
			&d.ID, &d.Name, &d.DrawDate, &d.TicketPrice, &d.Surcharge, &d.Status, &d.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan member assignment row", zap.Error(err))
			return nil, err
		}
		result = append(result, domain.NewMemberAssignment(a, d))
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate member assignment rows", zap.Error(err))
		return nil, err
	}
	return result, nil
}
