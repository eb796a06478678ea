package lotteryservice

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/festeros/internal/domain"
)

//go:generate mockgen -destination=mock_lotteryservice.go -package=lotteryservice github.com/GlebRadaev/festeros/internal/service/lotteryservice DrawRepo,AssignmentRepo,MemberRepo

type DrawRepo interface {
	List(ctx context.Context) ([]domain.Draw, error)
	GetByID(ctx context.Context, id string) (*domain.Draw, error)
	Create(ctx context.Context, draw *domain.Draw) (*domain.Draw, error)
	Update(ctx context.Context, id string, apply func(*domain.Draw) error) (*domain.Draw, error)
	Delete(ctx context.Context, id string) error
}

type AssignmentRepo interface {
	ListByDraw(ctx context.Context, drawID string) ([]domain.Assignment, error)
	Upsert(ctx context.Context, drawID, memberID string, quantity int) (*domain.Assignment, error)
	BulkUpsert(ctx context.Context, drawID string, quantity int) (int64, error)
	RecordPayment(ctx context.Context, drawID, memberID string, amount float64, status string) (*domain.Assignment, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.MemberAssignment, error)
}

type MemberRepo interface {
	List(ctx context.Context) ([]domain.Member, error)
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByAccountID(ctx context.Context, accountID string) (*domain.Member, error)
}

type Service struct {
	drawRepo       DrawRepo
	assignmentRepo AssignmentRepo
	memberRepo     MemberRepo
	newID          func() string
}

func New(drawRepo DrawRepo, assignmentRepo AssignmentRepo, memberRepo MemberRepo) *Service {
	return &Service{
		drawRepo:       drawRepo,
		assignmentRepo: assignmentRepo,
		memberRepo:     memberRepo,
		newID:          uuid.NewString,
	}
}

// ListDraws returns every draw, newest first. A store failure yields an empty list.
func (s *Service) ListDraws(ctx context.Context, caller domain.Caller) ([]domain.Draw, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrPermissionDenied
	}
	draws, err := s.drawRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list draws", zap.Error(err))
		return []domain.Draw{}, nil
	}
	return draws, nil
}

// GetDraw returns nil when the draw does not exist or cannot be read.
func (s *Service) GetDraw(ctx context.Context, caller domain.Caller, id string) (*domain.Draw, error) {
	if !caller.Authenticated() {
		return nil, domain.ErrPermissionDenied
	}
	draw, err := s.drawRepo.GetByID(ctx, id)
	if err != nil {
		zap.L().Error("can't get draw", zap.String("draw_id", id), zap.Error(err))
		return nil, nil
	}
	return draw, nil
}

func (s *Service) CreateDraw(ctx context.Context, caller domain.Caller, input domain.Draw) (*domain.Draw, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Status == "" {
		input.Status = domain.DrawDraft
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input.ID = s.newID()

	draw, err := s.drawRepo.Create(ctx, &input)
	if err != nil {
		zap.L().Error("can't create draw", zap.Error(err))
		return nil, err
	}
	zap.L().Info("draw created", zap.String("draw_id", draw.ID), zap.String("name", draw.Name))
	return draw, nil
}

// UpdateDraw applies a partial update. The status may stay or move forward
// but never back.
func (s *Service) UpdateDraw(ctx context.Context, caller domain.Caller, id string, patch domain.DrawPatch) (*domain.Draw, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	draw, err := s.drawRepo.Update(ctx, id, func(d *domain.Draw) error {
		previous := d.Status
		patch.Apply(d)
		if err := d.Validate(); err != nil {
			return err
		}
		if !previous.CanTransitionTo(d.Status) {
			return domain.ErrInvalidTransition
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't update draw", zap.String("draw_id", id), zap.Error(err))
		return nil, err
	}
	return draw, nil
}

func (s *Service) DeleteDraw(ctx context.Context, caller domain.Caller, id string) error {
	if err := caller.RequireAdmin(); err != nil {
		return err
	}
	if err := s.drawRepo.Delete(ctx, id); err != nil {
		zap.L().Error("can't delete draw", zap.String("draw_id", id), zap.Error(err))
		return err
	}
	zap.L().Info("draw deleted", zap.String("draw_id", id))
	return nil
}

// GetDrawAssignments returns one line per roster member for the draw.
// Store failures are returned to the caller.
func (s *Service) GetDrawAssignments(ctx context.Context, caller domain.Caller, drawID string) ([]domain.DrawAssignment, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	if _, err := s.existingDraw(ctx, drawID); err != nil {
		return nil, err
	}
	return s.drawAssignments(ctx, drawID)
}

func (s *Service) drawAssignments(ctx context.Context, drawID string) ([]domain.DrawAssignment, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	assignments, err := s.assignmentRepo.ListByDraw(ctx, drawID)
	if err != nil {
		zap.L().Error("can't list draw assignments", zap.String("draw_id", drawID), zap.Error(err))
		return nil, err
	}
	return domain.MergeRoster(members, assignments), nil
}

func (s *Service) GetDrawSummary(ctx context.Context, caller domain.Caller, drawID string) (*domain.DrawSummary, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	draw, err := s.existingDraw(ctx, drawID)
	if err != nil {
		return nil, err
	}
	rows, err := s.drawAssignments(ctx, drawID)
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeDraw(*draw, rows)
	return &summary, nil
}

// existingDraw loads the draw and reports ErrNotFound when it is missing.
func (s *Service) existingDraw(ctx context.Context, drawID string) (*domain.Draw, error) {
	draw, err := s.drawRepo.GetByID(ctx, drawID)
	if err != nil {
		zap.L().Error("can't get draw", zap.String("draw_id", drawID), zap.Error(err))
		return nil, err
	}
	if draw == nil {
		return nil, domain.ErrNotFound
	}
	return draw, nil
}

// UpdateAssignment sets the ticket quantity of one member. A new row starts
// unpaid and pending; an existing row keeps its payment and status.
func (s *Service) UpdateAssignment(ctx context.Context, caller domain.Caller, drawID, memberID string, quantity int) (*domain.Assignment, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	assignment, err := s.assignmentRepo.Upsert(ctx, drawID, memberID, quantity)
	if err != nil {
		zap.L().Error("can't update assignment",
			zap.String("draw_id", drawID), zap.String("member_id", memberID), zap.Error(err))
		return nil, err
	}
	return assignment, nil
}

// BulkAssign gives every roster member the same quantity in one statement.
func (s *Service) BulkAssign(ctx context.Context, caller domain.Caller, drawID string, quantity int) (int64, error) {
	if err := caller.RequireAdmin(); err != nil {
		return 0, err
	}
	if err := domain.ValidateQuantity(quantity); err != nil {
		return 0, err
	}
	if _, err := s.existingDraw(ctx, drawID); err != nil {
		return 0, err
	}
	count, err := s.assignmentRepo.BulkUpsert(ctx, drawID, quantity)
	if err != nil {
		zap.L().Error("can't bulk assign", zap.String("draw_id", drawID), zap.Error(err))
		return 0, err
	}
	zap.L().Info("tickets assigned to roster",
		zap.String("draw_id", drawID), zap.Int("quantity", quantity), zap.Int64("members", count))
	return count, nil
}

// RecordPayment stores the amount a member has paid for a draw. A blank
// status keeps the stored one.
func (s *Service) RecordPayment(ctx context.Context, caller domain.Caller, drawID, memberID string, amountPaid float64, status string) (*domain.Assignment, error) {
	if err := caller.RequireAdmin(); err != nil {
		return nil, err
	}
	if err := domain.ValidatePayment(amountPaid); err != nil {
		return nil, err
	}
	assignment, err := s.assignmentRepo.RecordPayment(ctx, drawID, memberID, domain.RoundCents(amountPaid), strings.TrimSpace(status))
	if err != nil {
		zap.L().Error("can't record payment",
			zap.String("draw_id", drawID), zap.String("member_id", memberID), zap.Error(err))
		return nil, err
	}
	return assignment, nil
}

// GetMemberAssignments is open to admins and to the member's own account.
func (s *Service) GetMemberAssignments(ctx context.Context, caller domain.Caller, memberID string) (domain.MemberStatement, error) {
	if !caller.IsAdmin() {
		if !caller.Authenticated() {
			return domain.MemberStatement{}, domain.ErrPermissionDenied
		}
		own, err := s.memberRepo.GetByAccountID(ctx, caller.AccountID)
		if err != nil {
			zap.L().Error("can't get member by account", zap.String("account_id", caller.AccountID), zap.Error(err))
			return domain.MemberStatement{}, err
		}
		if own == nil || own.ID != memberID {
			return domain.MemberStatement{}, domain.ErrPermissionDenied
		}
		return s.statement(ctx, memberID)
	}

	target, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		zap.L().Error("can't get member", zap.String("member_id", memberID), zap.Error(err))
		return domain.MemberStatement{}, err
	}
	if target == nil {
		return domain.MemberStatement{}, domain.ErrNotFound
	}
	return s.statement(ctx, memberID)
}

// GetMyAssignments returns an empty statement when the caller's account is
// not linked to any member.
func (s *Service) GetMyAssignments(ctx context.Context, caller domain.Caller) (domain.MemberStatement, error) {
	if !caller.Authenticated() {
		return domain.MemberStatement{}, domain.ErrPermissionDenied
	}
	own, err := s.memberRepo.GetByAccountID(ctx, caller.AccountID)
	if err != nil {
		zap.L().Error("can't get member by account", zap.String("account_id", caller.AccountID), zap.Error(err))
		return domain.MemberStatement{}, err
	}
	if own == nil {
		return domain.NewMemberStatement(nil), nil
	}
	return s.statement(ctx, own.ID)
}

func (s *Service) statement(ctx context.Context, memberID string) (domain.MemberStatement, error) {
	rows, err := s.assignmentRepo.ListByMember(ctx, memberID)
	if err != nil {
		zap.L().Error("can't list member assignments", zap.String("member_id", memberID), zap.Error(err))
		return domain.MemberStatement{}, err
	}
	return domain.NewMemberStatement(rows), nil
}
