package dto

import (
	"time"

	"github.com/GlebRadaev/festeros/internal/domain"
)

type AssignmentRequestDTO struct {
	Quantity int `json:"quantity" example:"5"`
}

type BulkAssignResponseDTO struct {
	Success bool  `json:"success"`
	Members int64 `json:"members"`
}

type PaymentRequestDTO struct {
	AmountPaid float64 `json:"amount_paid" example:"40"`
	Status     string  `json:"status,omitempty" example:"paid"`
}

type AssignmentResponseDTO struct {
	Success    bool    `json:"success"`
	ID         string  `json:"id"`
	DrawID     string  `json:"draw_id"`
	MemberID   string  `json:"member_id"`
	Quantity   int     `json:"quantity"`
	AmountPaid float64 `json:"amount_paid"`
	Status     string  `json:"status"`
}

func NewAssignmentResponse(a domain.Assignment) AssignmentResponseDTO {
	return AssignmentResponseDTO{
		Success:    true,
		ID:         a.ID,
		DrawID:     a.DrawID,
		MemberID:   a.MemberID,
		Quantity:   a.Quantity,
		AmountPaid: a.AmountPaid,
		Status:     a.Status,
	}
}

type DrawAssignmentResponseDTO struct {
	MemberID     string  `json:"member_id"`
	MemberName   string  `json:"member_display_name"`
	AssignmentID *string `json:"assignment_id"`
	Quantity     int     `json:"quantity"`
	AmountPaid   float64 `json:"amount_paid"`
	Status       string  `json:"status"`
}

func NewDrawAssignmentsResponse(rows []domain.DrawAssignment) []DrawAssignmentResponseDTO {
	out := make([]DrawAssignmentResponseDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, DrawAssignmentResponseDTO{
			MemberID:     r.MemberID,
			MemberName:   r.MemberName,
			AssignmentID: r.AssignmentID,
			Quantity:     r.Quantity,
			AmountPaid:   r.AmountPaid,
			Status:       r.Status,
		})
	}
	return out
}

type MemberAssignmentResponseDTO struct {
	ID             string          `json:"id"`
	Draw           DrawResponseDTO `json:"draw"`
	Quantity       int             `json:"quantity"`
	PricePerTicket float64         `json:"price_per_ticket"`
	TotalDue       float64         `json:"total_due"`
	AmountPaid     float64         `json:"amount_paid"`
	AmountPending  float64         `json:"amount_pending"`
	Status         string          `json:"status"`
	UpdatedAt      string          `json:"updated_at"`
}

type MemberStatementResponseDTO struct {
	Assignments  []MemberAssignmentResponseDTO `json:"assignments"`
	TotalDue     float64                       `json:"total_due"`
	TotalPaid    float64                       `json:"total_paid"`
	TotalPending float64                       `json:"total_pending"`
}

func NewMemberStatementResponse(s domain.MemberStatement) MemberStatementResponseDTO {
	out := MemberStatementResponseDTO{
		Assignments:  make([]MemberAssignmentResponseDTO, 0, len(s.Assignments)),
		TotalDue:     s.TotalDue,
		TotalPaid:    s.TotalPaid,
		TotalPending: s.TotalPending,
	}
	for _, a := range s.Assignments {
		out.Assignments = append(out.Assignments, MemberAssignmentResponseDTO{
			ID:             a.ID,
			Draw:           NewDrawResponse(a.Draw),
			Quantity:       a.Quantity,
			PricePerTicket: a.PricePerTicket,
			TotalDue:       a.TotalDue,
			AmountPaid:     a.AmountPaid,
			AmountPending:  a.AmountPending,
			Status:         a.Status,
			UpdatedAt:      a.UpdatedAt.Format(time.RFC3339),
		})
	}
	return out
}
