package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

type DrawStatus string

const (
	DrawDraft  DrawStatus = "draft"
	DrawActive DrawStatus = "active"
	DrawClosed DrawStatus = "closed"
)

var drawStatusOrder = map[DrawStatus]int{
	DrawDraft:  0,
	DrawActive: 1,
	DrawClosed: 2,
}

func (s DrawStatus) Valid() bool {
	_, ok := drawStatusOrder[s]
	return ok
}

// CanTransitionTo reports whether a draw may move from s to next.
// Staying in place is allowed; going back is not.
func (s DrawStatus) CanTransitionTo(next DrawStatus) bool {
	from, ok := drawStatusOrder[s]
	if !ok {
		return false
	}
	to, ok := drawStatusOrder[next]
	if !ok {
		return false
	}
	return to >= from
}

const AssignmentPending = "pending"

type Account struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	DisplayName  *string   `db:"full_name"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Member struct {
	ID               string     `db:"id"`
	AccountID        *string    `db:"user_id"`
	GivenName        string     `db:"nombre"`
	FirstFamilyName  string     `db:"primer_apellido"`
	SecondFamilyName *string    `db:"segundo_apellido"`
	Email            *string    `db:"email"`
	Phone            *string    `db:"telefono"`
	BirthDate        *time.Time `db:"fecha_nacimiento"`
	CreatedAt        time.Time  `db:"created_at"`
}

// DisplayName renders "First Second, Given" leaving out missing parts.
func (m Member) DisplayName() string {
	family := strings.TrimSpace(m.FirstFamilyName)
	if m.SecondFamilyName != nil {
		if second := strings.TrimSpace(*m.SecondFamilyName); second != "" {
			family = strings.TrimSpace(family + " " + second)
		}
	}
	given := strings.TrimSpace(m.GivenName)
	switch {
	case family == "":
		return given
	case given == "":
		return family
	default:
		return family + ", " + given
	}
}

type Draw struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	DrawDate    time.Time  `db:"draw_date"`
	TicketPrice float64    `db:"ticket_price"`
	Surcharge   float64    `db:"surcharge"`
	Status      DrawStatus `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (d Draw) PricePerTicket() float64 {
	return RoundCents(d.TicketPrice + d.Surcharge)
}

// DrawPatch carries the fields of a partial draw update. Nil means unchanged.
type DrawPatch struct {
	Name        *string
	DrawDate    *time.Time
	TicketPrice *float64
	Surcharge   *float64
	Status      *DrawStatus
}

func (p DrawPatch) Apply(d *Draw) {
	if p.Name != nil {
		d.Name = strings.TrimSpace(*p.Name)
	}
	if p.DrawDate != nil {
		d.DrawDate = *p.DrawDate
	}
	if p.TicketPrice != nil {
		d.TicketPrice = *p.TicketPrice
	}
	if p.Surcharge != nil {
		d.Surcharge = *p.Surcharge
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
}

type Assignment struct {
	ID         string    `db:"id"`
	DrawID     string    `db:"draw_id"`
	MemberID   string    `db:"festero_id"`
	Quantity   int       `db:"quantity"`
	AmountPaid float64   `db:"amount_paid"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// DrawAssignment is one roster line of a draw, present even when the
// member has no assignment row yet.
type DrawAssignment struct {
	MemberID     string
	MemberName   string
	AssignmentID *string
	Quantity     int
	AmountPaid   float64
	Status       string
}

type DrawSummary struct {
	Draw               Draw
	Tickets            int
	MembersWithTickets int
	FaceValue          float64
	SurchargeTotal     float64
	TotalDue           float64
	TotalPaid          float64
	TotalPending       float64
}

// MemberAssignment is an assignment joined with its draw, as shown to the member.
type MemberAssignment struct {
	Assignment
	Draw           Draw
	PricePerTicket float64
	TotalDue       float64
	AmountPending  float64
}

type MemberStatement struct {
	Assignments  []MemberAssignment
	TotalDue     float64
	TotalPaid    float64
	TotalPending float64
}
