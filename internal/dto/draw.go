package dto

import (
	"fmt"
	"time"

	"github.com/oapi-codegen/nullable"

	"github.com/GlebRadaev/festeros/internal/domain"
)

type DrawRequestDTO struct {
	Name        string   `json:"name"`
	DrawDate    string   `json:"draw_date" example:"2026-12-22"`
	TicketPrice float64  `json:"ticket_price"`
	Surcharge   *float64 `json:"surcharge,omitempty"`
	Status      string   `json:"status,omitempty" example:"draft"`
}

func (r DrawRequestDTO) ToDomain() (domain.Draw, error) {
	d := domain.Draw{
		Name:        r.Name,
		TicketPrice: r.TicketPrice,
		Status:      domain.DrawStatus(r.Status),
	}
	if r.Surcharge != nil {
		d.Surcharge = *r.Surcharge
	}
	date, err := parseDate("draw_date", r.DrawDate)
	if err != nil {
		return domain.Draw{}, err
	}
	d.DrawDate = date
	return d, nil
}

// DrawPatchDTO distinguishes absent fields from explicit nulls. Only the
// surcharge accepts null, which resets it to zero.
type DrawPatchDTO struct {
	Name        nullable.Nullable[string]  `json:"name,omitempty" swaggertype:"string"`
	DrawDate    nullable.Nullable[string]  `json:"draw_date,omitempty" swaggertype:"string"`
	TicketPrice nullable.Nullable[float64] `json:"ticket_price,omitempty" swaggertype:"number"`
	Surcharge   nullable.Nullable[float64] `json:"surcharge,omitempty" swaggertype:"number"`
	Status      nullable.Nullable[string]  `json:"status,omitempty" swaggertype:"string"`
}

func (p DrawPatchDTO) ToDomain() (domain.DrawPatch, error) {
	var out domain.DrawPatch

	name, err := required("name", p.Name)
	if err != nil {
		return out, err
	}
	out.Name = name

	if raw, err := required("draw_date", p.DrawDate); err != nil {
		return out, err
	} else if raw != nil {
		date, err := parseDate("draw_date", *raw)
		if err != nil {
			return out, err
		}
		out.DrawDate = &date
	}

	price, err := required("ticket_price", p.TicketPrice)
	if err != nil {
		return out, err
	}
	out.TicketPrice = price

	if p.Surcharge.IsSpecified() {
		surcharge := 0.0
		if !p.Surcharge.IsNull() {
			surcharge = p.Surcharge.MustGet()
		}
		out.Surcharge = &surcharge
	}

	status, err := required("status", p.Status)
	if err != nil {
		return out, err
	}
	if status != nil {
		s := domain.DrawStatus(*status)
		out.Status = &s
	}
	return out, nil
}

func required[T any](field string, n nullable.Nullable[T]) (*T, error) {
	if !n.IsSpecified() {
		return nil, nil
	}
	if n.IsNull() {
		return nil, fmt.Errorf("%w: %s: cannot be null", domain.ErrValidation, field)
	}
	v := n.MustGet()
	return &v, nil
}

func parseDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s: cannot be blank", domain.ErrValidation, field)
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s: must be a date in YYYY-MM-DD format", domain.ErrValidation, field)
	}
	return d, nil
}

type DrawResponseDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DrawDate       string  `json:"draw_date"`
	TicketPrice    float64 `json:"ticket_price"`
	Surcharge      float64 `json:"surcharge"`
	PricePerTicket float64 `json:"price_per_ticket"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
}

func NewDrawResponse(d domain.Draw) DrawResponseDTO {
	return DrawResponseDTO{
		ID:             d.ID,
		Name:           d.Name,
		DrawDate:       d.DrawDate.Format(DateLayout),
		TicketPrice:    d.TicketPrice,
		Surcharge:      d.Surcharge,
		PricePerTicket: d.PricePerTicket(),
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt.Format(time.RFC3339),
	}
}

func NewDrawListResponse(draws []domain.Draw) []DrawResponseDTO {
	out := make([]DrawResponseDTO, 0, len(draws))
	for _, d := range draws {
		out = append(out, NewDrawResponse(d))
	}
	return out
}

type DrawSummaryResponseDTO struct {
	Draw               DrawResponseDTO `json:"draw"`
	Tickets            int             `json:"tickets"`
	MembersWithTickets int             `json:"members_with_tickets"`
	FaceValue          float64         `json:"face_value"`
	SurchargeTotal     float64         `json:"surcharge_total"`
	TotalDue           float64         `json:"total_due"`
	TotalPaid          float64         `json:"total_paid"`
	TotalPending       float64         `json:"total_pending"`
}

func NewDrawSummaryResponse(s domain.DrawSummary) DrawSummaryResponseDTO {
	return DrawSummaryResponseDTO{
		Draw:               NewDrawResponse(s.Draw),
		Tickets:            s.Tickets,
		MembersWithTickets: s.MembersWithTickets,
		FaceValue:          s.FaceValue,
		SurchargeTotal:     s.SurchargeTotal,
		TotalDue:           s.TotalDue,
		TotalPaid:          s.TotalPaid,
		TotalPending:       s.TotalPending,
	}
}
