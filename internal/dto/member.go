package dto

import (
	"fmt"
	"time"

	"github.com/GlebRadaev/festeros/internal/domain"
)

const DateLayout = "2006-01-02"

type MemberRequestDTO struct {
	GivenName        string  `json:"given_name"`
	FirstFamilyName  string  `json:"first_family_name"`
	SecondFamilyName *string `json:"second_family_name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Phone            *string `json:"phone,omitempty"`
	BirthDate        *string `json:"birth_date,omitempty" example:"1990-04-23"`
}

func (r MemberRequestDTO) ToDomain() (domain.Member, error) {
	m := domain.Member{
		GivenName:        r.GivenName,
		FirstFamilyName:  r.FirstFamilyName,
		SecondFamilyName: r.SecondFamilyName,
		Email:            r.Email,
		Phone:            r.Phone,
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		d, err := time.Parse(DateLayout, *r.BirthDate)
		if err != nil {
			return domain.Member{}, fmt.Errorf("%w: birth_date: must be a date in YYYY-MM-DD format", domain.ErrValidation)
		}
		m.BirthDate = &d
	}
	return m, nil
}

type MemberResponseDTO struct {
	ID               string  `json:"id"`
	AccountID        *string `json:"account_id"`
	DisplayName      string  `json:"display_name"`
	GivenName        string  `json:"given_name"`
	FirstFamilyName  string  `json:"first_family_name"`
	SecondFamilyName *string `json:"second_family_name"`
	Email            *string `json:"email"`
	Phone            *string `json:"phone"`
	BirthDate        *string `json:"birth_date"`
	CreatedAt        string  `json:"created_at"`
}

func NewMemberResponse(m domain.Member) MemberResponseDTO {
	out := MemberResponseDTO{
		ID:               m.ID,
		AccountID:        m.AccountID,
		DisplayName:      m.DisplayName(),
		GivenName:        m.GivenName,
		FirstFamilyName:  m.FirstFamilyName,
		SecondFamilyName: m.SecondFamilyName,
		Email:            m.Email,
		Phone:            m.Phone,
		CreatedAt:        m.CreatedAt.Format(time.RFC3339),
	}
	if m.BirthDate != nil {
		d := m.BirthDate.Format(DateLayout)
		out.BirthDate = &d
	}
	return out
}

func NewMemberListResponse(members []domain.Member) []MemberResponseDTO {
	out := make([]MemberResponseDTO, 0, len(members))
	for _, m := range members {
		out = append(out, NewMemberResponse(m))
	}
	return out
}

type AccountResponseDTO struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"full_name"`
	Role        string  `json:"role"`
	CreatedAt   string  `json:"created_at"`
}

func NewAccountListResponse(accounts []domain.Account) []AccountResponseDTO {
	out := make([]AccountResponseDTO, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, AccountResponseDTO{
			ID:          a.ID,
			Email:       a.Email,
			DisplayName: a.DisplayName,
			Role:        string(a.Role),
			CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

type RoleRequestDTO struct {
	Role string `json:"role" example:"admin"`
}
