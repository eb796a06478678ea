package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

func validationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrValidation, err.Error())
}

var positiveAmount = validation.By(func(value interface{}) error {
	v, ok := value.(float64)
	if !ok {
		return errors.New("must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return errors.New("must be greater than zero")
	}
	return nil
})

var nonNegativeAmount = validation.By(func(value interface{}) error {
	v, ok := value.(float64)
	if !ok {
		return errors.New("must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errors.New("must be zero or greater")
	}
	return nil
})

// Normalize trims text fields and turns blank optional fields into nil.
func (m *Member) Normalize() {
	m.GivenName = strings.TrimSpace(m.GivenName)
	m.FirstFamilyName = strings.TrimSpace(m.FirstFamilyName)
	m.SecondFamilyName = blankToNil(m.SecondFamilyName)
	m.Email = blankToNil(m.Email)
	if m.Email != nil {
		lower := strings.ToLower(*m.Email)
		m.Email = &lower
	}
	m.Phone = blankToNil(m.Phone)
}

func (m Member) Validate() error {
	return validationError(validation.Errors{
		"given_name":         validation.Validate(m.GivenName, validation.Required, validation.Length(1, 100)),
		"first_family_name":  validation.Validate(m.FirstFamilyName, validation.Required, validation.Length(1, 100)),
		"second_family_name": validation.Validate(m.SecondFamilyName, validation.Length(0, 100)),
		"email":              validation.Validate(m.Email, is.Email),
		"phone":              validation.Validate(m.Phone, validation.Length(0, 30)),
	}.Filter())
}

func (d Draw) Validate() error {
	return validationError(validation.Errors{
		"name":         validation.Validate(d.Name, validation.Required, validation.Length(1, 120)),
		"draw_date":    validation.Validate(d.DrawDate, validation.Required),
		"ticket_price": validation.Validate(d.TicketPrice, positiveAmount),
		"surcharge":    validation.Validate(d.Surcharge, nonNegativeAmount),
		"status":       validation.Validate(d.Status, validation.Required, validation.In(DrawDraft, DrawActive, DrawClosed)),
	}.Filter())
}

func ValidateQuantity(quantity int) error {
	return validationError(validation.Errors{
		"quantity": validation.Validate(quantity, validation.Min(0)),
	}.Filter())
}

func ValidatePayment(amountPaid float64) error {
	return validationError(validation.Errors{
		"amount_paid": validation.Validate(amountPaid, nonNegativeAmount),
	}.Filter())
}

func ValidateRole(role Role) error {
	return validationError(validation.Errors{
		"role": validation.Validate(role, validation.Required, validation.In(RoleAdmin, RoleMember)),
	}.Filter())
}

func ValidateCredentials(email, password string) error {
	return validationError(validation.Errors{
		"email":    validation.Validate(email, validation.Required, is.Email),
		"password": validation.Validate(password, validation.Required, validation.Length(8, 72)),
	}.Filter())
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
