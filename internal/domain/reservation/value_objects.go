package reservation

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

var (
	ErrInvalidName     = errors.New("name is required")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrInvalidStatus   = errors.New("invalid reservation status")
)

var phoneRegex = regexp.MustCompile(`^[+]?[0-9\s\-().]{6,20}$`)

type ContactInfo struct {
	Name  string
	Email string
	Phone string
}

// Normalized trims every field.
func (c ContactInfo) Normalized() ContactInfo {
	return ContactInfo{
		Name:  strings.TrimSpace(c.Name),
		Email: strings.TrimSpace(c.Email),
		Phone: strings.TrimSpace(c.Phone),
	}
}

// Validate requires a name and a phone. Email is optional free text.
func (c ContactInfo) Validate() error {
	n := c.Normalized()
	if n.Name == "" {
		return ErrInvalidName
	}
	if !phoneRegex.MatchString(n.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

func (c ContactInfo) IsZero() bool {
	n := c.Normalized()
	return n.Name == "" && n.Email == "" && n.Phone == ""
}

func (c ContactInfo) HasBlankField() bool {
	n := c.Normalized()
	return n.Name == "" || n.Email == "" || n.Phone == ""
}

// FillFrom returns c with blank fields taken from cached.
func (c ContactInfo) FillFrom(cached ContactInfo) ContactInfo {
	n := c.Normalized()
	if n.Name == "" {
		n.Name = strings.TrimSpace(cached.Name)
	}
	if n.Email == "" {
		n.Email = strings.TrimSpace(cached.Email)
	}
	if n.Phone == "" {
		n.Phone = strings.TrimSpace(cached.Phone)
	}
	return n
}

// Money is held in cents so totals do not accumulate float error.
type Money struct {
	cents int64
}

func NewMoneyFromAmount(amount float64) (Money, error) {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Multiply(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}
