package entities

import (
	"strings"
	"time"
)

type Customer struct {
	ID         string
	Name       string
	Email      string
	Phone      *string
	Address    Address
	OrderCount int
	CreatedAt  time.Time
}

// Address приходит от бэкенда либо структурой, либо свободной строкой.
type Address struct {
	Postal *PostalAddress
	Text   string
}

func (a Address) IsZero() bool {
	return a.Postal == nil && strings.TrimSpace(a.Text) == ""
}

func (a Address) String() string {
	if a.Postal != nil {
		return a.Postal.String()
	}
	return strings.TrimSpace(a.Text)
}

type PostalAddress struct {
	Complex  string
	Street   string
	Town     string
	City     string
	Province string
	Zip      string
}

// String: "complex street, town, city, province, zip", пустые части пропускаются.
func (p PostalAddress) String() string {
	parts := make([]string, 0, 5)
	if line := strings.TrimSpace(strings.TrimSpace(p.Complex) + " " + strings.TrimSpace(p.Street)); line != "" {
		parts = append(parts, line)
	}
	for _, part := range []string{p.Town, p.City, p.Province, p.Zip} {
		if s := strings.TrimSpace(part); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
