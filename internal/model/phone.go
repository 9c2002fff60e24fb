package model

import "fmt"

// phoneLength is the exact number of digits of a valid phone number.
const phoneLength = 10

// Phone is a validated phone number consisting of exactly ten ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if !isPhone(raw) {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string {
	return p.value
}

// isPhone reports whether s has the length of a phone number and contains digits only.
func isPhone(s string) bool {
	if len(s) != phoneLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
