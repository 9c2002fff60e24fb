package model

import (
	"fmt"
	"strings"
)

// Record is the data structure for a person that we know. The name identifies the record and
// never changes. Phone numbers keep their insertion order and may contain duplicates. The
// birthday is optional and can be set only once.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates an empty record for the given name. Names consisting of white space only are
// rejected, every other string is accepted as is.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Record{name: name}, nil
}

// Name returns the name of the contact.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone numbers in insertion order.
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday of the contact and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone validates raw and appends it to the phone numbers.
func (r *Record) AddPhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes every phone number equal to raw. Nothing happens if there is none.
func (r *Record) RemovePhone(raw string) {
	kept := r.phones[:0]
	for _, phone := range r.phones {
		if phone.value != raw {
			kept = append(kept, phone)
		}
	}
	r.phones = kept
}

// EditPhone replaces the first phone number equal to oldRaw by newRaw. Later duplicates of oldRaw
// are left untouched.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	index := r.indexOf(oldRaw)
	if index < 0 {
		return fmt.Errorf("%w: %q", ErrOldPhoneNotFound, oldRaw)
	}
	phone, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.phones[index] = phone
	return nil
}

// FindPhone returns the first phone number equal to raw.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	index := r.indexOf(raw)
	if index < 0 {
		return Phone{}, false
	}
	return r.phones[index], true
}

// AddBirthday parses raw and stores it as the birthday of the contact.
func (r *Record) AddBirthday(raw string) error {
	if r.birthday != nil {
		return ErrBirthdayAlreadySet
	}
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// SetBirthday stores an already parsed birthday. Like AddBirthday it refuses to overwrite an
// existing one.
func (r *Record) SetBirthday(birthday Birthday) error {
	if r.birthday != nil {
		return ErrBirthdayAlreadySet
	}
	r.birthday = &birthday
	return nil
}

// String renders the record as "Contact name: <name>, phones: <p1>; <p2>" followed by
// ", Birthday: DD.MM.YYYY" if a birthday is set.
func (r *Record) String() string {
	values := make([]string, 0, len(r.phones))
	for _, phone := range r.phones {
		values = append(values, phone.value)
	}
	s := fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(values, "; "))
	if r.birthday != nil {
		s += ", Birthday: " + r.birthday.String()
	}
	return s
}

func (r *Record) indexOf(raw string) int {
	for i, phone := range r.phones {
		if phone.value == raw {
			return i
		}
	}
	return -1
}
