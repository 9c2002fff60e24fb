package model

import "time"

// Contact is the JSON representation of a contact in the address book.
type Contact struct {
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday *string  `json:"birthday,omitempty"`
}

// ContactRow is a row of the contacts table that contacts can be imported from.
// All fields with the exception of the Id field are optional.
type ContactRow struct {
	Id       int64      `db:"id"`
	Name     *string    `db:"name"`
	Phone    *string    `db:"phone"`
	Birthday *time.Time `db:"birthday"`
}

// AddContactRequest adds a phone number and optionally a birthday (DD.MM.YYYY) to a contact.
type AddContactRequest struct {
	Name     string  `json:"name"     binding:"required"`
	Phone    string  `json:"phone"    binding:"required"`
	Birthday *string `json:"birthday,omitempty"`
}

// ChangePhoneRequest replaces one phone number of a contact.
type ChangePhoneRequest struct {
	OldPhone string `json:"old_phone" binding:"required"`
	NewPhone string `json:"new_phone" binding:"required"`
}

// BirthdayRequest sets the birthday (DD.MM.YYYY) of a contact.
type BirthdayRequest struct {
	Birthday string `json:"birthday" binding:"required"`
}

// Greeting tells on which day (YYYY.MM.DD) a contact should be congratulated.
type Greeting struct {
	Name               string `json:"name"`
	CongratulationDate string `json:"congratulation_date"`
}
